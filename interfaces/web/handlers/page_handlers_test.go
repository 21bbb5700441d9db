package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amar2mail9/Polytechub.com/application"
	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/interfaces/web/presenters"
	"github.com/amar2mail9/Polytechub.com/test/helpers"
)

// newTestRouter wires the page routes against mocked sources.
func newTestRouter(sources *helpers.MockSources) chi.Router {
	contentService := application.NewContentService(sources.Content, nil)
	contactService := application.NewContactService(sources.Mail, nil)

	pages := NewPageHandlers(contentService, presenters.NewPostPresenter(), presenters.NewCategoryPresenter(), nil)
	search := NewSearchHandlers(contentService, nil)
	contact := NewContactHandlers(contactService, nil)

	r := chi.NewRouter()
	r.Get("/", pages.Home)
	r.Get("/blog-page", pages.BlogPage)
	r.Get("/blog-page/{slug}", pages.PostDetail)
	r.Get("/category/{category}", pages.CategoryPage)
	r.Get("/search", search.QuickSearch)
	r.Get("/contact-us", contact.ContactPage)
	r.Post("/contact-us", contact.SubmitContact)
	r.NotFound(pages.NotFound)
	return r
}

func get(t *testing.T, router chi.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHome_DegradesFailingSections(t *testing.T) {
	sources := helpers.NewMockSources()
	testData := helpers.NewTestData()

	sources.ExpectPostsForQuery(
		contracts.PostQuery{PerPage: 3},
		&contracts.PostPage{Posts: testData.Posts(3), TotalPages: 1},
	)
	sources.Content.On("FetchCategories", mock.Anything).Return(nil, content.ErrUnreachable)

	rec := get(t, newTestRouter(sources), "/")

	assert.Equal(t, http.StatusOK, rec.Code, "a failing section never fails the page")
	assert.Contains(t, rec.Body.String(), "Post 1")
	assert.Contains(t, rec.Body.String(), "Categories (0)")
}

func TestBlogPage_SecondPage(t *testing.T) {
	sources := helpers.NewMockSources()
	testData := helpers.NewTestData()

	sources.ExpectPostsForQuery(
		contracts.PostQuery{Page: 1, PerPage: 6},
		&contracts.PostPage{Posts: testData.Posts(6), TotalPages: 3},
	)
	sources.ExpectPostsForQuery(
		contracts.PostQuery{Page: 2, PerPage: 6},
		&contracts.PostPage{Posts: testData.Posts(6), TotalPages: 3},
	)
	sources.ExpectPostsForQuery(
		contracts.PostQuery{PerPage: 3},
		&contracts.PostPage{Posts: testData.Posts(3), TotalPages: 1},
	)
	sources.Content.On("FetchCategories", mock.Anything).Return([]*content.Category{}, nil)

	rec := get(t, newTestRouter(sources), "/blog-page?page=2")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="?page=1"`, "previous page link enabled")
	assert.Contains(t, body, `href="?page=3"`, "next page link enabled")
	sources.AssertAllExpectations(t)
}

func TestPostDetail(t *testing.T) {
	sources := helpers.NewMockSources()
	testData := helpers.NewTestData()

	post := testData.SimplePost(5, "Inside the Scheduler")
	post.Body = content.RichText("<p>GOMAXPROCS and friends.</p>")
	sources.Content.On("FetchPostBySlug", mock.Anything, "post-5").Return(post, nil)

	rec := get(t, newTestRouter(sources), "/blog-page/post-5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inside the Scheduler")
	assert.Contains(t, rec.Body.String(), "GOMAXPROCS and friends.")
}

func TestPostDetail_UnknownSlugIs404(t *testing.T) {
	sources := helpers.NewMockSources()
	sources.Content.On("FetchPostBySlug", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("%w: post %q", content.ErrNotFound, "ghost"))

	rec := get(t, newTestRouter(sources), "/blog-page/ghost")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog not found")
}

func TestCategoryPage_FiltersWithQueryParam(t *testing.T) {
	sources := helpers.NewMockSources()
	testData := helpers.NewTestData()

	sources.Content.On("FetchCategoryBySlug", mock.Anything, "golang").
		Return(testData.SimpleCategory(7, "golang", 8), nil)
	sources.ExpectPostsForQuery(
		contracts.PostQuery{CategoryID: 7},
		&contracts.PostPage{Posts: testData.Posts(8), TotalPages: 1},
	)

	rec := get(t, newTestRouter(sources), "/category/golang?q=Post+3")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Post 3")
	assert.NotContains(t, body, "Post 4", "filtered-out posts are not rendered")
	sources.AssertAllExpectations(t)
}

func TestCategoryPage_UnknownCategoryIs404(t *testing.T) {
	sources := helpers.NewMockSources()
	sources.Content.On("FetchCategoryBySlug", mock.Anything, "nope").
		Return(nil, fmt.Errorf("%w: category %q", content.ErrNotFound, "nope"))

	rec := get(t, newTestRouter(sources), "/category/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category not found.")
}

func TestQuickSearch(t *testing.T) {
	sources := helpers.NewMockSources()
	testData := helpers.NewTestData()

	sources.ExpectPostsForQuery(
		contracts.PostQuery{Search: "docker"},
		&contracts.PostPage{Posts: testData.Posts(2), TotalPages: 1},
	)

	rec := get(t, newTestRouter(sources), "/search?q=docker")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"/blog-page/post-1"`)
}

func TestQuickSearch_EmptyQueryReturnsEmptyList(t *testing.T) {
	sources := helpers.NewMockSources()

	rec := get(t, newTestRouter(sources), "/search?q=")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	sources.AssertAllExpectations(t)
}

func TestQuickSearch_SourceFailureIs502(t *testing.T) {
	sources := helpers.NewMockSources()
	sources.ExpectPostsError(content.ErrUnreachable)

	rec := get(t, newTestRouter(sources), "/search?q=docker")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestNotFoundRoute(t *testing.T) {
	sources := helpers.NewMockSources()

	rec := get(t, newTestRouter(sources), "/no-such-route")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func TestSubmitContact(t *testing.T) {
	form := url.Values{
		"name":    {"Asha Verma"},
		"email":   {"asha@example.com"},
		"subject": {"Hello"},
		"message": {"Great post on rollups."},
	}

	postForm := func(t *testing.T, router chi.Router) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/contact-us", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("successful submission", func(t *testing.T) {
		sources := helpers.NewMockSources()
		sources.Mail.On("Send", mock.Anything, contracts.ContactMessage{
			FromName:  "Asha Verma",
			FromEmail: "asha@example.com",
			Subject:   "Hello",
			Message:   "Great post on rollups.",
		}).Return(nil)

		rec := postForm(t, newTestRouter(sources))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Thank you for reaching out!")
		sources.AssertAllExpectations(t)
	})

	t.Run("relay failure re-renders form with values", func(t *testing.T) {
		sources := helpers.NewMockSources()
		sources.Mail.On("Send", mock.Anything, mock.Anything).
			Return(fmt.Errorf("delivery service returned status 500"))

		rec := postForm(t, newTestRouter(sources))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Failed to send message. Please try again.")
		assert.Contains(t, body, "Asha Verma", "entered values are preserved")
	})
}
