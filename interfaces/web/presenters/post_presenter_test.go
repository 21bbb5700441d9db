package presenters

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amar2mail9/Polytechub.com/application"
	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/domain/listing"
)

func samplePost() *content.Post {
	return &content.Post{
		ID:               1,
		Slug:             "observability-basics",
		Title:            content.RichText("Observability <em>Basics</em>"),
		Excerpt:          content.RichText("<p>Logs, traces and metrics explained.</p>"),
		Body:             content.RichText("<p>Body text</p><script>alert(1)</script>"),
		PublishedAt:      time.Date(2024, 7, 9, 10, 0, 0, 0, time.UTC),
		FeaturedImageURL: "https://example.com/obs.webp",
		CategoryLabel:    "DevOps",
	}
}

func TestToPostCard(t *testing.T) {
	presenter := NewPostPresenter()

	card := presenter.ToPostCard(samplePost())

	assert.Equal(t, "Observability Basics", card.Title, "title is the plain-text projection")
	assert.Equal(t, "Logs, traces and metrics explained.", card.Excerpt)
	assert.Equal(t, "https://example.com/obs.webp", card.ImageURL)
	assert.Equal(t, "DevOps", card.CategoryLabel)
	assert.Equal(t, "July 9, 2024", card.PublishedAt)
	assert.Equal(t, "/blog-page/observability-basics", card.URL)
}

func TestToPostCard_TruncatesLongTitleAndExcerpt(t *testing.T) {
	presenter := NewPostPresenter()

	post := samplePost()
	post.Title = content.RichText(strings.Repeat("t", 90))
	post.Excerpt = content.RichText(strings.Repeat("e", 300))

	card := presenter.ToPostCard(post)

	assert.Equal(t, strings.Repeat("t", 60)+"...", card.Title)
	assert.Equal(t, strings.Repeat("e", 180)+"...", card.Excerpt)
}

func TestToPostCard_Fallbacks(t *testing.T) {
	presenter := NewPostPresenter()

	post := samplePost()
	post.Title = ""
	post.Excerpt = "<p>&nbsp;</p>"

	card := presenter.ToPostCard(post)

	assert.Equal(t, "Untitled Post", card.Title)
	assert.Equal(t, "No excerpt available", card.Excerpt)
}

func TestToPostDetail_SanitizesBody(t *testing.T) {
	presenter := NewPostPresenter()

	detail := presenter.ToPostDetail(samplePost())

	assert.Contains(t, string(detail.BodyHTML), "<p>Body text</p>")
	assert.NotContains(t, string(detail.BodyHTML), "<script>", "scripts never reach the template")
}

func TestToListingViewModel_States(t *testing.T) {
	presenter := NewPostPresenter()

	t.Run("error becomes inline message", func(t *testing.T) {
		vm := presenter.ToListingViewModel(application.ListingSnapshot{
			Err:      content.ErrUnreachable,
			Controls: listing.ControlsFor(1, 1),
		})
		assert.Equal(t, "Could not reach the content server. Please try again.", vm.ErrorMessage)
		assert.False(t, vm.Empty, "error state and empty state are distinct")
	})

	t.Run("unknown error gets generic message", func(t *testing.T) {
		vm := presenter.ToListingViewModel(application.ListingSnapshot{
			Err:      errors.New("boom"),
			Controls: listing.ControlsFor(1, 1),
		})
		assert.Equal(t, "Error fetching posts.", vm.ErrorMessage)
	})

	t.Run("no items and no error is empty", func(t *testing.T) {
		vm := presenter.ToListingViewModel(application.ListingSnapshot{
			Controls: listing.ControlsFor(1, 1),
		})
		assert.True(t, vm.Empty)
		assert.Empty(t, vm.ErrorMessage)
	})

	t.Run("loading suppresses empty state", func(t *testing.T) {
		vm := presenter.ToListingViewModel(application.ListingSnapshot{
			Loading:  true,
			Controls: listing.ControlsFor(1, 1),
		})
		assert.True(t, vm.Loading)
		assert.False(t, vm.Empty)
	})

	t.Run("items render with pagination", func(t *testing.T) {
		vm := presenter.ToListingViewModel(application.ListingSnapshot{
			Items:    []*content.Post{samplePost()},
			Page:     2,
			Controls: listing.ControlsFor(2, 3),
		})
		require.Len(t, vm.Posts, 1)
		assert.Equal(t, 2, vm.Pagination.CurrentPage)
		assert.False(t, vm.Empty)
	})
}

func TestToPaginationVM(t *testing.T) {
	vm := ToPaginationVM(listing.ControlsFor(2, 4))

	assert.Equal(t, 2, vm.CurrentPage)
	assert.Equal(t, 4, vm.TotalPages)
	assert.Equal(t, []int{1, 2, 3, 4}, vm.Pages)
	assert.True(t, vm.PrevEnabled)
	assert.True(t, vm.NextEnabled)
	assert.Equal(t, 1, vm.PrevPage)
	assert.Equal(t, 3, vm.NextPage)
	assert.Equal(t, "middle", vm.State)
}

func TestToCategoryVM(t *testing.T) {
	presenter := NewCategoryPresenter()

	vm := presenter.ToCategoryVM(&content.Category{
		ID:    3,
		Slug:  "web-development",
		Name:  "Web Development",
		Count: 9,
	})

	assert.Equal(t, "/category/web-development", vm.URL)
	assert.Equal(t, 9, vm.Count)
	assert.Equal(t, "No description available.", vm.Description, "missing description gets a fallback")
}
