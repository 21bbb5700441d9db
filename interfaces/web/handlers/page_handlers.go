package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amar2mail9/Polytechub.com/application"
	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/interfaces/web/presenters"
	"github.com/amar2mail9/Polytechub.com/logging"
)

// basePage carries the fields the shared layout needs.
type basePage struct {
	Title       string
	Description string
}

// PageHandlers serves the routed content pages.
type PageHandlers struct {
	contentService *application.ContentService

	postPresenter     *presenters.PostPresenter
	categoryPresenter *presenters.CategoryPresenter

	logger *logging.Logger
}

// NewPageHandlers creates the content page handlers.
func NewPageHandlers(
	contentService *application.ContentService,
	postPresenter *presenters.PostPresenter,
	categoryPresenter *presenters.CategoryPresenter,
	logger *logging.Logger,
) *PageHandlers {
	if logger == nil {
		logger = logging.Default()
	}
	return &PageHandlers{
		contentService:    contentService,
		postPresenter:     postPresenter,
		categoryPresenter: categoryPresenter,
		logger:            logger.WithComponent("web"),
	}
}

type homePage struct {
	basePage
	Latest     []presenters.PostCardVM
	Categories []presenters.CategoryVM
}

// Home renders the homepage hero sections: latest posts plus categories.
// Either fetch failing degrades that section to empty rather than failing
// the page.
func (h *PageHandlers) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	latest, err := h.contentService.LatestPosts(ctx)
	if err != nil {
		h.logger.Error("home: latest posts fetch failed", "error", err)
	}
	categories, err := h.contentService.Categories(ctx)
	if err != nil {
		h.logger.Error("home: categories fetch failed", "error", err)
	}

	RenderPage(w, http.StatusOK, "home", homePage{
		basePage:   basePage{Title: "Home"},
		Latest:     h.postPresenter.ToPostCards(latest),
		Categories: h.categoryPresenter.ToCategoryVMs(categories),
	})
}

type blogPage struct {
	basePage
	Listing    presenters.ListingVM
	Latest     []presenters.PostCardVM
	Categories []presenters.CategoryVM
}

// BlogPage renders the server-paginated global listing: 6 posts per page,
// page count from transport metadata, sidebar with latest posts and
// categories.
func (h *PageHandlers) BlogPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := pageParam(r)

	ctrl := h.contentService.NewBlogListing()
	defer ctrl.Close()

	ctrl.Load(ctx)
	if page > 1 {
		// Out-of-range requests are rejected by the controller: the view
		// stays on page 1 with no extra fetch.
		ctrl.OnPageChange(ctx, page)
	}
	listingVM := h.postPresenter.ToListingViewModel(ctrl.Snapshot())

	latest, err := h.contentService.LatestPosts(ctx)
	if err != nil {
		h.logger.Error("blog: latest posts fetch failed", "error", err)
	}
	categories, err := h.contentService.Categories(ctx)
	if err != nil {
		h.logger.Error("blog: categories fetch failed", "error", err)
	}

	RenderPage(w, http.StatusOK, "blog", blogPage{
		basePage:   basePage{Title: "Blog"},
		Listing:    listingVM,
		Latest:     h.postPresenter.ToPostCards(latest),
		Categories: h.categoryPresenter.ToCategoryVMs(categories),
	})
}

type categoryPage struct {
	basePage
	Category presenters.CategoryVM
	Listing  presenters.ListingVM
}

// CategoryPage renders a client-paginated category listing: the full
// category set is fetched once, searched and sliced locally.
func (h *PageHandlers) CategoryPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "category")

	category, err := h.contentService.CategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			RenderPage(w, http.StatusNotFound, "not_found", notFoundPage(slug, "Category not found."))
			return
		}
		h.logger.Error("category: lookup failed", "slug", slug, "error", err)
		RenderPage(w, http.StatusOK, "error", errorPage("Error fetching category data."))
		return
	}

	ctrl := h.contentService.NewCategoryListing(category.ID)
	defer ctrl.Close()

	ctrl.Load(ctx)
	if q := r.URL.Query().Get("q"); q != "" {
		// The query arrives fully formed in the URL, so it settles
		// immediately instead of waiting out the quiescence window.
		ctrl.OnQueryChange(q)
		ctrl.SettleQuery()
	}
	if page := pageParam(r); page > 1 {
		ctrl.OnPageChange(ctx, page)
	}

	categoryVM := h.categoryPresenter.ToCategoryVM(category)
	RenderPage(w, http.StatusOK, "category", categoryPage{
		basePage: basePage{Title: category.Name, Description: categoryVM.Description},
		Category: categoryVM,
		Listing:  h.postPresenter.ToListingViewModel(ctrl.Snapshot()),
	})
}

type postPage struct {
	basePage
	Post presenters.PostDetailVM
}

// PostDetail renders a single post resolved by slug.
func (h *PageHandlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	post, err := h.contentService.PostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			RenderPage(w, http.StatusNotFound, "not_found", notFoundPage(slug, "Blog not found"))
			return
		}
		h.logger.Error("post: lookup failed", "slug", slug, "error", err)
		RenderPage(w, http.StatusOK, "error", errorPage("Error fetching the post."))
		return
	}

	detail := h.postPresenter.ToPostDetail(post)
	RenderPage(w, http.StatusOK, "post", postPage{
		basePage: basePage{Title: detail.Title},
		Post:     detail,
	})
}

// NotFound renders the catch-all 404 page.
func (h *PageHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderPage(w, http.StatusNotFound, "not_found", notFoundPage("Page Not Found", "The page you are looking for does not exist."))
}

func pageParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

type messagePage struct {
	basePage
	Message string
}

func notFoundPage(title, message string) messagePage {
	return messagePage{basePage: basePage{Title: title}, Message: message}
}

func errorPage(message string) messagePage {
	return messagePage{basePage: basePage{Title: "Error"}, Message: message}
}
