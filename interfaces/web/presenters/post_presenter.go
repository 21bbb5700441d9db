// Package presenters transforms domain data into UI-ready view models.
package presenters

import (
	"errors"
	"html/template"
	"time"

	"github.com/amar2mail9/Polytechub.com/application"
	"github.com/amar2mail9/Polytechub.com/domain/content"
)

// Display truncation limits, in runes of the plain-text projection.
const (
	titleRunes   = 60
	excerptRunes = 180
)

// PostCardVM is one post card in a listing or rail.
type PostCardVM struct {
	Slug          string
	Title         string
	Excerpt       string
	ImageURL      string
	CategoryLabel string
	PublishedAt   string
	URL           string
}

// PostDetailVM is the single-post detail view.
type PostDetailVM struct {
	Slug        string
	Title       string
	BodyHTML    template.HTML
	PublishedAt string
}

// ListingVM is the rendered state of one listing view.
type ListingVM struct {
	Posts        []PostCardVM
	Pagination   PaginationVM
	Query        string
	Loading      bool
	ErrorMessage string
	Empty        bool
}

// PostPresenter transforms posts and listing snapshots for display.
type PostPresenter struct{}

// NewPostPresenter creates a post presenter.
func NewPostPresenter() *PostPresenter {
	return &PostPresenter{}
}

// ToPostCard converts one post to a listing card. Titles and excerpts are
// truncated on their plain-text projection, never on raw markup.
func (p *PostPresenter) ToPostCard(post *content.Post) PostCardVM {
	excerpt := "No excerpt available"
	if post.HasExcerpt() {
		excerpt = post.Excerpt.Truncate(excerptRunes)
	}
	return PostCardVM{
		Slug:          post.Slug,
		Title:         truncatedTitle(post),
		Excerpt:       excerpt,
		ImageURL:      post.FeaturedImageURL,
		CategoryLabel: post.CategoryLabel,
		PublishedAt:   formatDate(post.PublishedAt),
		URL:           "/blog-page/" + post.Slug,
	}
}

// ToPostCards converts a post collection, preserving order.
func (p *PostPresenter) ToPostCards(posts []*content.Post) []PostCardVM {
	cards := make([]PostCardVM, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, p.ToPostCard(post))
	}
	return cards
}

// ToPostDetail converts a post for the detail page. The body passes the
// sanitizer before being marked safe for template embedding.
func (p *PostPresenter) ToPostDetail(post *content.Post) PostDetailVM {
	return PostDetailVM{
		Slug:        post.Slug,
		Title:       post.DisplayTitle(),
		BodyHTML:    template.HTML(post.Body.Sanitized()),
		PublishedAt: formatDate(post.PublishedAt),
	}
}

// ToListingViewModel converts a listing snapshot into render state. Fetch
// errors become a non-fatal inline message; an empty result set gets an
// explicit empty state distinct from the error state.
func (p *PostPresenter) ToListingViewModel(snap application.ListingSnapshot) ListingVM {
	vm := ListingVM{
		Posts:      p.ToPostCards(snap.Items),
		Pagination: ToPaginationVM(snap.Controls),
		Query:      snap.RawQuery,
		Loading:    snap.Loading,
	}
	if snap.Err != nil {
		vm.ErrorMessage = errorMessage(snap.Err)
	}
	vm.Empty = len(vm.Posts) == 0 && vm.ErrorMessage == "" && !vm.Loading
	return vm
}

func truncatedTitle(post *content.Post) string {
	title := post.Title.Truncate(titleRunes)
	if title == "" {
		return "Untitled Post"
	}
	return title
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return "Category not found."
	case errors.Is(err, content.ErrUnreachable):
		return "Could not reach the content server. Please try again."
	default:
		return "Error fetching posts."
	}
}
