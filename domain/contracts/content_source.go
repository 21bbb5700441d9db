// Package contracts defines the interfaces the application layer depends on.
package contracts

import (
	"context"

	"github.com/amar2mail9/Polytechub.com/domain/content"
)

// PostQuery parameterizes a posts fetch against the remote CMS.
type PostQuery struct {
	Page       int    // 1-indexed; 0 means unset
	PerPage    int    // 0 means the server default
	CategoryID int64  // 0 means no category filter
	Search     string // server-side search term, empty means none
}

// PostPage is one fetched page of posts plus the total-page-count hint
// extracted from transport metadata. TotalPages defaults to 1 when the
// source provided no usable hint.
type PostPage struct {
	Posts      []*content.Post
	TotalPages int
}

// ContentSource abstracts the remote CMS REST API. Implementations issue a
// fresh round trip per call; there is no caching layer in between.
type ContentSource interface {
	// FetchPosts returns posts in server-provided order for the given query.
	FetchPosts(ctx context.Context, q PostQuery) (*PostPage, error)

	// FetchPostBySlug resolves one post for the detail view.
	// Returns content.ErrNotFound when the slug matches nothing.
	FetchPostBySlug(ctx context.Context, slug string) (*content.Post, error)

	// FetchCategories returns all categories with server-reported counts.
	FetchCategories(ctx context.Context) ([]*content.Category, error)

	// FetchCategoryBySlug resolves one category.
	// Returns content.ErrNotFound when the slug matches nothing.
	FetchCategoryBySlug(ctx context.Context, slug string) (*content.Category, error)
}

// MailRelay abstracts the third-party email-delivery service the contact
// form is relayed through.
type MailRelay interface {
	Send(ctx context.Context, msg ContactMessage) error
}

// ContactMessage is one contact form submission.
type ContactMessage struct {
	FromName  string
	FromEmail string
	Subject   string
	Message   string
}
