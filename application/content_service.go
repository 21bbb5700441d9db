// Package application wires the content pipeline to the pages that consume
// it: listing controllers per view context, content orchestration for the
// page handlers, and the contact form relay.
package application

import (
	"context"

	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/domain/listing"
	"github.com/amar2mail9/Polytechub.com/infrastructure/cmsclient"
	"github.com/amar2mail9/Polytechub.com/logging"
)

// ContentService orchestrates the content source for the routed pages.
type ContentService struct {
	source contracts.ContentSource
	logger *logging.Logger
}

// NewContentService creates a content service.
func NewContentService(source contracts.ContentSource, logger *logging.Logger) *ContentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContentService{
		source: source,
		logger: logger.WithComponent("content"),
	}
}

// NewBlogListing builds the server-paginated controller backing the global
// blog listing: 6 posts per page turn, page count from transport metadata.
func (s *ContentService) NewBlogListing() *ListingController {
	return NewListingController(ListingConfig{
		Mode:    listing.ServerPaginated,
		PerPage: cmsclient.ListingPerPage,
		Fetch: func(ctx context.Context, page int) (*contracts.PostPage, error) {
			return s.source.FetchPosts(ctx, contracts.PostQuery{
				Page:    page,
				PerPage: cmsclient.ListingPerPage,
			})
		},
	}, s.logger)
}

// NewCategoryListing builds the client-paginated controller backing a
// category page: the full category set is fetched once and sliced locally.
func (s *ContentService) NewCategoryListing(categoryID int64) *ListingController {
	return NewListingController(ListingConfig{
		Mode:    listing.ClientPaginated,
		PerPage: cmsclient.ListingPerPage,
		Fetch: func(ctx context.Context, _ int) (*contracts.PostPage, error) {
			return s.source.FetchPosts(ctx, contracts.PostQuery{CategoryID: categoryID})
		},
	}, s.logger)
}

// LatestPosts returns the newest posts for the "latest" rails and hero
// sections.
func (s *ContentService) LatestPosts(ctx context.Context) ([]*content.Post, error) {
	page, err := s.source.FetchPosts(ctx, contracts.PostQuery{PerPage: cmsclient.LatestPerPage})
	if err != nil {
		return nil, err
	}
	return page.Posts, nil
}

// Categories returns all categories with server-reported counts.
func (s *ContentService) Categories(ctx context.Context) ([]*content.Category, error) {
	return s.source.FetchCategories(ctx)
}

// PostBySlug resolves a single post for the detail view.
func (s *ContentService) PostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	return s.source.FetchPostBySlug(ctx, slug)
}

// CategoryBySlug resolves a category for the category listing header.
func (s *ContentService) CategoryBySlug(ctx context.Context, slug string) (*content.Category, error) {
	return s.source.FetchCategoryBySlug(ctx, slug)
}

// QuickSearch runs the server-side search variant used by the navigation
// quick-search overlay. An empty query returns no results without a round
// trip.
func (s *ContentService) QuickSearch(ctx context.Context, query string) ([]*content.Post, error) {
	if query == "" {
		return nil, nil
	}
	page, err := s.source.FetchPosts(ctx, contracts.PostQuery{Search: query})
	if err != nil {
		return nil, err
	}
	return page.Posts, nil
}
