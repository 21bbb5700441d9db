// Package listing implements the view-derivation half of the content-listing
// pipeline: pure functions that turn a fetched item set, a settled search
// query, and a page number into exactly what a listing view shows.
package listing

import "github.com/amar2mail9/Polytechub.com/domain/content"

// Mode selects how a listing paginates.
type Mode int

const (
	// ServerPaginated listings fetch perPage items per page turn; the page
	// count comes from transport metadata. Used by the global blog listing.
	ServerPaginated Mode = iota

	// ClientPaginated listings fetch the full item set once and slice it
	// locally. Used by the category listing.
	ClientPaginated
)

// View is the derived render state for one listing page.
type View struct {
	Items     []*content.Post
	Page      int
	PageCount int
}

// Filter returns the posts whose plain-text title contains the case-folded
// query as a substring. An empty query keeps everything. The filter is
// stable: source order is preserved, and the input slice is never mutated.
func Filter(posts []*content.Post, query string) []*content.Post {
	if query == "" {
		return posts
	}
	filtered := make([]*content.Post, 0, len(posts))
	for _, p := range posts {
		if p.Title.ContainsFold(query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Derive computes the visible slice and page count for a listing. It is a
// pure function of its inputs: same inputs, same output.
//
// In ServerPaginated mode the raw items already are the page window, so only
// the filter applies locally; serverPageCount carries the transport metadata
// hint (values < 1 fall back to 1). In ClientPaginated mode the filtered set
// is sliced into perPage windows.
//
// A page outside [1, pageCount] is clamped. That covers the case where a
// filter shrinks the result set below the current page: the view lands on
// the last valid page instead of showing an empty one.
func Derive(mode Mode, raw []*content.Post, settledQuery string, page, perPage, serverPageCount int) View {
	filtered := Filter(raw, settledQuery)

	switch mode {
	case ClientPaginated:
		pageCount := (len(filtered) + perPage - 1) / perPage
		if pageCount < 1 {
			pageCount = 1
		}
		page = clampPage(page, pageCount)
		start := (page - 1) * perPage
		end := start + perPage
		if start > len(filtered) {
			start = len(filtered)
		}
		if end > len(filtered) {
			end = len(filtered)
		}
		return View{Items: filtered[start:end], Page: page, PageCount: pageCount}

	default: // ServerPaginated
		pageCount := serverPageCount
		if pageCount < 1 {
			pageCount = 1
		}
		return View{Items: filtered, Page: clampPage(page, pageCount), PageCount: pageCount}
	}
}

func clampPage(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}
