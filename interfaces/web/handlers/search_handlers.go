package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amar2mail9/Polytechub.com/application"
	"github.com/amar2mail9/Polytechub.com/logging"
)

// SearchHandlers serves the navigation quick-search endpoint.
type SearchHandlers struct {
	contentService *application.ContentService
	logger         *logging.Logger
}

// NewSearchHandlers creates the quick-search handlers.
func NewSearchHandlers(contentService *application.ContentService, logger *logging.Logger) *SearchHandlers {
	if logger == nil {
		logger = logging.Default()
	}
	return &SearchHandlers{
		contentService: contentService,
		logger:         logger.WithComponent("search"),
	}
}

type searchResult struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// QuickSearch runs the server-side search variant behind the navbar search
// box and returns a compact JSON result list. An empty query yields an
// empty list without touching the source.
func (h *SearchHandlers) QuickSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	posts, err := h.contentService.QuickSearch(r.Context(), query)
	if err != nil {
		h.logger.Error("quick search failed", "query", query, "error", err)
		http.Error(w, "search unavailable", http.StatusBadGateway)
		return
	}

	results := make([]searchResult, 0, len(posts))
	for _, p := range posts {
		results = append(results, searchResult{
			ID:    p.ID,
			Slug:  p.Slug,
			Title: p.DisplayTitle(),
			URL:   "/blog-page/" + p.Slug,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.logger.Error("encode search results failed", "error", err)
	}
}
