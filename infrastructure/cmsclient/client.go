// Package cmsclient implements the source fetcher side of the content
// pipeline: a thin HTTP client over the headless CMS REST API. Every call
// is a fresh round trip; there is no caching layer. All failures are
// classified into the content error kinds and returned as values, never
// panics.
package cmsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/logging"
	"github.com/amar2mail9/Polytechub.com/platform/metrics"
)

// Per-page sizes used across the site. Listing contexts show 6 posts per
// page, "latest posts" rails show 3.
const (
	ListingPerPage = 6
	LatestPerPage  = 3
)

// DefaultTimeout bounds a single CMS round trip.
const DefaultTimeout = 10 * time.Second

// Client talks to a WordPress-style REST API rooted at baseURL
// (e.g. https://example.com/wp-json/wp/v2).
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

var _ contracts.ContentSource = (*Client)(nil)

// New creates a CMS client. A timeout <= 0 falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.WithComponent("cmsclient"),
	}
}

// FetchPosts returns one collection of posts in server-provided order.
// TotalPages is parsed from the X-WP-TotalPages response header and
// defaults to 1 when the header is absent or unparsable.
func (c *Client) FetchPosts(ctx context.Context, q contracts.PostQuery) (*contracts.PostPage, error) {
	params := url.Values{}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.CategoryID > 0 {
		params.Set("categories", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var raw []postJSON
	header, err := c.getJSON(ctx, "/posts", params, &raw)
	if err != nil {
		return nil, err
	}

	page := &contracts.PostPage{
		Posts:      mapPosts(raw),
		TotalPages: parseTotalPages(header),
	}
	c.logger.CMS("fetched posts", "count", len(page.Posts), "total_pages", page.TotalPages, "page", q.Page)
	return page, nil
}

// FetchPostBySlug resolves a single post for the detail view.
func (c *Client) FetchPostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	params := url.Values{}
	params.Set("slug", slug)

	var raw []postJSON
	if _, err := c.getJSON(ctx, "/posts", params, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: post %q", content.ErrNotFound, slug)
	}
	return mapPost(raw[0]), nil
}

// FetchCategories returns all categories.
func (c *Client) FetchCategories(ctx context.Context) ([]*content.Category, error) {
	var raw []categoryJSON
	if _, err := c.getJSON(ctx, "/categories", nil, &raw); err != nil {
		return nil, err
	}
	return mapCategories(raw), nil
}

// FetchCategoryBySlug resolves a single category.
func (c *Client) FetchCategoryBySlug(ctx context.Context, slug string) (*content.Category, error) {
	params := url.Values{}
	params.Set("slug", slug)

	var raw []categoryJSON
	if _, err := c.getJSON(ctx, "/categories", params, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: category %q", content.ErrNotFound, slug)
	}
	return mapCategory(raw[0]), nil
}

// getJSON issues a GET and decodes the JSON body into out. It returns the
// response header so callers can read transport metadata.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) (header http.Header, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveCMSFetch(path, time.Since(start).Seconds(), err)
	}()

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrMalformedResponse, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.CMSError("request failed", err, path)
		return nil, fmt.Errorf("%w: %v", content.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.CMSError("unexpected status", fmt.Errorf("status %d", resp.StatusCode), path)
		return nil, fmt.Errorf("%w: %s returned %d", content.ErrServerStatus, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.CMSError("decode failed", err, path)
		return nil, fmt.Errorf("%w: %v", content.ErrMalformedResponse, err)
	}
	return resp.Header, nil
}

func parseTotalPages(header http.Header) int {
	if header == nil {
		return 1
	}
	n, err := strconv.Atoi(header.Get(totalPagesHeader))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
