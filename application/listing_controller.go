package application

import (
	"context"
	"sync"
	"time"

	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/domain/listing"
	"github.com/amar2mail9/Polytechub.com/logging"
	"github.com/amar2mail9/Polytechub.com/platform/debounce"
)

// FetchFunc loads one item collection for a listing. Server-paginated
// listings receive the page to fetch; client-paginated listings ignore it
// and return the full set.
type FetchFunc func(ctx context.Context, page int) (*contracts.PostPage, error)

// ListingConfig describes one listing view context.
type ListingConfig struct {
	Mode    listing.Mode
	PerPage int
	Fetch   FetchFunc

	// DebounceWindow is the search quiescence window; <= 0 uses the
	// debounce package default.
	DebounceWindow time.Duration

	// OnChange, when set, is invoked with a fresh snapshot after every
	// asynchronous state change (settled query, completed fetch). It runs
	// outside the controller lock.
	OnChange func(ListingSnapshot)
}

// ListingSnapshot is the read-only render state exposed to the view layer.
type ListingSnapshot struct {
	Items        []*content.Post
	Page         int
	PageCount    int
	Controls     listing.Controls
	RawQuery     string
	SettledQuery string
	Loading      bool
	Err          error
}

// ListingController composes the content pipeline for one view context:
// fetch, debounced query, and view derivation. One instance per mounted
// listing; Close tears it down. Safe for concurrent use.
//
// Every fetch carries a monotonically increasing request token; a response
// whose token is no longer the latest issued is discarded, so a slow stale
// response can never overwrite a fresher one.
type ListingController struct {
	cfg    ListingConfig
	logger *logging.Logger

	mu              sync.Mutex
	rawItems        []*content.Post
	serverPageCount int
	page            int
	rawQuery        string
	settledQuery    string
	loading         bool
	err             error
	token           uint64
	closed          bool

	deb *debounce.Debouncer
}

// NewListingController creates a controller in its initial state (page 1,
// empty query, nothing loaded). Call Load to populate it.
func NewListingController(cfg ListingConfig, logger *logging.Logger) *ListingController {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	c := &ListingController{
		cfg:    cfg,
		logger: logger.WithComponent("listing"),
		page:   1,
	}
	c.deb = debounce.New(cfg.DebounceWindow, c.applySettledQuery)
	return c
}

// Load performs the initial fetch, or the reset-and-refetch that follows an
// identifying-parameter change. All transient state returns to its initial
// values before the fetch is issued.
func (c *ListingController) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.rawItems = nil
	c.serverPageCount = 1
	c.page = 1
	c.rawQuery = ""
	c.settledQuery = ""
	c.err = nil
	token := c.beginFetchLocked()
	c.mu.Unlock()

	c.fetch(ctx, token, 1)
}

// OnPageChange moves the listing to page n. Requests outside the valid page
// range are no-ops: no state change, no fetch. In server-paginated mode a
// legal move issues a fresh fetch; in client-paginated mode the view is
// re-derived locally.
func (c *ListingController) OnPageChange(ctx context.Context, n int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	controls := listing.ControlsFor(c.page, c.currentPageCountLocked())
	if !controls.Allows(n) {
		c.mu.Unlock()
		return
	}
	c.page = n
	if c.cfg.Mode == listing.ClientPaginated {
		c.mu.Unlock()
		return
	}
	// A page turn invalidates the pending view: back to loading before any
	// new items are shown, previous items kept visible meanwhile.
	token := c.beginFetchLocked()
	c.mu.Unlock()

	c.fetch(ctx, token, n)
}

// OnQueryChange feeds a raw query edit into the debouncer. The filtered
// view only changes once the input quiesces.
func (c *ListingController) OnQueryChange(raw string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.rawQuery = raw
	c.mu.Unlock()

	c.deb.Observe(raw)
}

// SettleQuery forces the pending query, if any, to settle immediately.
// Useful when the query arrives fully formed (e.g. as a URL parameter).
func (c *ListingController) SettleQuery() {
	c.deb.Flush()
}

// Snapshot derives the current render state. Derivation is pure: calling
// Snapshot twice without an intervening state change yields equal views.
func (c *ListingController) Snapshot() ListingSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := listing.Derive(c.cfg.Mode, c.rawItems, c.settledQuery, c.page, c.cfg.PerPage, c.serverPageCount)
	return ListingSnapshot{
		Items:        view.Items,
		Page:         view.Page,
		PageCount:    view.PageCount,
		Controls:     listing.ControlsFor(view.Page, view.PageCount),
		RawQuery:     c.rawQuery,
		SettledQuery: c.settledQuery,
		Loading:      c.loading,
		Err:          c.err,
	}
}

// Close tears the controller down: the pending debounce emission is
// abandoned and late fetch responses are discarded. No state updates occur
// after Close.
func (c *ListingController) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.deb.Close()
}

// beginFetchLocked issues a new request token and flips the loading flag.
// The previously displayed collection is deliberately not discarded.
func (c *ListingController) beginFetchLocked() uint64 {
	c.token++
	c.loading = true
	return c.token
}

func (c *ListingController) fetch(ctx context.Context, token uint64, page int) {
	result, err := c.cfg.Fetch(ctx, page)

	c.mu.Lock()
	if c.closed || token != c.token {
		// A newer fetch was issued while this one was in flight; its
		// result is authoritative, ours is dropped.
		c.mu.Unlock()
		c.logger.Debug("discarding stale fetch response", "token", token)
		return
	}
	c.loading = false
	if err != nil {
		c.err = err
		c.mu.Unlock()
		c.logger.Error("listing fetch failed", "error", err, "page", page)
		c.notify()
		return
	}
	c.err = nil
	c.rawItems = result.Posts
	c.serverPageCount = result.TotalPages
	c.mu.Unlock()

	c.notify()
}

// applySettledQuery is the debouncer's emission target.
func (c *ListingController) applySettledQuery(settled string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.settledQuery = settled
	// Re-derivation clamps the page if the filter shrank the set below it.
	view := listing.Derive(c.cfg.Mode, c.rawItems, c.settledQuery, c.page, c.cfg.PerPage, c.serverPageCount)
	c.page = view.Page
	c.mu.Unlock()

	c.notify()
}

func (c *ListingController) notify() {
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(c.Snapshot())
	}
}

func (c *ListingController) currentPageCountLocked() int {
	view := listing.Derive(c.cfg.Mode, c.rawItems, c.settledQuery, c.page, c.cfg.PerPage, c.serverPageCount)
	return view.PageCount
}
