package cmsclient

// JSON wire shapes for the WordPress-style REST API. Rich text fields come
// wrapped in a {"rendered": "..."} envelope; the rttpg fields are emitted by
// the post-grid plugin the source site runs.

type renderedJSON struct {
	Rendered string `json:"rendered"`
}

type featuredImageJSON struct {
	// Full is [url, width, height]; only the leading URL string matters.
	Full []any `json:"full"`
}

type postJSON struct {
	ID            int64             `json:"id"`
	Slug          string            `json:"slug"`
	Date          string            `json:"date"`
	Link          string            `json:"link"`
	Title         renderedJSON      `json:"title"`
	Excerpt       renderedJSON      `json:"excerpt"`
	Content       renderedJSON      `json:"content"`
	Categories    []int64           `json:"categories"`
	CategoryHTML  string            `json:"rttpg_category"`
	FeaturedImage featuredImageJSON `json:"rttpg_featured_image_url"`
}

type categoryJSON struct {
	ID          int64  `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
}

// totalPagesHeader is the transport-level metadata header carrying the
// total page count for a paginated posts response.
const totalPagesHeader = "X-WP-TotalPages"
