// Package content holds the domain model for CMS-served blog content.
// Values are immutable once fetched: a newer fetch replaces them wholesale,
// nothing mutates them in place.
package content

import "time"

// Post is one content entry returned by the remote CMS.
type Post struct {
	ID               int64
	Slug             string
	Title            RichText
	Excerpt          RichText
	Body             RichText
	PublishedAt      time.Time
	FeaturedImageURL string
	CategoryIDs      []int64

	// CategoryLabel is the human-readable label the source embeds in a
	// markup fragment alongside the category ids. Already plain text.
	CategoryLabel string

	Link string
}

// DisplayTitle returns the plain-text title, or a fallback when the
// source delivered an empty one.
func (p *Post) DisplayTitle() string {
	title := p.Title.PlainText()
	if title == "" {
		return "Untitled Post"
	}
	return title
}

// HasExcerpt reports whether the post carries a usable excerpt.
func (p *Post) HasExcerpt() bool {
	return p.Excerpt.PlainText() != ""
}

// Category is a tag-like grouping of posts. Count is the server-reported
// aggregate and is never recomputed client-side.
type Category struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Count       int
}
