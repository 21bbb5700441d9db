package content

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes all markup; used for the plain-text projection.
// ugcPolicy keeps the markup a CMS post body is allowed to carry.
var (
	stripPolicy = bluemonday.StrictPolicy()
	ugcPolicy   = bluemonday.UGCPolicy()
)

// RichText is an opaque markup-bearing text value as delivered by the CMS
// (WordPress "rendered" fields). Search and truncation never operate on the
// raw markup: both go through the decoded plain-text projection.
type RichText string

// Raw returns the markup exactly as the source delivered it.
func (t RichText) Raw() string { return string(t) }

// IsEmpty reports whether the value carries no text at all.
func (t RichText) IsEmpty() bool { return strings.TrimSpace(string(t)) == "" }

// PlainText strips markup and decodes entities, yielding the projection
// used for substring matching and display truncation.
func (t RichText) PlainText() string {
	stripped := stripPolicy.Sanitize(string(t))
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// Sanitized returns markup safe to embed in a rendered page. The CMS is a
// remote system; its payloads are treated as untrusted.
func (t RichText) Sanitized() string {
	return ugcPolicy.Sanitize(string(t))
}

// Truncate shortens the plain-text projection to at most n runes, appending
// an ellipsis marker when text was cut. Truncation is rune-safe: it never
// slices bytes out of multi-byte sequences and never slices raw markup.
func (t RichText) Truncate(n int) string {
	plain := t.PlainText()
	runes := []rune(plain)
	if len(runes) <= n {
		return plain
	}
	return string(runes[:n]) + "..."
}

// ContainsFold reports whether the case-folded plain-text projection
// contains the case-folded query as a substring. An empty query matches.
func (t RichText) ContainsFold(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(
		strings.ToLower(t.PlainText()),
		strings.ToLower(query),
	)
}
