package cmsclient

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/amar2mail9/Polytechub.com/domain/content"
)

// WordPress emits local timestamps without a zone offset.
const wpTimeLayout = "2006-01-02T15:04:05"

func mapPosts(raw []postJSON) []*content.Post {
	posts := make([]*content.Post, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, mapPost(p))
	}
	return posts
}

func mapPost(raw postJSON) *content.Post {
	return &content.Post{
		ID:               raw.ID,
		Slug:             raw.Slug,
		Title:            content.RichText(raw.Title.Rendered),
		Excerpt:          content.RichText(raw.Excerpt.Rendered),
		Body:             content.RichText(raw.Content.Rendered),
		PublishedAt:      parseWPTime(raw.Date),
		FeaturedImageURL: firstImageURL(raw.FeaturedImage),
		CategoryIDs:      raw.Categories,
		CategoryLabel:    labelFromFragment(raw.CategoryHTML),
		Link:             raw.Link,
	}
}

func mapCategories(raw []categoryJSON) []*content.Category {
	categories := make([]*content.Category, 0, len(raw))
	for _, c := range raw {
		categories = append(categories, mapCategory(c))
	}
	return categories
}

func mapCategory(raw categoryJSON) *content.Category {
	return &content.Category{
		ID:          raw.ID,
		Slug:        raw.Slug,
		Name:        raw.Name,
		Description: raw.Description,
		Count:       raw.Count,
	}
}

func parseWPTime(s string) time.Time {
	if t, err := time.Parse(wpTimeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// firstImageURL picks the leading URL out of the [url, width, height]
// tuple the image field carries.
func firstImageURL(img featuredImageJSON) string {
	if len(img.Full) == 0 {
		return ""
	}
	if s, ok := img.Full[0].(string); ok {
		return s
	}
	return ""
}

// labelFromFragment extracts the human-readable category label out of the
// markup fragment the API embeds, e.g. `<a href="..." rel="category
// tag">Blockchain</a>`. Falls back to the fragment's full text when no
// anchor is present.
func labelFromFragment(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	if a := doc.Find("a").First(); a.Length() > 0 {
		return strings.TrimSpace(a.Text())
	}
	return strings.TrimSpace(doc.Text())
}
