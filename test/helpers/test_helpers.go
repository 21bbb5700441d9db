package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/test/mocks"
)

// MockSources holds the external-interface mocks for easy injection
type MockSources struct {
	Content *mocks.MockContentSource
	Mail    *mocks.MockMailRelay
}

// NewMockSources creates a new set of external-interface mocks
func NewMockSources() *MockSources {
	return &MockSources{
		Content: &mocks.MockContentSource{},
		Mail:    &mocks.MockMailRelay{},
	}
}

// ExpectPosts sets up expectations for a posts fetch matching any query
func (m *MockSources) ExpectPosts(page *contracts.PostPage) {
	m.Content.On("FetchPosts", mock.Anything, mock.Anything).Return(page, nil)
}

// ExpectPostsForQuery sets up expectations for a posts fetch with an exact query
func (m *MockSources) ExpectPostsForQuery(q contracts.PostQuery, page *contracts.PostPage) {
	m.Content.On("FetchPosts", mock.Anything, q).Return(page, nil)
}

// ExpectPostsError sets up expectations for a failing posts fetch
func (m *MockSources) ExpectPostsError(err error) {
	m.Content.On("FetchPosts", mock.Anything, mock.Anything).Return((*contracts.PostPage)(nil), err)
}

// ExpectCategoryBySlug sets up expectations for a category lookup
func (m *MockSources) ExpectCategoryBySlug(slug string, category *content.Category) {
	m.Content.On("FetchCategoryBySlug", mock.Anything, slug).Return(category, nil)
}

// AssertAllExpectations asserts expectations on every mock
func (m *MockSources) AssertAllExpectations(t *testing.T) {
	m.Content.AssertExpectations(t)
	m.Mail.AssertExpectations(t)
}

// TestData builds domain fixtures with sensible defaults
type TestData struct{}

// NewTestData creates a test data builder
func NewTestData() *TestData {
	return &TestData{}
}

// SimplePost creates a post with a plain title
func (d *TestData) SimplePost(id int64, title string) *content.Post {
	return &content.Post{
		ID:          id,
		Slug:        fmt.Sprintf("post-%d", id),
		Title:       content.RichText(title),
		Excerpt:     content.RichText("<p>Excerpt for " + title + "</p>"),
		PublishedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
}

// Posts creates n posts titled "Post 1".."Post n"
func (d *TestData) Posts(n int) []*content.Post {
	posts := make([]*content.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, d.SimplePost(int64(i), fmt.Sprintf("Post %d", i)))
	}
	return posts
}

// SimpleCategory creates a category with a server-reported count
func (d *TestData) SimpleCategory(id int64, slug string, count int) *content.Category {
	return &content.Category{
		ID:    id,
		Slug:  slug,
		Name:  slug,
		Count: count,
	}
}
