package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amar2mail9/Polytechub.com/domain/content"
)

func makePosts(titles ...string) []*content.Post {
	posts := make([]*content.Post, 0, len(titles))
	for i, title := range titles {
		posts = append(posts, &content.Post{
			ID:    int64(i + 1),
			Slug:  fmt.Sprintf("post-%d", i+1),
			Title: content.RichText(title),
		})
	}
	return posts
}

func numberedPosts(n int) []*content.Post {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = fmt.Sprintf("Post %d", i+1)
	}
	return makePosts(titles...)
}

func TestFilter(t *testing.T) {
	posts := makePosts(
		"The Rise of AI Agents",
		"Bitcoin Basics",
		"AI in Healthcare",
		"Web3 Primer",
	)

	t.Run("case_insensitive_substring", func(t *testing.T) {
		got := Filter(posts, "ai")
		require.Len(t, got, 2)
		assert.Equal(t, "The Rise of AI Agents", got[0].Title.PlainText())
		assert.Equal(t, "AI in Healthcare", got[1].Title.PlainText())
	})

	t.Run("empty_query_keeps_everything", func(t *testing.T) {
		assert.Len(t, Filter(posts, ""), 4)
	})

	t.Run("stable_order", func(t *testing.T) {
		got := Filter(posts, "i")
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1].ID, got[i].ID)
		}
	})

	t.Run("no_matches", func(t *testing.T) {
		assert.Empty(t, Filter(posts, "quantum"))
	})
}

func TestDerive_ClientPaginated(t *testing.T) {
	t.Run("slices_windows", func(t *testing.T) {
		// 14 items at 6 per page: 3 pages, last holds 2.
		posts := numberedPosts(14)

		view := Derive(ClientPaginated, posts, "", 3, 6, 0)
		assert.Equal(t, 3, view.PageCount)
		assert.Equal(t, 3, view.Page)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "Post 13", view.Items[0].Title.PlainText())
		assert.Equal(t, "Post 14", view.Items[1].Title.PlainText())
	})

	t.Run("filter_then_paginate", func(t *testing.T) {
		// Category of 8 posts, query matching 2 titles case-insensitively.
		posts := makePosts(
			"Blockchain and AI", "Proof of Stake", "Solidity Tips", "AI Audits",
			"Wallet Safety", "Gas Fees", "Layer 2", "Oracles",
		)

		view := Derive(ClientPaginated, posts, "ai", 1, 6, 0)
		assert.Len(t, view.Items, 2)
		assert.Equal(t, 1, view.PageCount)
	})

	t.Run("empty_set_still_one_page", func(t *testing.T) {
		view := Derive(ClientPaginated, nil, "", 1, 6, 0)
		assert.Empty(t, view.Items)
		assert.Equal(t, 1, view.PageCount)
		assert.Equal(t, 1, view.Page)
	})
}

func TestDerive_ClientPaginated_ClampPolicy(t *testing.T) {
	// 12 posts; titles "Post 1".."Post 12". Query "Post 1" matches
	// 1, 10, 11, 12 = 4 posts = one 6-item page.
	posts := numberedPosts(12)

	view := Derive(ClientPaginated, posts, "Post 1", 2, 6, 0)
	assert.Equal(t, 1, view.PageCount)
	assert.Equal(t, 1, view.Page, "page clamps to last valid page")
	assert.Len(t, view.Items, 4)
}

func TestDerive_ServerPaginated(t *testing.T) {
	t.Run("items_are_the_window", func(t *testing.T) {
		posts := numberedPosts(6)

		view := Derive(ServerPaginated, posts, "", 2, 6, 5)
		assert.Equal(t, 5, view.PageCount)
		assert.Equal(t, 2, view.Page)
		assert.Len(t, view.Items, 6)
	})

	t.Run("missing_metadata_defaults_to_one_page", func(t *testing.T) {
		view := Derive(ServerPaginated, numberedPosts(3), "", 1, 6, 0)
		assert.Equal(t, 1, view.PageCount)
	})

	t.Run("local_filter_still_applies", func(t *testing.T) {
		posts := makePosts("AI News", "Crypto News")
		view := Derive(ServerPaginated, posts, "ai", 1, 6, 5)
		assert.Len(t, view.Items, 1)
	})
}

func TestDerive_Determinism(t *testing.T) {
	posts := numberedPosts(14)

	first := Derive(ClientPaginated, posts, "post", 2, 6, 0)
	second := Derive(ClientPaginated, posts, "post", 2, 6, 0)
	assert.Equal(t, first, second, "same inputs yield the same view")
}

func TestDerive_FilterIdempotent(t *testing.T) {
	posts := numberedPosts(14)

	once := Filter(posts, "post 1")
	twice := Filter(once, "post 1")
	assert.Equal(t, once, twice)

	// Deriving over an already-filtered set matches deriving directly,
	// restricted to the same page window.
	direct := Derive(ClientPaginated, posts, "post 1", 1, 6, 0)
	refiltered := Derive(ClientPaginated, once, "post 1", 1, 6, 0)
	assert.Equal(t, direct, refiltered)
}
