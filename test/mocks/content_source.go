package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amar2mail9/Polytechub.com/domain/content"
	"github.com/amar2mail9/Polytechub.com/domain/contracts"
)

// MockContentSource implements contracts.ContentSource for testing
type MockContentSource struct {
	mock.Mock
}

func (m *MockContentSource) FetchPosts(ctx context.Context, q contracts.PostQuery) (*contracts.PostPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.PostPage), args.Error(1)
}

func (m *MockContentSource) FetchPostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Post), args.Error(1)
}

func (m *MockContentSource) FetchCategories(ctx context.Context) ([]*content.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Category), args.Error(1)
}

func (m *MockContentSource) FetchCategoryBySlug(ctx context.Context, slug string) (*content.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Category), args.Error(1)
}

// MockMailRelay implements contracts.MailRelay for testing
type MockMailRelay struct {
	mock.Mock
}

func (m *MockMailRelay) Send(ctx context.Context, msg contracts.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
