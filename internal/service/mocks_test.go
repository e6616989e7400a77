package service

import (
	"context"

	"barkle/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCatalogProvider ---
type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Catalog), args.Error(1)
}

// --- MockImageProvider ---
type MockImageProvider struct {
	mock.Mock
}

func (m *MockImageProvider) FetchRandomImage(ctx context.Context, breed string) (string, error) {
	args := m.Called(ctx, breed)
	return args.String(0), args.Error(1)
}

func (m *MockImageProvider) FetchAllImages(ctx context.Context, breed string) ([]string, error) {
	args := m.Called(ctx, breed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
