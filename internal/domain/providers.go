package domain

import "context"

// CatalogProvider fetches a read-only snapshot of the breed catalog.
// A fetch or parse failure is fatal to the invocation; there is no partial
// catalog handling.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context) (Catalog, error)
}

// ImageProvider resolves image references for a breed. Both calls may return
// zero results for an unknown or sub-breed-only name.
type ImageProvider interface {
	FetchRandomImage(ctx context.Context, breed string) (string, error)
	FetchAllImages(ctx context.Context, breed string) ([]string, error)
}
