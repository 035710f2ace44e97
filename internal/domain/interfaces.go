package domain

import "context"

// CatalogRepository: Network operations (implemented by the catalog client).
// Each call is a single best-effort request; implementations never retry.
type CatalogRepository interface {
	GetArtworks(ctx context.Context, page, limit int) (Page, error)
}
