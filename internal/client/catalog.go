package client

import (
	"context"

	"github.com/tcgkit-io/ptcg/internal/http"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// catalogClient serves the list-only catalog kinds (types, supertypes,
// subtypes, rarities). One generic implementation covers all four; the
// upstream returns bare string arrays for these collections.
type catalogClient[T any] struct {
	httpClient *http.Client
	kind       ptcg.ResourceKind
}

func newCatalogClient[T any](httpClient *http.Client, kind ptcg.ResourceKind) *catalogClient[T] {
	return &catalogClient[T]{httpClient: httpClient, kind: kind}
}

// List fetches exactly one page of the catalog.
func (c *catalogClient[T]) List(ctx context.Context, params *ptcg.QueryParams) (*ptcg.ListResponse[T], error) {
	return listResources[T](ctx, c.httpClient, c.kind, params)
}

// ListAll fetches the full catalog.
func (c *catalogClient[T]) ListAll(ctx context.Context, params *ptcg.QueryParams) ([]T, error) {
	return ptcg.FetchAll[T](ctx, c, params)
}
