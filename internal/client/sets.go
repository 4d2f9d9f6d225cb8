package client

import (
	"context"

	"github.com/tcgkit-io/ptcg/internal/http"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// SetsClient implements ptcg.SetsClient.
type SetsClient struct {
	httpClient *http.Client
}

// NewSetsClient creates a new sets client.
func NewSetsClient(httpClient *http.Client) *SetsClient {
	return &SetsClient{httpClient: httpClient}
}

// Get implements ptcg.SetsClient.Get.
func (c *SetsClient) Get(ctx context.Context, id string) (*ptcg.Set, error) {
	return getResource[ptcg.Set](ctx, c.httpClient, ptcg.KindSet, id)
}

// List implements ptcg.SetsClient.List.
func (c *SetsClient) List(ctx context.Context, params *ptcg.QueryParams) (*ptcg.ListResponse[ptcg.Set], error) {
	return listResources[ptcg.Set](ctx, c.httpClient, ptcg.KindSet, params)
}

// ListAll implements ptcg.SetsClient.ListAll.
func (c *SetsClient) ListAll(ctx context.Context, params *ptcg.QueryParams) ([]ptcg.Set, error) {
	return ptcg.FetchAll[ptcg.Set](ctx, c, params)
}
