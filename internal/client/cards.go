package client

import (
	"context"

	"github.com/tcgkit-io/ptcg/internal/http"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// CardsClient implements ptcg.CardsClient.
type CardsClient struct {
	httpClient *http.Client
}

// NewCardsClient creates a new cards client.
func NewCardsClient(httpClient *http.Client) *CardsClient {
	return &CardsClient{httpClient: httpClient}
}

// Get implements ptcg.CardsClient.Get.
func (c *CardsClient) Get(ctx context.Context, id string) (*ptcg.Card, error) {
	return getResource[ptcg.Card](ctx, c.httpClient, ptcg.KindCard, id)
}

// List implements ptcg.CardsClient.List.
func (c *CardsClient) List(ctx context.Context, params *ptcg.QueryParams) (*ptcg.ListResponse[ptcg.Card], error) {
	return listResources[ptcg.Card](ctx, c.httpClient, ptcg.KindCard, params)
}

// ListAll implements ptcg.CardsClient.ListAll.
func (c *CardsClient) ListAll(ctx context.Context, params *ptcg.QueryParams) ([]ptcg.Card, error) {
	return ptcg.FetchAll[ptcg.Card](ctx, c, params)
}
