// Package client contains the concrete implementation of the ptcg.Client
// interface and its per-resource clients.
package client

import (
	"fmt"

	"github.com/tcgkit-io/ptcg/internal/constants"
	"github.com/tcgkit-io/ptcg/internal/http"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// Client implements the ptcg.Client interface.
type Client struct {
	httpClient *http.Client

	cards      ptcg.CardsClient
	sets       ptcg.SetsClient
	types      ptcg.TypesClient
	supertypes ptcg.SupertypesClient
	subtypes   ptcg.SubtypesClient
	rarities   ptcg.RaritiesClient
}

// New creates a client from the given configuration. The configuration is
// expected to be validated and normalized by ptcgclient.New; calling this
// directly with a zero BaseURL falls back to the production endpoint.
func New(config *ptcg.Config) (*Client, error) {
	if config == nil {
		return nil, ptcg.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	cacheManager, err := createCacheManager(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(baseURL, &http.Options{
		APIKey:       config.APIKey,
		UserAgent:    config.UserAgent,
		RetryMax:     config.RetryMax,
		RetryWaitMin: config.RetryWaitMin,
		RetryWaitMax: config.RetryWaitMax,
		Timeout:      config.HTTPTimeout,
		Logger:       config.Logger,
		Debug:        config.Debug,
		Cache:        cacheManager,
		CacheOptions: cacheOptions(config),
	})

	client := &Client{httpClient: httpClient}
	client.cards = NewCardsClient(httpClient)
	client.sets = NewSetsClient(httpClient)
	client.types = newCatalogClient[ptcg.Type](httpClient, ptcg.KindType)
	client.supertypes = newCatalogClient[ptcg.Supertype](httpClient, ptcg.KindSupertype)
	client.subtypes = newCatalogClient[ptcg.Subtype](httpClient, ptcg.KindSubtype)
	client.rarities = newCatalogClient[ptcg.Rarity](httpClient, ptcg.KindRarity)

	return client, nil
}

// createCacheManager builds the read cache when one is configured.
func createCacheManager(config *ptcg.Config) (*ptcg.CacheManager, error) {
	if config.Cache == nil || config.Cache.Type == ptcg.CacheTypeNone {
		return nil, nil
	}

	cache, err := ptcg.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	return ptcg.NewCacheManager(cache, nil), nil
}

// cacheOptions resolves the entry lifetimes for the configured cache.
func cacheOptions(config *ptcg.Config) *ptcg.CacheOptions {
	if config.Cache != nil && config.Cache.Options != nil {
		return config.Cache.Options
	}

	return ptcg.DefaultCacheOptions()
}

// Cards implements ptcg.Client.Cards.
func (c *Client) Cards() ptcg.CardsClient {
	return c.cards
}

// Sets implements ptcg.Client.Sets.
func (c *Client) Sets() ptcg.SetsClient {
	return c.sets
}

// Types implements ptcg.Client.Types.
func (c *Client) Types() ptcg.TypesClient {
	return c.types
}

// Supertypes implements ptcg.Client.Supertypes.
func (c *Client) Supertypes() ptcg.SupertypesClient {
	return c.supertypes
}

// Subtypes implements ptcg.Client.Subtypes.
func (c *Client) Subtypes() ptcg.SubtypesClient {
	return c.subtypes
}

// Rarities implements ptcg.Client.Rarities.
func (c *Client) Rarities() ptcg.RaritiesClient {
	return c.rarities
}
