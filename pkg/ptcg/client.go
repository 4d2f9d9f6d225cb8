package ptcg

import (
	"context"
	"time"
)

// CardsClient provides access to the cards collection.
type CardsClient interface {
	// Get fetches a single card by its identifier, e.g. "xy1-1".
	Get(ctx context.Context, id string) (*Card, error)
	// List fetches exactly one page of cards matching params.
	List(ctx context.Context, params *QueryParams) (*ListResponse[Card], error)
	// ListAll fetches every page of cards matching params, in server order.
	ListAll(ctx context.Context, params *QueryParams) ([]Card, error)
}

// SetsClient provides access to the sets collection.
type SetsClient interface {
	Get(ctx context.Context, id string) (*Set, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Set], error)
	ListAll(ctx context.Context, params *QueryParams) ([]Set, error)
}

// TypesClient provides access to the energy type catalog. The upstream has no
// lookup-by-id endpoint for catalog kinds, so only collection fetches exist.
type TypesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Type], error)
	ListAll(ctx context.Context, params *QueryParams) ([]Type, error)
}

// SupertypesClient provides access to the supertype catalog.
type SupertypesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Supertype], error)
	ListAll(ctx context.Context, params *QueryParams) ([]Supertype, error)
}

// SubtypesClient provides access to the subtype catalog.
type SubtypesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Subtype], error)
	ListAll(ctx context.Context, params *QueryParams) ([]Subtype, error)
}

// RaritiesClient provides access to the rarity catalog.
type RaritiesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Rarity], error)
	ListAll(ctx context.Context, params *QueryParams) ([]Rarity, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Cards() CardsClient
	Sets() SetsClient
	Types() TypesClient
	Supertypes() SupertypesClient
	Subtypes() SubtypesClient
	Rarities() RaritiesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a ptcg.Client.
//
// # Credentials
//
// APIKey is sent as the X-Api-Key header on every request. If empty,
// ptcgclient.New falls back to the POKEMONTCG_API_KEY environment variable.
// The upstream serves unauthenticated requests at a reduced rate limit, so a
// missing key is not an error for the default constructor.
//
// # Timeouts and retries
//
// Per-request deadlines should be controlled via the context passed to client
// methods. Transient failures (429, 5xx, connection errors) are retried by
// the transport; tune via RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIKey authenticates requests against the upstream API.
	APIKey string

	// BaseURL overrides the production API endpoint. Normalized by
	// ptcgclient.New (scheme added, trailing slash trimmed).
	BaseURL string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout is the overall per-attempt HTTP timeout.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// Zero uses the default; a negative value disables retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool
	// Logger is the optional structured logger used by the transport.
	Logger Logger

	// Cache configures the optional read cache for GET responses.
	// Nil disables caching.
	Cache *CacheConfig
}
