package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the page size the upstream API uses when none is requested.
	DefaultPageSize = 250

	// StandardPageSize is the common page size for CLI listings.
	StandardPageSize = 50

	// FirstPage is where auto-pagination starts.
	FirstPage = 1
)

// Cache sizing and lifetimes.
const (
	// DefaultCacheSize is the maximum number of entries in the memory cache.
	DefaultCacheSize = 1000

	// DefaultCacheTTL applies to single-resource responses.
	DefaultCacheTTL = 1 * time.Hour

	// CatalogCacheTTL applies to the near-static catalog collections
	// (types, supertypes, subtypes, rarities).
	CatalogCacheTTL = 24 * time.Hour

	// CacheCleanupInterval is how often expired entries are swept.
	CacheCleanupInterval = 1 * time.Minute
)

// Upstream API defaults.
const (
	// DefaultBaseURL is the production endpoint of the card catalog API.
	DefaultBaseURL = "https://api.pokemontcg.io/v2"

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "ptcg-go/1.0"

	// APIKeyHeader carries the API key on every request.
	APIKeyHeader = "X-Api-Key"

	// APIKeyEnvVar is consulted when no key is configured explicitly.
	APIKeyEnvVar = "POKEMONTCG_API_KEY"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// JSONIndentSize is the indent used by JSON and YAML encoders.
const JSONIndentSize = 2
