// Package ptcgclient provides the main entry point for creating Pokémon TCG
// API clients.
package ptcgclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/tcgkit-io/ptcg/internal/client"
	"github.com/tcgkit-io/ptcg/internal/constants"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// New creates a new Pokémon TCG API client.
//
// The config is normalized in place: a missing BaseURL defaults to the
// production endpoint, a BaseURL without a scheme gets https://, and an empty
// APIKey falls back to the POKEMONTCG_API_KEY environment variable. A missing
// key is allowed; the upstream serves anonymous requests at a reduced rate
// limit.
func New(config *ptcg.Config) (ptcg.Client, error) {
	if config == nil {
		return nil, ptcg.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	if config.APIKey == "" {
		config.APIKey = os.Getenv(constants.APIKeyEnvVar)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithRequiredKey behaves like New but rejects a configuration that ends
// up without an API key.
func NewWithRequiredKey(config *ptcg.Config) (ptcg.Client, error) {
	if config == nil {
		return nil, ptcg.ErrConfigRequired
	}

	if config.APIKey == "" && os.Getenv(constants.APIKeyEnvVar) == "" {
		return nil, ptcg.ErrAPIKeyRequired
	}

	return New(config)
}

// NewWithKey wraps New with just an API key.
func NewWithKey(apiKey string) (ptcg.Client, error) {
	return New(&ptcg.Config{APIKey: apiKey})
}
