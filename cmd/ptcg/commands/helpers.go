package commands

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tcgkit-io/ptcg/internal/constants"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
	"github.com/tcgkit-io/ptcg/pkg/ptcgclient"
)

// Output formats.
const (
	OutputFormatJSON = constants.FormatJSON
	OutputFormatYAML = constants.FormatYAML
)

// CreateClient builds a ptcg client from the CLI configuration. Key
// precedence: --api-key flag, config file, POKEMONTCG_API_KEY env var.
func CreateClient() (ptcg.Client, error) {
	config := &ptcg.Config{
		APIKey:  viper.GetString("api-key"),
		BaseURL: viper.GetString("base-url"),
	}

	return ptcgclient.New(config)
}

// ListOptions holds the paging options shared by all list commands.
type ListOptions struct {
	AllPages bool
	Page     int
	PageSize int
}

// Validate checks the paging options.
func (o ListOptions) Validate() error {
	if o.Page < 0 {
		return constants.ErrInvalidPage
	}

	return nil
}

// QueryParamsFromListOptions converts CLI paging options to query parameters.
func QueryParamsFromListOptions(opts ListOptions) *ptcg.QueryParams {
	params := ptcg.NewQueryParams()

	if opts.Page > 0 {
		params.WithPage(opts.Page)
	}

	if opts.PageSize > 0 {
		params.WithPageSize(opts.PageSize)
	}

	return params
}

// OutputJSON writes v to stdout as indented JSON.
func OutputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(v)
}

// OutputYAML writes v to stdout as YAML.
func OutputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	defer func() {
		_ = encoder.Close()
	}()

	return encoder.Encode(v)
}

// StringOrNA substitutes N/A for empty values in table cells.
func StringOrNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}
