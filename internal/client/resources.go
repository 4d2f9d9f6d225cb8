package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tcgkit-io/ptcg/internal/http"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// getResource fetches a single resource by id and unwraps the single-item
// envelope. Catalog kinds short-circuit: the upstream has no lookup-by-id
// endpoint for them, so the resource is absent by definition and no request
// is issued.
func getResource[T any](ctx context.Context, httpClient *http.Client, kind ptcg.ResourceKind, id string) (*T, error) {
	if id == "" {
		return nil, ptcg.ErrIDRequired
	}

	if !kind.Lookupable() {
		return nil, fmt.Errorf("%w (%s): %w", ptcg.ErrLookupNotSupported, kind.Path(), ptcg.ErrNotFound)
	}

	path := "/" + kind.Path() + "/" + url.PathEscape(id)

	resp, err := httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %q: %w", kind.Path(), id, err)
	}

	var envelope ptcg.SingleResponse[T]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", kind.Path(), err)
	}

	return &envelope.Data, nil
}

// listResources fetches exactly one page of a collection. A nil params sends
// no query string.
func listResources[T any](ctx context.Context, httpClient *http.Client, kind ptcg.ResourceKind, params *ptcg.QueryParams) (*ptcg.ListResponse[T], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, "/"+kind.Path(), query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind.Path(), err)
	}

	var envelope ptcg.ListResponse[T]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", kind.Path(), err)
	}

	return &envelope, nil
}
