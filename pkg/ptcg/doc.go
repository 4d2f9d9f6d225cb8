// Package ptcg provides types, interfaces, and helpers for working with the
// Pokémon TCG V2 catalog API.
//
// # Overview
//
// The ptcg package defines the domain types (Card, Set, Type, Supertype,
// Subtype, Rarity) and the interfaces for resource-oriented clients
// (CardsClient, SetsClient, and the catalog clients). A concrete
// implementation of these clients is provided by the ptcgclient package,
// which wires configuration, transport, and caching. Most consumers should
// import ptcgclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/tcgkit-io/ptcg/pkg/ptcg"
//	  "github.com/tcgkit-io/ptcg/pkg/ptcgclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ptcgclient.New(&ptcg.Config{APIKey: "your-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  card, err := cli.Cards().Get(ctx, "xy1-1")
//	  if err != nil { log.Fatal(err) }
//	  _ = card
//	}
//
// # Queries and pagination
//
// Use QueryParams to express list options (q, page, pageSize, orderBy,
// select). List fetches exactly one page; ListAll walks every page. The
// package also provides a generic iterator:
//
//	it := ptcg.NewPageIterator[ptcg.Card](ctx, cli.Cards(), ptcg.NewQueryParams().WithQ("name:charizard"))
//	for it.HasNext() {
//	  card, err := it.Next()
//	  if err != nil { break }
//	  _ = card
//	}
//
// # Errors
//
// API errors are represented by APIError and ResponseError. Helpers such as
// IsNotFound, IsRateLimited, and IsUnauthorized make it easy to branch on
// common cases. The catalog kinds (types, supertypes, subtypes, rarities)
// have no lookup-by-id endpoint upstream; their clients expose collection
// fetches only.
//
// # Interceptors and caching
//
// The package includes request/response interceptors (logging, static
// headers, timing, rate limiting) and a pluggable Cache abstraction with
// memory and NATS KV backends. The catalog collections change rarely and are
// cached with a longer lifetime than card and set responses.
package ptcg
