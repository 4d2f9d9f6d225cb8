// Package ptcgclient provides the primary entry point for constructing a
// Pokémon TCG V2 API client that implements the ptcg.Client interface.
//
// It layers configuration, HTTP transport, and optional caching on top of the
// resource interfaces and types defined in the ptcg package. Most applications
// should import ptcgclient to build a client, then use the returned
// ptcg.Client to access resource-specific clients, for example Cards(),
// Sets(), Types().
//
// Quick start
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
//
//	  // Minimal: anonymous access at a reduced rate limit.
//	  cli, err := ptcgclient.New(&ptcg.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an API key (also read from POKEMONTCG_API_KEY when unset):
//	  cli, err = ptcgclient.New(&ptcg.Config{APIKey: "your-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  card, err := cli.Cards().Get(ctx, "xy1-1")
//	  if err != nil { log.Fatal(err) }
//	  _ = card
//	}
//
// # Caching
//
// Set Config.Cache to enable a read cache for GET responses. The memory
// backend suits single processes; the NATS KV backend shares one cache across
// processes. The catalog collections change rarely and get a longer lifetime.
//
// # Helpers
//
// The package also provides the convenience constructors NewWithKey and
// NewWithRequiredKey that wrap New with the appropriate configuration.
package ptcgclient
