package commands

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// The four catalog commands share one list-only implementation; the upstream
// has no lookup-by-id endpoint for these kinds.

// NewTypesCommand creates the types command group.
func NewTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "types",
		Aliases: []string{"type"},
		Short:   "List energy types",
		Long:    "List the energy type catalog",
	}

	cmd.AddCommand(newCatalogListCommand("types", func(ctx context.Context, client ptcg.Client) ([]string, error) {
		types, err := client.Types().ListAll(ctx, nil)

		return asStrings(types), err
	}))

	return cmd
}

// NewSupertypesCommand creates the supertypes command group.
func NewSupertypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "supertypes",
		Aliases: []string{"supertype"},
		Short:   "List supertypes",
		Long:    "List the supertype catalog",
	}

	cmd.AddCommand(newCatalogListCommand("supertypes", func(ctx context.Context, client ptcg.Client) ([]string, error) {
		supertypes, err := client.Supertypes().ListAll(ctx, nil)

		return asStrings(supertypes), err
	}))

	return cmd
}

// NewSubtypesCommand creates the subtypes command group.
func NewSubtypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subtypes",
		Aliases: []string{"subtype"},
		Short:   "List subtypes",
		Long:    "List the subtype catalog",
	}

	cmd.AddCommand(newCatalogListCommand("subtypes", func(ctx context.Context, client ptcg.Client) ([]string, error) {
		subtypes, err := client.Subtypes().ListAll(ctx, nil)

		return asStrings(subtypes), err
	}))

	return cmd
}

// NewRaritiesCommand creates the rarities command group.
func NewRaritiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rarities",
		Aliases: []string{"rarity"},
		Short:   "List rarities",
		Long:    "List the rarity catalog",
	}

	cmd.AddCommand(newCatalogListCommand("rarities", func(ctx context.Context, client ptcg.Client) ([]string, error) {
		rarities, err := client.Rarities().ListAll(ctx, nil)

		return asStrings(rarities), err
	}))

	return cmd
}

func newCatalogListCommand(name string, fetch func(context.Context, ptcg.Client) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List " + name,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			values, err := fetch(context.Background(), client)
			if err != nil {
				return err
			}

			return outputCatalog(name, values)
		},
	}
}

func outputCatalog(name string, values []string) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return OutputJSON(values)
	case OutputFormatYAML:
		return OutputYAML(values)
	default:
		return outputCatalogTable(name, values)
	}
}

func outputCatalogTable(name string, values []string) error {
	if len(values) == 0 {
		_, _ = os.Stdout.WriteString("No " + name + " found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(name)

	for _, value := range values {
		_ = table.Append(value)
	}

	return table.Render()
}

// asStrings converts any string-kinded catalog slice to plain strings.
func asStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}

	return out
}
