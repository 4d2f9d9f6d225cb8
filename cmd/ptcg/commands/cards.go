package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tcgkit-io/ptcg/internal/constants"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// NewCardsCommand creates the cards command group.
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Look up and search cards",
		Long:    "Fetch single cards by identifier and search the card collection",
	}

	cmd.AddCommand(newCardsGetCommand())
	cmd.AddCommand(newCardsListCommand())
	cmd.AddCommand(newCardsSearchCommand())

	return cmd
}

func newCardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CARD_ID",
		Short: "Get a card by ID",
		Long:  "Fetch a single card by its identifier, e.g. xy1-1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCardsGetCommand(args[0])
		},
	}
}

func runCardsGetCommand(id string) error {
	if id == "" {
		return constants.ErrCardIDRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	card, err := client.Cards().Get(context.Background(), id)
	if err != nil {
		if ptcg.IsNotFound(err) {
			return fmt.Errorf("card %q not found", id)
		}

		return err
	}

	return outputCard(card)
}

// CardsListOptions holds the options for listing and searching cards.
type CardsListOptions struct {
	ListOptions

	Query   string
	OrderBy string
}

func newCardsListCommand() *cobra.Command {
	var opts CardsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards",
		Long:  "List cards, one page at a time or across all pages with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCardsListCommand(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&opts.OrderBy, "order-by", "", "sort order, e.g. -releaseDate")

	return cmd
}

func newCardsSearchCommand() *cobra.Command {
	var opts CardsListOptions

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search cards",
		Long:  "Search cards with an upstream filter expression, e.g. 'name:charizard set.id:base1'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Query = args[0]

			return runCardsListCommand(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&opts.OrderBy, "order-by", "", "sort order, e.g. -releaseDate")

	return cmd
}

func runCardsListCommand(opts CardsListOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := QueryParamsFromListOptions(opts.ListOptions)

	if opts.Query != "" {
		params.WithQ(opts.Query)
	}

	if opts.OrderBy != "" {
		params.WithOrderBy(opts.OrderBy)
	}

	ctx := context.Background()

	var cards []ptcg.Card

	if opts.AllPages {
		cards, err = client.Cards().ListAll(ctx, params)
	} else {
		var page *ptcg.ListResponse[ptcg.Card]

		page, err = client.Cards().List(ctx, params)
		if page != nil {
			cards = page.Data
		}
	}

	if err != nil {
		return err
	}

	return outputCards(cards)
}

func outputCard(card *ptcg.Card) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return OutputJSON(card)
	case OutputFormatYAML:
		return OutputYAML(card)
	default:
		return outputCardTable(card)
	}
}

func outputCardTable(card *ptcg.Card) error {
	table := tablewriter.NewWriter(os.Stdout)

	_ = table.Append("ID", card.ID)
	_ = table.Append("Name", card.Name)
	_ = table.Append("Supertype", string(card.Supertype))
	_ = table.Append("Rarity", StringOrNA(string(card.Rarity)))
	_ = table.Append("HP", StringOrNA(card.HP))
	_ = table.Append("Types", StringOrNA(joinTypes(card.Types)))
	_ = table.Append("Set", fmt.Sprintf("%s (%s)", card.Set.Name, card.Set.ID))
	_ = table.Append("Number", card.Number)
	_ = table.Append("Artist", StringOrNA(card.Artist))

	return table.Render()
}

func outputCards(cards []ptcg.Card) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return OutputJSON(cards)
	case OutputFormatYAML:
		return OutputYAML(cards)
	default:
		return outputCardsTable(cards)
	}
}

func outputCardsTable(cards []ptcg.Card) error {
	if len(cards) == 0 {
		_, _ = os.Stdout.WriteString("No cards found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Supertype", "Rarity", "Set", "Number")

	for _, card := range cards {
		_ = table.Append(
			card.ID,
			card.Name,
			string(card.Supertype),
			StringOrNA(string(card.Rarity)),
			card.Set.ID,
			card.Number,
		)
	}

	return table.Render()
}

func joinTypes(types []ptcg.Type) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}

	return strings.Join(names, ", ")
}
