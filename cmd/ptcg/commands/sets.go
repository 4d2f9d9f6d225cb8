package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tcgkit-io/ptcg/internal/constants"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// NewSetsCommand creates the sets command group.
func NewSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sets",
		Aliases: []string{"set"},
		Short:   "Look up and list expansion sets",
		Long:    "Fetch single sets by identifier and list the set collection",
	}

	cmd.AddCommand(newSetsGetCommand())
	cmd.AddCommand(newSetsListCommand())

	return cmd
}

func newSetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SET_ID",
		Short: "Get a set by ID",
		Long:  "Fetch a single set by its identifier, e.g. xy1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetsGetCommand(args[0])
		},
	}
}

func runSetsGetCommand(id string) error {
	if id == "" {
		return constants.ErrSetIDRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	set, err := client.Sets().Get(context.Background(), id)
	if err != nil {
		if ptcg.IsNotFound(err) {
			return fmt.Errorf("set %q not found", id)
		}

		return err
	}

	return outputSet(set)
}

// SetsListOptions holds the options for listing sets.
type SetsListOptions struct {
	ListOptions

	Query   string
	OrderBy string
}

func newSetsListCommand() *cobra.Command {
	var opts SetsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sets",
		Long:  "List expansion sets, one page at a time or across all pages with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetsListCommand(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&opts.Query, "query", "", "upstream filter expression, e.g. 'series:XY'")
	cmd.Flags().StringVar(&opts.OrderBy, "order-by", "", "sort order, e.g. -releaseDate")

	return cmd
}

func runSetsListCommand(opts SetsListOptions) error {
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

	var sets []ptcg.Set

	if opts.AllPages {
		sets, err = client.Sets().ListAll(ctx, params)
	} else {
		var page *ptcg.ListResponse[ptcg.Set]

		page, err = client.Sets().List(ctx, params)
		if page != nil {
			sets = page.Data
		}
	}

	if err != nil {
		return err
	}

	return outputSets(sets)
}

func outputSet(set *ptcg.Set) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return OutputJSON(set)
	case OutputFormatYAML:
		return OutputYAML(set)
	default:
		return outputSetTable(set)
	}
}

func outputSetTable(set *ptcg.Set) error {
	table := tablewriter.NewWriter(os.Stdout)

	_ = table.Append("ID", set.ID)
	_ = table.Append("Name", set.Name)
	_ = table.Append("Series", set.Series)
	_ = table.Append("Printed Total", strconv.Itoa(set.PrintedTotal))
	_ = table.Append("Total", strconv.Itoa(set.Total))
	_ = table.Append("PTCGO Code", StringOrNA(set.PTCGOCode))
	_ = table.Append("Release Date", set.ReleaseDate)

	return table.Render()
}

func outputSets(sets []ptcg.Set) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return OutputJSON(sets)
	case OutputFormatYAML:
		return OutputYAML(sets)
	default:
		return outputSetsTable(sets)
	}
}

func outputSetsTable(sets []ptcg.Set) error {
	if len(sets) == 0 {
		_, _ = os.Stdout.WriteString("No sets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Series", "Total", "Release Date")

	for _, set := range sets {
		_ = table.Append(set.ID, set.Name, set.Series, strconv.Itoa(set.Total), set.ReleaseDate)
	}

	return table.Render()
}
