package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/presentation"
	"github.com/zjrosen/monkeyreg/internal/query"
	"github.com/zjrosen/monkeyreg/internal/registry"
)

type listOptions struct {
	species string
	search  string
	output  string
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the monkeys matching a filter",
	Long: `Print the monkeys matching a filter without starting the terminal UI.

The filter is built the same way the interactive search bar builds it: an
empty or "all" species adds no constraint, and the search term is sent as-is.

Examples:
  # Everything, as a table
  monkeyreg list

  # Howlers whose record mentions "jo"
  monkeyreg list --species howler --search jo

  # Machine-readable output
  monkeyreg list -o json | jq '.[].name'
  monkeyreg list -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cleanup, err := initLogging("list")
		if err != nil {
			return err
		}
		defer cleanup()

		client, shutdown, err := newClient(cfg)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()

		return runList(cmd.Context(), cmd.OutOrStdout(), client, listOpts)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.species, "species", "s", "",
		"species filter: all, "+strings.Join(speciesNames(), ", "))
	listCmd.Flags().StringVarP(&listOpts.search, "search", "q", "", "search term")
	listCmd.Flags().StringVarP(&listOpts.output, "output", "o", presentation.FormatTable,
		"output format: "+strings.Join(presentation.Formats, ", "))
	rootCmd.AddCommand(listCmd)
}

func speciesNames() []string {
	names := make([]string, len(monkey.AllSpecies))
	for i, sp := range monkey.AllSpecies {
		names[i] = string(sp)
	}
	return names
}

func runList(ctx context.Context, out io.Writer, client registry.Client, opts listOptions) error {
	if !slices.Contains(presentation.Formats, opts.output) {
		return fmt.Errorf("unknown output format %q (want %s)", opts.output, strings.Join(presentation.Formats, ", "))
	}
	if opts.species != "" && opts.species != query.SpeciesAll {
		if _, ok := monkey.ParseSpecies(opts.species); !ok {
			return fmt.Errorf("unknown species %q (want all, %s)", opts.species, strings.Join(speciesNames(), ", "))
		}
	}

	records, err := client.List(ctx, query.Build(query.Filter{
		SearchTerm: opts.search,
		Species:    opts.species,
	}))
	if err != nil {
		return fmt.Errorf("listing monkeys: %s", registry.Message(err))
	}
	return presentation.NewFormatter(out).FormatMonkeys(opts.output, presentation.FromMonkeys(records))
}
