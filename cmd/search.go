package cmd

import (
	"fmt"
	"strings"

	"github.com/samsaffron/skilldeck/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search commands, agents, and skills",
	Long: `Fuzzy-match a query against every document's name and description.

Examples:
  skilldeck search review
  skilldeck search "borrow checker"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results := registry.Search(query)
	if len(results) == 0 {
		fmt.Printf("No matches for %q.\n", query)
		return nil
	}

	var rows [][2]string
	for _, entry := range results {
		rows = append(rows, [2]string{
			fmt.Sprintf("%-7s %s", entry.Kind, entry.Name),
			entry.Description,
		})
	}

	fmt.Print(ui.RenderList(rows, termWidth()))
	return nil
}
