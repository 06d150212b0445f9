package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gearshop/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		printCatalogs(cmd.OutOrStdout(), catalog.All())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func printCatalogs(w io.Writer, catalogs []*catalog.Catalog) {
	for i, cat := range catalogs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "🏷️  %s (%s)\n", cat.Title, cat.Path())
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, e := range cat.Entries() {
			fmt.Fprintf(w, "   %d  %-28s %-22s $%s\n", e.ID, e.Name, e.Description, e.Price)
		}
	}
}
