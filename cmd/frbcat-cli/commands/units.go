package commands

import (
	"sort"

	"frbcat/lib/scrapers/tns"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(unitsCmd)
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Prints the physical unit of each TNS catalog column.",
	Run: func(cmd *cobra.Command, args []string) {
		units := tns.Units()

		cols := make([]string, 0, len(units))
		for col := range units {
			cols = append(cols, col)
		}
		sort.Strings(cols)

		t := newTable()
		t.AppendHeader(table.Row{"column", "unit"})
		for _, col := range cols {
			t.AppendRow(table.Row{col, units[col]})
		}
		t.Render()
	},
}
