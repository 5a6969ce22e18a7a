package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecount/internal/colour"
)

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the available pixel filters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := NewTable([]string{"Filter", "Default", "Rules"})
			table.AlignRight(1)
			for _, v := range colour.ValidFilterVariants() {
				table.AddRow([]string{string(v), strconv.Itoa(v.DefaultTopK()), v.Description()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
