package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diagraph/diagraph/pkg/icons"
)

// newIconsCmd creates the icons command, listing the kinds the catalog
// recognizes and how each one is drawn.
func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List the node kinds the icon catalog recognizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("Known node kinds"))
			for _, kind := range icons.Kinds() {
				g := icons.Lookup(kind)
				fmt.Fprintf(out, "  %s  %s\n",
					styleValue.Render(fmt.Sprintf("%-17s", kind)),
					styleDim.Render(fmt.Sprintf("shape=%s fill=%s", g.Shape, g.FillColor)))
			}
			fmt.Fprintf(out, "\n%s\n", styleDim.Render("Unrecognized kinds fall back to a generic box."))
			return nil
		},
	}
}
