package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/refsync-dev/refsync/internal/config"
	"github.com/refsync-dev/refsync/internal/tsconfig"
	"github.com/refsync-dev/refsync/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspace packages and their reference eligibility",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspace.Discover()
		if err != nil {
			return err
		}
		ws, err := workspace.List(root)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLOCATION\tCONFIG\tCOMPOSITE\tDEPS")
		for _, pkg := range ws.Packages {
			desc, err := tsconfig.Probe(ws.Root, pkg.Location, config.TSConfigName())
			if err != nil {
				return err
			}
			cfg, composite := "-", "-"
			if desc.Exists() {
				cfg = "yes"
				composite = fmt.Sprintf("%t", desc.Composite)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", pkg.Name, pkg.Location, cfg, composite, len(pkg.Dependencies))
		}
		return w.Flush()
	},
}
