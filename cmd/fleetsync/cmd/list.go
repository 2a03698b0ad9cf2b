package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planequery/fleetsync/internal/config"
	"github.com/planequery/fleetsync/pkg/catalogs"
)

var listCmd = &cobra.Command{
	Use:   "list [airline-code]",
	Short: "List stored catalogs, or the aircraft in one catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store := catalogs.NewStore(config.CatalogDir())
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		codes, err := store.List()
		if err != nil {
			return err
		}
		for _, code := range codes {
			fmt.Fprintln(out, code)
		}
		return nil
	}

	catalog, err := store.Load(args[0])
	if err != nil {
		return err
	}
	for i := range catalog.Aircraft {
		record := &catalog.Aircraft[i]
		fmt.Fprintf(out, "%-10s %-6s %-10s %-28s %s\n",
			record.Registration,
			record.Type.Variant,
			record.Status,
			record.Type.Manufacturer+" "+record.Type.Model,
			record.Connectivity.WiFi)
	}
	return nil
}
