package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/planequery/fleetsync/internal/config"
	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/stats"
)

var statsYAML bool

var statsCmd = &cobra.Command{
	Use:   "stats <airline-code>",
	Short: "Show fleet breakdown and WiFi adoption for an airline",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsYAML, "yaml", false, "emit the full summary as YAML")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	store := catalogs.NewStore(config.CatalogDir())
	catalog, err := store.Load(args[0])
	if err != nil {
		return err
	}

	summary := stats.Aggregate(catalog)

	if statsYAML {
		data, err := yaml.Marshal(summary)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s): %d aircraft\n", summary.Airline.Name, summary.Airline.Code(), summary.TotalAircraft)
	fmt.Fprintln(out, "\nFleet breakdown:")
	for _, row := range summary.Types {
		fmt.Fprintf(out, "  %-24s %4d\n", row.Type, row.Count)
	}
	fmt.Fprintln(out, "\nWiFi adoption:")
	for _, row := range summary.WiFi {
		fmt.Fprintf(out, "  %-12s %4d  (%d%%)\n", row.Tier, row.Count, row.Percent)
	}
	return nil
}
