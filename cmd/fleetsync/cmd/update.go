package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planequery/fleetsync"
	"github.com/planequery/fleetsync/internal/config"
	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/errors"
	"github.com/planequery/fleetsync/pkg/sources"
)

var (
	updateSnapshotFile string
	updateSource       string
	updateDryRun       bool
)

var updateCmd = &cobra.Command{
	Use:   "update <airline-code>",
	Short: "Reconcile a fleet snapshot into an airline's catalog",
	Long: `Update fetches a fleet snapshot for the given airline (or reads one
from a file), reconciles it against the stored catalog, and persists the
updated catalog document when the run produced changes.

Records absent from the snapshot are left untouched; the reconciler
never deletes.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateSnapshotFile, "snapshot", "f", "", "read the snapshot from a JSON file instead of the fleet API")
	updateCmd.Flags().StringVar(&updateSource, "source", string(catalogs.SourceFlightAPI), "provenance source tag for this run")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "reconcile and report without persisting the result")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	airline := args[0]
	source := catalogs.SourceID(updateSource)
	if !validSource(source) {
		return errors.NewValidationError("source", updateSource, "unknown provenance source")
	}

	fs, err := fleetsync.New(
		fleetsync.WithCatalogDir(config.CatalogDir()),
		fleetsync.WithFleetAPI(config.GetString(config.KeyAPIBaseURL), config.APIKey()),
	)
	if err != nil {
		return err
	}

	syncOpts := []fleetsync.SyncOption{
		fleetsync.WithSource(source),
		fleetsync.WithDryRun(updateDryRun),
	}
	if updateSnapshotFile != "" {
		snapshot, err := readSnapshotFile(updateSnapshotFile)
		if err != nil {
			return err
		}
		syncOpts = append(syncOpts, fleetsync.WithSnapshot(snapshot))
	}

	report, err := fs.Sync(cmd.Context(), airline, syncOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", airline, report.Summary())
	for _, rejection := range report.Rejections {
		fmt.Fprintf(cmd.OutOrStdout(), "  rejected %q: %v\n", rejection.Registration, rejection.Reasons)
	}
	return nil
}

// readSnapshotFile decodes a snapshot from a local JSON file.
func readSnapshotFile(path string) (*sources.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()
	return sources.Decode(f)
}

func validSource(source catalogs.SourceID) bool {
	for _, s := range catalogs.SourceIDs() {
		if source == s {
			return true
		}
	}
	return false
}
