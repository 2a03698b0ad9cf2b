package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planequery/fleetsync/pkg/errors"
	"github.com/planequery/fleetsync/pkg/schema"
	"github.com/planequery/fleetsync/pkg/sources"
)

var validateCmd = &cobra.Command{
	Use:   "validate <snapshot-file>",
	Short: "Validate a snapshot or community submission file",
	Long: `Validate decodes a JSON fleet snapshot or community submission file,
normalizes each record, and reports schema violations and data-quality
warnings without touching any stored catalog. The command exits
non-zero when any record is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.WrapIO("open", args[0], err)
	}
	defer f.Close()

	snapshot, err := sources.Decode(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	registry := schema.New()
	invalid := 0
	for i, raw := range snapshot.Records {
		record, warnings := raw.Canonical()
		result := registry.Validate(&record)

		label := record.Registration
		if label == "" {
			label = fmt.Sprintf("record %d", i)
		}
		for _, violation := range result.Violations {
			fmt.Fprintf(out, "%s: invalid: %s\n", label, violation)
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "%s: warning: %s\n", label, warning)
		}
		for _, warning := range warnings {
			fmt.Fprintf(out, "%s: warning: %s\n", label, warning)
		}
		if !result.Valid() {
			invalid++
		}
	}

	fmt.Fprintf(out, "%d records, %d invalid\n", len(snapshot.Records), invalid)
	if invalid > 0 {
		return fmt.Errorf("%d of %d records failed validation", invalid, len(snapshot.Records))
	}
	return nil
}
