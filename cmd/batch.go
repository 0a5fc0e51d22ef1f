package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vaprisk/internal/batch"
	"github.com/abhisek/vaprisk/internal/config"
	"github.com/abhisek/vaprisk/internal/logging"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a JSON file of patient records",
	Long: "Reads a JSON array of patient records, scores each one with the " +
		"additive risk engine, and prints a per-patient report. Invalid records " +
		"are reported in place without stopping the batch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd)
	},
}

func init() {
	batchCmd.Flags().StringP("file", "f", "", "Path to JSON batch file (required)")
	batchCmd.Flags().String("format", "", "Output format: table or json (default from config)")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	debug := cfg.Debug
	if flag, _ := cmd.Flags().GetBool("debug"); flag {
		debug = true
	}
	logger := logging.NewStderr(debug)

	formatRaw := cfg.BatchFormat
	if flag, _ := cmd.Flags().GetString("format"); flag != "" {
		formatRaw = flag
	}
	format, err := batch.ParseFormat(formatRaw)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	records, err := batch.Load(path)
	if err != nil {
		return err
	}
	logger.Info().Str("file", path).Int("records", len(records)).Msg("scoring batch")

	results := batch.Run(records)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn().Int("patient", r.PatientID).Err(r.Err).Msg("record skipped")
		}
	}
	logger.Info().Int("scored", len(results)-failed).Int("failed", failed).Msg("batch complete")

	switch format {
	case batch.FormatJSON:
		out, err := batch.RenderJSON(results)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	default:
		fmt.Fprint(cmd.OutOrStdout(), batch.RenderTable(results))
	}
	return nil
}
