package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vaprisk",
	Short: "Bedside VAP risk assessment",
	Long:  "Vaprisk — terminal tool that assesses ventilator-associated pneumonia risk for intubated adult ICU patients.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (overrides VAPRISK_DEBUG)")
	rootCmd.Flags().String("log-file", "", "Write TUI diagnostics to this file (overrides VAPRISK_LOG_FILE)")

	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}
