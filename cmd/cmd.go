// Package cmd defines the command-line interface for tslabel.
package cmd

import (
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the session subcommands to the parent session command
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	sessionCmd.AddCommand(sessionMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("timestamp-column", schema.DefaultTimestampColumn, "Name of the timestamp column in the input dataset")
	rootCmd.PersistentFlags().String("value-column", schema.DefaultValueColumn, "Name of the numeric value column in the input dataset")
	rootCmd.PersistentFlags().StringP("window", "w", schema.DefaultWindowDuration.String(), "Visible window duration (e.g. 2h, 30m)")
	rootCmd.PersistentFlags().String("labels", "", "Comma-separated label set (defaults to Normal,Warning,Error)")
	rootCmd.PersistentFlags().StringP("session", "s", contract.DefaultSession, "Session key that label assignments are stored under")
	rootCmd.PersistentFlags().String("session-backend", string(schema.SQLiteBackend), "Session backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("session-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of viewCmd to Viper
	viewCmd.Flags().String("start", "", "Candidate window start (ISO8601); clamped to the series span")
	if err := viper.BindPFlags(viewCmd.Flags()); err != nil {
		contract.LogFatal("Error binding view flags", err)
	}

	// Bind all flags of labelCmd to Viper
	labelCmd.Flags().String("from", "", "Inclusive lower bound of the selection (ISO8601)")
	labelCmd.Flags().String("to", "", "Inclusive upper bound of the selection (ISO8601)")
	labelCmd.Flags().StringP("label", "l", "", "Label value; must be in the configured label set")
	if err := viper.BindPFlags(labelCmd.Flags()); err != nil {
		contract.LogFatal("Error binding label flags", err)
	}

	// Bind all flags of sessionMigrateCmd to Viper
	sessionMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(sessionMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding session migrate flags", err)
	}
}
