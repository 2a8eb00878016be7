// Copyright (C) 2025-2026 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/skipmetrics/config"
)

var outputFormat string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skipmetrics",
	Short: "Build data skipping metrics for query statistics",
	Long: `Combine the split counts eliminated by partition filters, dynamic filters,
min/max statistics and indexes during query planning into the
iceberg_data_skipping_metrics record reported with a query's statistics.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format: json, yaml or text (overrides SKIPMETRICS_OUTPUT_FORMAT)")

	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(singleCmd)
	rootCmd.AddCommand(emptyCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the persistent flags over the file and env configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = outputFormat
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// runWithTelemetry wraps a command body with config loading and
// telemetry setup and shutdown.
func runWithTelemetry(servicename string, fn func(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, doneFx, err := setupTelemetry(servicename)
		if err != nil {
			return err
		}
		defer func() {
			if err := doneFx(); err != nil {
				cmd.PrintErrf("error shutting down telemetry: %v\n", err)
			}
		}()

		return fn(ctx, cmd, cfg)
	}
}
