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
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/skipmetrics/config"
	"github.com/cardinalhq/skipmetrics/internal/dataskipping"
	"github.com/cardinalhq/skipmetrics/internal/filtersummary"
	"github.com/cardinalhq/skipmetrics/internal/idgen"
	"github.com/cardinalhq/skipmetrics/internal/logctx"
)

type aggregateOptions struct {
	filterSummaryFile string
	dfSplits          int
	dfBytes           int64
	partitionSplits   int
	partitionBytes    int64
}

var aggregateOpts aggregateOptions

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Combine coordinator skip counters and a filter summary into one metrics record",
	RunE: runWithTelemetry("skipmetrics-aggregate", func(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
		return runAggregate(ctx, cmd.OutOrStdout(), cfg, aggregateOpts)
	}),
}

func init() {
	f := aggregateCmd.Flags()
	f.StringVar(&aggregateOpts.filterSummaryFile, "filter-summary", "", "YAML file with the split filter summary (optional)")
	f.IntVar(&aggregateOpts.dfSplits, "df-splits", 0, "Splits skipped by dynamic filters in the coordinator")
	f.Int64Var(&aggregateOpts.dfBytes, "df-bytes", 0, "Bytes skipped by dynamic filters in the coordinator")
	f.IntVar(&aggregateOpts.partitionSplits, "partition-splits", 0, "Splits skipped by the partition filter")
	f.Int64Var(&aggregateOpts.partitionBytes, "partition-bytes", 0, "Bytes skipped by the partition filter")
}

func runAggregate(ctx context.Context, out io.Writer, cfg *config.Config, opts aggregateOptions) error {
	ctx = logctx.With(ctx, slog.String("report_id", idgen.DefaultReportIDs.NextString()))
	logger := logctx.FromContext(ctx)

	var summary dataskipping.FilterSummary
	if opts.filterSummaryFile != "" {
		fm, err := filtersummary.Load(opts.filterSummaryFile)
		if err != nil {
			return fmt.Errorf("load filter summary: %w", err)
		}
		logger.Debug("Loaded filter summary",
			slog.String("file", opts.filterSummaryFile),
			slog.Int("tags", fm.Len()))
		summary = fm
	}

	n := dataskipping.MakeMetrics(summary,
		opts.dfSplits, opts.dfBytes,
		opts.partitionSplits, opts.partitionBytes)

	return report(ctx, out, cfg, n)
}

// report logs, optionally records, and prints n.
func report(ctx context.Context, out io.Writer, cfg *config.Config, n dataskipping.NamedMetrics) error {
	logctx.FromContext(ctx).Debug("Built data skipping metrics", slog.Any("metrics", n))
	if cfg.Telemetry.Record {
		dataskipping.RecordTelemetry(ctx, n)
	}
	return writeMetrics(out, cfg.Output, n)
}
