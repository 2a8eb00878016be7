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
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/skipmetrics/config"
	"github.com/cardinalhq/skipmetrics/internal/dataskipping"
	"github.com/cardinalhq/skipmetrics/internal/idgen"
	"github.com/cardinalhq/skipmetrics/internal/logctx"
)

type singleOptions struct {
	metricType string
	splits     int
	bytes      int64
}

var singleOpts singleOptions

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Report exactly one data skipping metric, zeros included",
	RunE: runWithTelemetry("skipmetrics-single", func(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
		return runSingle(ctx, cmd.OutOrStdout(), cfg, singleOpts)
	}),
}

var emptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Print the empty data skipping metrics record",
	RunE: runWithTelemetry("skipmetrics-empty", func(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
		return report(ctx, cmd.OutOrStdout(), cfg, dataskipping.EmptyMetrics)
	}),
}

func init() {
	f := singleCmd.Flags()
	f.StringVar(&singleOpts.metricType, "type", "", "Metric type, e.g. SKIPPED_BY_PART_FILTER")
	f.IntVar(&singleOpts.splits, "splits", 0, "Split count")
	f.Int64Var(&singleOpts.bytes, "bytes", 0, "Data size in bytes")
	_ = singleCmd.MarkFlagRequired("type")
}

func runSingle(ctx context.Context, out io.Writer, cfg *config.Config, opts singleOptions) error {
	ctx = logctx.With(ctx, slog.String("report_id", idgen.DefaultReportIDs.NextString()))

	mt, err := dataskipping.ParseMetricType(opts.metricType)
	if err != nil {
		return err
	}
	return report(ctx, out, cfg, dataskipping.MakeSingleMetric(mt, opts.splits, opts.bytes))
}
