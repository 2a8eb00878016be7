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

package dataskipping

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	skippedSplits metric.Int64Counter
	skippedBytes  metric.Int64Counter
)

func init() {
	initTelemetry()
}

func initTelemetry() {
	meter := otel.Meter("github.com/cardinalhq/skipmetrics/internal/dataskipping")

	var err error

	skippedSplits, err = meter.Int64Counter(
		"skipmetrics.data_skipping.splits",
		metric.WithDescription("Number of splits counted per data skipping metric type"),
	)
	if err != nil {
		log.Fatalf("failed to create data_skipping.splits counter: %v", err)
	}

	skippedBytes, err = meter.Int64Counter(
		"skipmetrics.data_skipping.bytes",
		metric.WithUnit("By"),
		metric.WithDescription("Bytes of split data counted per data skipping metric type"),
	)
	if err != nil {
		log.Fatalf("failed to create data_skipping.bytes counter: %v", err)
	}
}

// RecordTelemetry adds every entry of every group in n to the
// data skipping counters.
func RecordTelemetry(ctx context.Context, n NamedMetrics) {
	for _, name := range n.Names() {
		m := n.groups[name]
		for _, mt := range m.Types() {
			e := m.entries[mt]
			attrset := attribute.NewSet(
				attribute.String("group", name),
				attribute.String("metric_type", mt.String()),
			)
			skippedSplits.Add(ctx, int64(e.SplitCount), metric.WithAttributeSet(attrset))
			skippedBytes.Add(ctx, e.DataSize, metric.WithAttributeSet(attrset))
		}
	}
}
