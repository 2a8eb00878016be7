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

// Package dataskipping combines the split counts eliminated by the
// different pruning strategies of query planning into one metrics value
// that is attached to the query's statistics.
package dataskipping

// DataSkippingMetricsName is the group key under which data skipping
// metrics are reported.
const DataSkippingMetricsName = "iceberg_data_skipping_metrics"

// EmptyMetrics is the reported value when nothing was counted.
var EmptyMetrics = newNamedMetrics(DataSkippingMetricsName, EmptyDataSkippingMetrics)

// filterTranslations maps each split filter tag onto the reported type.
var filterTranslations = []struct {
	tag    FilterMetricType
	metric MetricType
}{
	{FilterTotal, MetricTotal},
	{FilterSkippedByMinMax, MetricSkippedByMinMaxStats},
	{FilterSkippedByInPlace, MetricSkippedByIndexInCoordinator},
}

// MakeMetrics combines the coordinator side skip counters with the split
// filter's summary, which may be nil. Any pair where either the split
// count or the size is zero is left out.
func MakeMetrics(
	summary FilterSummary,
	skippedSplitsByDfInCoordinator int,
	skippedDataSizeByDfInCoordinator int64,
	skippedSplitsByPartitionFilter int,
	skippedDataSizeByPartitionFilter int64,
) NamedMetrics {
	b := NewBuilder()
	b.withNonZeroMetric(MetricSkippedByDfInCoordinator, skippedSplitsByDfInCoordinator, skippedDataSizeByDfInCoordinator)
	b.withNonZeroMetric(MetricSkippedByPartFilter, skippedSplitsByPartitionFilter, skippedDataSizeByPartitionFilter)

	if summary != nil {
		for _, tr := range filterTranslations {
			if e, ok := summary.MetricEntry(tr.tag); ok {
				b.withNonZeroMetric(tr.metric, e.RawSplitCount, e.TotalFileSize)
			}
		}
	}

	return newNamedMetrics(DataSkippingMetricsName, b.Build())
}

// MakeSingleMetric reports exactly one entry, zeros included.
func MakeSingleMetric(metricType MetricType, splitCount int, dataSize int64) NamedMetrics {
	m := NewBuilder().WithMetric(metricType, splitCount, dataSize).Build()
	return newNamedMetrics(DataSkippingMetricsName, m)
}
