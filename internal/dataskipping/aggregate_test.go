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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSummary is a FilterSummary backed by a plain map.
type staticSummary map[FilterMetricType]FilterEntry

func (s staticSummary) MetricEntry(tag FilterMetricType) (FilterEntry, bool) {
	e, ok := s[tag]
	return e, ok
}

func TestMakeMetrics_ZeroSuppression(t *testing.T) {
	tests := []struct {
		name   string
		splits int
		size   int64
		want   bool
	}{
		{"both zero", 0, 0, false},
		{"zero splits", 0, 300, false},
		{"zero size", 7, 0, false},
		{"both set", 7, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/df", func(t *testing.T) {
			m := MakeMetrics(nil, tt.splits, tt.size, 0, 0).DataSkipping()
			e, ok := m.Get(MetricSkippedByDfInCoordinator)
			require.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, MetricEntry{SplitCount: tt.splits, DataSize: tt.size}, e)
				assert.Equal(t, 1, m.Len())
			} else {
				assert.Equal(t, 0, m.Len())
			}
		})

		t.Run(tt.name+"/partition", func(t *testing.T) {
			m := MakeMetrics(nil, 0, 0, tt.splits, tt.size).DataSkipping()
			e, ok := m.Get(MetricSkippedByPartFilter)
			require.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, MetricEntry{SplitCount: tt.splits, DataSize: tt.size}, e)
			}
		})

		t.Run(tt.name+"/summary", func(t *testing.T) {
			summary := staticSummary{
				FilterTotal:            {RawSplitCount: tt.splits, TotalFileSize: tt.size},
				FilterSkippedByMinMax:  {RawSplitCount: tt.splits, TotalFileSize: tt.size},
				FilterSkippedByInPlace: {RawSplitCount: tt.splits, TotalFileSize: tt.size},
			}
			m := MakeMetrics(summary, 0, 0, 0, 0).DataSkipping()
			if tt.want {
				assert.Equal(t, []MetricType{
					MetricTotal,
					MetricSkippedByMinMaxStats,
					MetricSkippedByIndexInCoordinator,
				}, m.Types())
			} else {
				assert.Equal(t, 0, m.Len())
			}
		})
	}
}

func TestMakeMetrics_NoInputsIsEmpty(t *testing.T) {
	got := MakeMetrics(nil, 0, 0, 0, 0)
	assert.True(t, got.Equal(EmptyMetrics))
	assert.Equal(t, []string{DataSkippingMetricsName}, got.Names())
	assert.Equal(t, 0, got.DataSkipping().Len())
}

func TestMakeMetrics_NilFilterMetricsPointer(t *testing.T) {
	var fm *FilterMetrics
	got := MakeMetrics(fm, 1, 10, 0, 0)
	assert.Equal(t, []MetricType{MetricSkippedByDfInCoordinator}, got.DataSkipping().Types())
}

func TestMakeMetrics_TagTranslation(t *testing.T) {
	summary := staticSummary{
		FilterSkippedByMinMax: {RawSplitCount: 3, TotalFileSize: 1200},
	}
	m := MakeMetrics(summary, 0, 0, 0, 0).DataSkipping()

	e, ok := m.Get(MetricSkippedByMinMaxStats)
	require.True(t, ok)
	assert.Equal(t, MetricEntry{SplitCount: 3, DataSize: 1200}, e)
	assert.Equal(t, 1, m.Len())

	summary = staticSummary{
		FilterSkippedByInPlace: {RawSplitCount: 2, TotalFileSize: 64},
	}
	m = MakeMetrics(summary, 0, 0, 0, 0).DataSkipping()
	e, ok = m.Get(MetricSkippedByIndexInCoordinator)
	require.True(t, ok)
	assert.Equal(t, MetricEntry{SplitCount: 2, DataSize: 64}, e)
}

func TestMakeMetrics_EndToEnd(t *testing.T) {
	summary := staticSummary{
		FilterTotal:           {RawSplitCount: 100, TotalFileSize: 50000},
		FilterSkippedByMinMax: {RawSplitCount: 0, TotalFileSize: 0},
	}

	got := MakeMetrics(summary, 5, 2000, 0, 300)

	require.Equal(t, []string{"iceberg_data_skipping_metrics"}, got.Names())
	m, ok := got.Get("iceberg_data_skipping_metrics")
	require.True(t, ok)
	assert.Equal(t, map[MetricType]MetricEntry{
		MetricTotal:                    {SplitCount: 100, DataSize: 50000},
		MetricSkippedByDfInCoordinator: {SplitCount: 5, DataSize: 2000},
	}, m.Entries())

	_, ok = m.Get(MetricSkippedByMinMaxStats)
	assert.False(t, ok)
	_, ok = m.Get(MetricSkippedByPartFilter)
	assert.False(t, ok)
}

func TestMakeMetrics_WithFilterMetrics(t *testing.T) {
	fm := NewFilterMetrics()
	fm.Record(FilterTotal, 10, 1000)
	fm.Record(FilterTotal, 5, 500)
	fm.Record(FilterSkippedByInPlace, 4, 400)

	m := MakeMetrics(fm, 0, 0, 2, 20).DataSkipping()
	assert.Equal(t, map[MetricType]MetricEntry{
		MetricTotal:                       {SplitCount: 15, DataSize: 1500},
		MetricSkippedByIndexInCoordinator: {SplitCount: 4, DataSize: 400},
		MetricSkippedByPartFilter:         {SplitCount: 2, DataSize: 20},
	}, m.Entries())
}

func TestMakeSingleMetric(t *testing.T) {
	tests := []struct {
		name   string
		mt     MetricType
		splits int
		size   int64
	}{
		{"zeros are kept", MetricSkippedByPartFilter, 0, 0},
		{"zero size is kept", MetricTotal, 12, 0},
		{"regular", MetricSkippedByDfInCoordinator, 3, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeSingleMetric(tt.mt, tt.splits, tt.size)
			require.Equal(t, []string{DataSkippingMetricsName}, got.Names())

			m := got.DataSkipping()
			require.Equal(t, 1, m.Len())
			e, ok := m.Get(tt.mt)
			require.True(t, ok)
			assert.Equal(t, MetricEntry{SplitCount: tt.splits, DataSize: tt.size}, e)
		})
	}
}

func TestEmptyMetrics(t *testing.T) {
	require.Equal(t, 1, EmptyMetrics.Len())
	m, ok := EmptyMetrics.Get(DataSkippingMetricsName)
	require.True(t, ok)
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.Equal(EmptyDataSkippingMetrics))
}

func TestMakeMetrics_Concurrent(t *testing.T) {
	summary := staticSummary{
		FilterTotal: {RawSplitCount: 9, TotalFileSize: 90},
	}

	var wg sync.WaitGroup
	results := make([]NamedMetrics, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = MakeMetrics(summary, i+1, int64(i+1)*10, 0, 0)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		m := got.DataSkipping()
		e, ok := m.Get(MetricSkippedByDfInCoordinator)
		require.True(t, ok)
		assert.Equal(t, MetricEntry{SplitCount: i + 1, DataSize: int64(i+1) * 10}, e)
		e, ok = m.Get(MetricTotal)
		require.True(t, ok)
		assert.Equal(t, MetricEntry{SplitCount: 9, DataSize: 90}, e)
	}
}
