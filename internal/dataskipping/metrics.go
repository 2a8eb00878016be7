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
	"encoding/json"
	"log/slog"
	"maps"
)

// MetricEntry is the number of splits and their total size in bytes
// counted under one MetricType.
type MetricEntry struct {
	SplitCount int   `json:"split_count" yaml:"split_count"`
	DataSize   int64 `json:"data_size" yaml:"data_size"`
}

func (e MetricEntry) add(other MetricEntry) MetricEntry {
	return MetricEntry{
		SplitCount: e.SplitCount + other.SplitCount,
		DataSize:   e.DataSize + other.DataSize,
	}
}

// DataSkippingMetrics maps each MetricType to at most one MetricEntry.
// Values are immutable once built; use a Builder to create one.
type DataSkippingMetrics struct {
	entries map[MetricType]MetricEntry
}

// EmptyDataSkippingMetrics has no entries.
var EmptyDataSkippingMetrics = DataSkippingMetrics{}

// Get returns the entry for mt, if present.
func (m DataSkippingMetrics) Get(mt MetricType) (MetricEntry, bool) {
	e, ok := m.entries[mt]
	return e, ok
}

func (m DataSkippingMetrics) Len() int {
	return len(m.entries)
}

// Types returns the metric types present, in canonical order.
func (m DataSkippingMetrics) Types() []MetricType {
	ret := make([]MetricType, 0, len(m.entries))
	for _, mt := range AllMetricTypes {
		if _, ok := m.entries[mt]; ok {
			ret = append(ret, mt)
		}
	}
	return ret
}

// Entries returns a copy of the underlying mapping.
func (m DataSkippingMetrics) Entries() map[MetricType]MetricEntry {
	ret := make(map[MetricType]MetricEntry, len(m.entries))
	maps.Copy(ret, m.entries)
	return ret
}

func (m DataSkippingMetrics) Equal(other DataSkippingMetrics) bool {
	return maps.Equal(m.entries, other.entries)
}

// Merge returns the per-type sum of m and other.
func (m DataSkippingMetrics) Merge(other DataSkippingMetrics) DataSkippingMetrics {
	if other.Len() == 0 {
		return m
	}
	if m.Len() == 0 {
		return other
	}
	merged := make(map[MetricType]MetricEntry, len(m.entries)+len(other.entries))
	maps.Copy(merged, m.entries)
	for mt, e := range other.entries {
		merged[mt] = merged[mt].add(e)
	}
	return DataSkippingMetrics{entries: merged}
}

func (m DataSkippingMetrics) MarshalJSON() ([]byte, error) {
	if m.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.entries)
}

func (m *DataSkippingMetrics) UnmarshalJSON(data []byte) error {
	var raw map[MetricType]MetricEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b := NewBuilder()
	for mt, e := range raw {
		b.WithMetric(mt, e.SplitCount, e.DataSize)
	}
	*m = b.Build()
	return nil
}

func (m DataSkippingMetrics) MarshalYAML() (any, error) {
	ret := make(map[string]MetricEntry, len(m.entries))
	for mt, e := range m.entries {
		ret[mt.String()] = e
	}
	return ret, nil
}

func (m DataSkippingMetrics) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(m.entries))
	for _, mt := range m.Types() {
		e := m.entries[mt]
		attrs = append(attrs, slog.Group(mt.String(),
			slog.Int("splits", e.SplitCount),
			slog.Int64("bytes", e.DataSize),
		))
	}
	return slog.GroupValue(attrs...)
}

// Builder accumulates entries for a DataSkippingMetrics. It is not safe
// for concurrent use.
type Builder struct {
	entries map[MetricType]MetricEntry
}

func NewBuilder() *Builder {
	return &Builder{
		entries: make(map[MetricType]MetricEntry),
	}
}

// WithMetric sets the entry for mt, replacing any earlier one.
func (b *Builder) WithMetric(mt MetricType, splitCount int, dataSize int64) *Builder {
	b.entries[mt] = MetricEntry{SplitCount: splitCount, DataSize: dataSize}
	return b
}

// withNonZeroMetric only records the entry when both values are non-zero.
func (b *Builder) withNonZeroMetric(mt MetricType, splitCount int, dataSize int64) *Builder {
	if splitCount != 0 && dataSize != 0 {
		b.WithMetric(mt, splitCount, dataSize)
	}
	return b
}

// Build snapshots the builder. Later calls on b do not affect the result.
func (b *Builder) Build() DataSkippingMetrics {
	if len(b.entries) == 0 {
		return EmptyDataSkippingMetrics
	}
	entries := make(map[MetricType]MetricEntry, len(b.entries))
	maps.Copy(entries, b.entries)
	return DataSkippingMetrics{entries: entries}
}
