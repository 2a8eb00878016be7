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
	"slices"
)

// NamedMetrics maps a metrics group name to its DataSkippingMetrics. It is
// the value attached to a query's reported statistics.
type NamedMetrics struct {
	groups map[string]DataSkippingMetrics
}

func newNamedMetrics(name string, m DataSkippingMetrics) NamedMetrics {
	return NamedMetrics{groups: map[string]DataSkippingMetrics{name: m}}
}

// Get returns the metrics stored under name.
func (n NamedMetrics) Get(name string) (DataSkippingMetrics, bool) {
	m, ok := n.groups[name]
	return m, ok
}

// DataSkipping returns the group stored under DataSkippingMetricsName.
func (n NamedMetrics) DataSkipping() DataSkippingMetrics {
	return n.groups[DataSkippingMetricsName]
}

func (n NamedMetrics) Len() int {
	return len(n.groups)
}

// Names returns the group names in sorted order.
func (n NamedMetrics) Names() []string {
	return slices.Sorted(maps.Keys(n.groups))
}

func (n NamedMetrics) Equal(other NamedMetrics) bool {
	return maps.EqualFunc(n.groups, other.groups, DataSkippingMetrics.Equal)
}

// Merge combines two NamedMetrics group by group.
func (n NamedMetrics) Merge(other NamedMetrics) NamedMetrics {
	merged := make(map[string]DataSkippingMetrics, len(n.groups)+len(other.groups))
	maps.Copy(merged, n.groups)
	for name, m := range other.groups {
		merged[name] = merged[name].Merge(m)
	}
	return NamedMetrics{groups: merged}
}

func (n NamedMetrics) MarshalJSON() ([]byte, error) {
	if n.groups == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(n.groups)
}

func (n *NamedMetrics) UnmarshalJSON(data []byte) error {
	var raw map[string]DataSkippingMetrics
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.groups = raw
	return nil
}

func (n NamedMetrics) MarshalYAML() (any, error) {
	if n.groups == nil {
		return map[string]DataSkippingMetrics{}, nil
	}
	return n.groups, nil
}

func (n NamedMetrics) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(n.groups))
	for _, name := range n.Names() {
		attrs = append(attrs, slog.Any(name, n.groups[name]))
	}
	return slog.GroupValue(attrs...)
}
