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

import "fmt"

// MetricType identifies why a group of splits was counted. The string
// names are read by query statistics consumers and must not change.
type MetricType int

const (
	MetricTotal MetricType = iota
	MetricSkippedByMinMaxStats
	MetricSkippedByPartFilter
	MetricSkippedByDfInCoordinator
	MetricSkippedByIndexInCoordinator
)

// AllMetricTypes lists every MetricType in canonical order.
var AllMetricTypes = []MetricType{
	MetricTotal,
	MetricSkippedByMinMaxStats,
	MetricSkippedByPartFilter,
	MetricSkippedByDfInCoordinator,
	MetricSkippedByIndexInCoordinator,
}

func (mt MetricType) String() string {
	switch mt {
	case MetricTotal:
		return "TOTAL"
	case MetricSkippedByMinMaxStats:
		return "SKIPPED_BY_MINMAX_STATS"
	case MetricSkippedByPartFilter:
		return "SKIPPED_BY_PART_FILTER"
	case MetricSkippedByDfInCoordinator:
		return "SKIPPED_BY_DF_IN_COORDINATOR"
	case MetricSkippedByIndexInCoordinator:
		return "SKIPPED_BY_INDEX_IN_COORDINATOR"
	default:
		return fmt.Sprintf("MetricType(%d)", int(mt))
	}
}

// Valid reports whether mt is one of the known metric types.
func (mt MetricType) Valid() bool {
	return mt >= MetricTotal && mt <= MetricSkippedByIndexInCoordinator
}

// ParseMetricType converts a stable metric name back into a MetricType.
func ParseMetricType(s string) (MetricType, error) {
	for _, mt := range AllMetricTypes {
		if mt.String() == s {
			return mt, nil
		}
	}
	return 0, fmt.Errorf("unknown data skipping metric type %q", s)
}

func (mt MetricType) MarshalText() ([]byte, error) {
	if !mt.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid metric type %d", int(mt))
	}
	return []byte(mt.String()), nil
}

func (mt *MetricType) UnmarshalText(text []byte) error {
	parsed, err := ParseMetricType(string(text))
	if err != nil {
		return err
	}
	*mt = parsed
	return nil
}
