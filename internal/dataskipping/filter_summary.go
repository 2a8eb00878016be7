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
	"fmt"
	"sync"
)

// FilterMetricType is the skip reason tag reported by the split filter
// that runs ahead of the aggregator.
type FilterMetricType int

const (
	FilterTotal FilterMetricType = iota
	FilterSkippedByMinMax
	FilterSkippedByInPlace
)

// AllFilterMetricTypes lists every FilterMetricType in canonical order.
var AllFilterMetricTypes = []FilterMetricType{
	FilterTotal,
	FilterSkippedByMinMax,
	FilterSkippedByInPlace,
}

func (ft FilterMetricType) String() string {
	switch ft {
	case FilterTotal:
		return "TOTAL"
	case FilterSkippedByMinMax:
		return "SKIPPED_BY_MINMAX"
	case FilterSkippedByInPlace:
		return "SKIPPED_BY_IN_PLACE"
	default:
		return fmt.Sprintf("FilterMetricType(%d)", int(ft))
	}
}

// ParseFilterMetricType converts an upstream tag name into a FilterMetricType.
func ParseFilterMetricType(s string) (FilterMetricType, error) {
	for _, ft := range AllFilterMetricTypes {
		if ft.String() == s {
			return ft, nil
		}
	}
	return 0, fmt.Errorf("unknown filter metric type %q", s)
}

func (ft *FilterMetricType) UnmarshalText(text []byte) error {
	parsed, err := ParseFilterMetricType(string(text))
	if err != nil {
		return err
	}
	*ft = parsed
	return nil
}

// FilterEntry is what the split filter reports for one tag.
type FilterEntry struct {
	RawSplitCount int
	TotalFileSize int64
}

// FilterSummary is the read side of the split filter's results.
// A tag that was never reported returns false.
type FilterSummary interface {
	MetricEntry(tag FilterMetricType) (FilterEntry, bool)
}

// FilterMetrics is an in-memory FilterSummary. Filters running across
// several workers may Record into the same instance concurrently.
// A nil *FilterMetrics behaves as an absent summary.
type FilterMetrics struct {
	mu      sync.RWMutex
	entries map[FilterMetricType]FilterEntry
}

var _ FilterSummary = (*FilterMetrics)(nil)

func NewFilterMetrics() *FilterMetrics {
	return &FilterMetrics{
		entries: make(map[FilterMetricType]FilterEntry),
	}
}

// Record adds splits and size to the running totals for tag. Recording
// zeros still marks the tag as reported.
func (fm *FilterMetrics) Record(tag FilterMetricType, splits int, size int64) {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	if fm.entries == nil {
		fm.entries = make(map[FilterMetricType]FilterEntry)
	}
	e := fm.entries[tag]
	e.RawSplitCount += splits
	e.TotalFileSize += size
	fm.entries[tag] = e
}

func (fm *FilterMetrics) MetricEntry(tag FilterMetricType) (FilterEntry, bool) {
	if fm == nil {
		return FilterEntry{}, false
	}
	fm.mu.RLock()
	defer fm.mu.RUnlock()

	e, ok := fm.entries[tag]
	return e, ok
}

// Len returns the number of tags reported so far.
func (fm *FilterMetrics) Len() int {
	if fm == nil {
		return 0
	}
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	return len(fm.entries)
}
