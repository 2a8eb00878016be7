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

// Package filtersummary loads a split filter summary that was written out
// by the planner, so metrics can be rebuilt outside the query path.
package filtersummary

import (
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/cardinalhq/skipmetrics/internal/dataskipping"
)

// Entry is one reported tag in a summary document.
type Entry struct {
	Type          string `yaml:"type"`
	RawSplitCount int    `yaml:"raw_split_count"`
	TotalFileSize int64  `yaml:"total_file_size"`
}

// Load reads and validates the summary in filename.
func Load(filename string) (*dataskipping.FilterMetrics, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter summary from file %s: %w", filename, err)
	}
	return Parse(filename, contents)
}

// Parse decodes a YAML list of entries. All validation problems are
// reported together.
func Parse(name string, contents []byte) (*dataskipping.FilterMetrics, error) {
	var entries []Entry
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter summary from file %s: %w", name, err)
	}

	var errs *multierror.Error
	seen := mapset.NewThreadUnsafeSet[dataskipping.FilterMetricType]()
	fm := dataskipping.NewFilterMetrics()

	for i, e := range entries {
		tag, err := dataskipping.ParseFilterMetricType(e.Type)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if !seen.Add(tag) {
			errs = multierror.Append(errs, fmt.Errorf("entry %d: duplicate filter metric type %s", i, tag))
			continue
		}
		if e.RawSplitCount < 0 || e.TotalFileSize < 0 {
			errs = multierror.Append(errs, fmt.Errorf("entry %d (%s): negative split count or file size", i, tag))
			continue
		}
		fm.Record(tag, e.RawSplitCount, e.TotalFileSize)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid filter summary %s: %w", name, err)
	}
	return fm, nil
}
