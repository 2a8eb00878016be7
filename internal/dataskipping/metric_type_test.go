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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricType_StableNames(t *testing.T) {
	assert.Equal(t, "TOTAL", MetricTotal.String())
	assert.Equal(t, "SKIPPED_BY_MINMAX_STATS", MetricSkippedByMinMaxStats.String())
	assert.Equal(t, "SKIPPED_BY_PART_FILTER", MetricSkippedByPartFilter.String())
	assert.Equal(t, "SKIPPED_BY_DF_IN_COORDINATOR", MetricSkippedByDfInCoordinator.String())
	assert.Equal(t, "SKIPPED_BY_INDEX_IN_COORDINATOR", MetricSkippedByIndexInCoordinator.String())
	assert.Equal(t, "MetricType(42)", MetricType(42).String())
}

func TestParseMetricType(t *testing.T) {
	for _, mt := range AllMetricTypes {
		got, err := ParseMetricType(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, got)
		assert.True(t, got.Valid())
	}

	_, err := ParseMetricType("SKIPPED_BY_MINMAX")
	require.Error(t, err)
	assert.False(t, MetricType(-1).Valid())
}

func TestMetricType_MarshalTextInvalid(t *testing.T) {
	_, err := MetricType(99).MarshalText()
	require.Error(t, err)
}

func TestFilterMetricType_Names(t *testing.T) {
	assert.Equal(t, "TOTAL", FilterTotal.String())
	assert.Equal(t, "SKIPPED_BY_MINMAX", FilterSkippedByMinMax.String())
	assert.Equal(t, "SKIPPED_BY_IN_PLACE", FilterSkippedByInPlace.String())

	for _, ft := range AllFilterMetricTypes {
		got, err := ParseFilterMetricType(ft.String())
		require.NoError(t, err)
		assert.Equal(t, ft, got)
	}

	_, err := ParseFilterMetricType("SKIPPED_BY_MINMAX_STATS")
	require.Error(t, err)
}
