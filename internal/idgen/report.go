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

package idgen

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/sony/sonyflake"
)

// ReportIDs hands out roughly time-ordered identifiers for metrics
// reports, so log lines of one aggregation run can be correlated.
type ReportIDs struct {
	sf *sonyflake.Sonyflake
}

var DefaultReportIDs *ReportIDs

func init() {
	var err error
	DefaultReportIDs, err = NewReportIDs()
	if err != nil {
		panic(err)
	}
}

func NewReportIDs() (*ReportIDs, error) {
	sf, err := sonyflake.New(sonyflake.Settings{
		StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		// The default machine ID needs a private IPv4 address, which CLI
		// hosts often lack.
		MachineID: func() (uint16, error) {
			return uint16(rand.UintN(1 << 16)), nil
		},
	})
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return nil, errors.New("failed to create Sonyflake instance")
	}
	return &ReportIDs{sf: sf}, nil
}

// Next returns a positive int64 that'll increase roughly in time order.
func (r *ReportIDs) Next() int64 {
	v, err := r.sf.NextID()
	if err != nil {
		return rand.Int64()
	}
	return int64(v)
}

// NextString returns Next in base 36.
func (r *ReportIDs) NextString() string {
	return strconv.FormatInt(r.Next(), 36)
}
