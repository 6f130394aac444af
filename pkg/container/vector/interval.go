// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"github.com/edrya/arrow/pkg/common/mpool"
	"github.com/edrya/arrow/pkg/container/types"
)

// IntervalDayVector is NumericVector[types.IntervalDay]: the (days, millis)
// struct has no padding between its two int32 fields, so it reinterprets
// directly against the 8-byte element exactly like every other roster
// member, with no separate encode/decode step needed at the vector layer.
type IntervalDayVector = NumericVector[types.IntervalDay]

func NewIntervalDayVector(name string, a mpool.Allocator) *IntervalDayVector {
	return newNumericVector[types.IntervalDay](a, field(name, types.IntervalDayMinor))
}
