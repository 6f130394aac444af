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

// Package nulls exports a vector's null positions as a roaring bitmap, for
// downstream consumers that already track row sets that way (the way
// matrixorigin/matrixone's aggregate layer builds roaring bitmaps over
// uint64-tagged rows in pkg/sql/plan/function/agg2/bitmap_construct.go and
// pkg/sql/plan/function/agg/bitmap1.go). It is read-only, one-way export:
// nothing here writes back into a vector's own validity bitmap.
package nulls

import "github.com/RoaringBitmap/roaring"

// Accessor is the slice of a typed façade's surface this package needs:
// enough to walk every logical row without depending on package vector
// (which would otherwise import nulls right back, for symmetry).
type Accessor interface {
	Len() int
	IsNull(i int) bool
}

// Positions returns the set of row indices in v that are null.
func Positions(v Accessor) *roaring.Bitmap {
	bmp := roaring.New()
	n := v.Len()
	for i := 0; i < n; i++ {
		if v.IsNull(i) {
			bmp.Add(uint32(i))
		}
	}
	return bmp
}

// Count is a convenience wrapper over Positions for callers that only
// need the null count without retaining the bitmap.
func Count(v Accessor) int {
	return int(Positions(v).GetCardinality())
}
