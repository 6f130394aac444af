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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Holder round-trip: GetHolder(SetHolder(h)) == h, for both set and null cases.
func TestHolderRoundTrip(t *testing.T) {
	a := newTestAllocator(t)
	v := NewBigIntVector("x", a)
	require.NoError(t, v.AllocateNew())

	require.NoError(t, v.SetHolder(0, Holder[int64]{IsSet: 1, Value: 12345}))
	var h Holder[int64]
	v.GetHolder(0, &h)
	require.Equal(t, Holder[int64]{IsSet: 1, Value: 12345}, h)

	require.NoError(t, v.SetHolder(1, Holder[int64]{IsSet: 0}))
	v.GetHolder(1, &h)
	require.Equal(t, int32(0), h.IsSet)

	err := v.SetHolder(2, Holder[int64]{IsSet: -1})
	require.Error(t, err)
}

func TestSetDisjoint(t *testing.T) {
	a := newTestAllocator(t)
	v := NewIntVector("x", a)
	require.NoError(t, v.AllocateNew())

	require.NoError(t, v.SetDisjoint(0, 1, 7))
	got, err := v.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 7, got)

	require.NoError(t, v.SetDisjoint(1, 0, 9))
	require.True(t, v.IsNull(1))
}

// S3: Float8 must round-trip NaN, +Inf, -Inf, and a null slot distinctly.
func TestFloat8SpecialValues(t *testing.T) {
	a := newTestAllocator(t)
	v := NewFloat8Vector("x", a)
	require.NoError(t, v.AllocateNew())

	require.NoError(t, v.SetSafe(0, math.NaN()))
	require.NoError(t, v.SetSafe(1, math.Inf(1)))
	require.NoError(t, v.SetSafe(2, math.Inf(-1)))
	require.NoError(t, v.SetValueCount(3))

	got0, err := v.Get(0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(got0))

	got1, err := v.Get(1)
	require.NoError(t, err)
	require.True(t, math.IsInf(got1, 1))

	got2, err := v.Get(2)
	require.NoError(t, err)
	require.True(t, math.IsInf(got2, -1))

	_, err = v.Get(3)
	require.Error(t, err)
}

func TestCopyFromRespectsAsymmetry(t *testing.T) {
	a := newTestAllocator(t)
	src := NewIntVector("src", a)
	dst := NewIntVector("dst", a)
	require.NoError(t, src.AllocateNew())
	require.NoError(t, dst.AllocateNew())

	require.NoError(t, dst.SetSafe(0, 111))
	// src[0] is null: CopyFrom must leave dst[0] untouched.
	require.NoError(t, dst.CopyFrom(src, 0, 0))
	got, err := dst.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 111, got)

	require.NoError(t, src.SetSafe(1, 222))
	require.NoError(t, dst.CopyFromSafe(src, 1, 5))
	got, err = dst.Get(5)
	require.NoError(t, err)
	require.EqualValues(t, 222, got)
}

func TestGetTransferPairFreshSibling(t *testing.T) {
	a := newTestAllocator(t)
	v := NewIntVector("x", a)
	require.NoError(t, v.AllocateNew())
	require.NoError(t, v.SetSafe(0, 3))
	require.NoError(t, v.SetValueCount(1))

	pair := v.GetTransferPair("y", a)
	require.NoError(t, pair.Transfer())
	got, err := pair.Target.Get(0)
	require.NoError(t, err)
	require.EqualValues(t, 3, got)
}
