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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCopyValueSafeViaTransferPair(t *testing.T) {
	a := newTestAllocator(t)
	src := NewIntVector("src", a)
	dst := NewIntVector("dst", a)
	require.NoError(t, src.AllocateNew())
	require.NoError(t, dst.AllocateNew())
	require.NoError(t, src.SetSafe(0, 55))

	pair := src.MakeTransferPair(dst)
	require.NoError(t, pair.CopyValueSafe(0, 12345))

	got, err := dst.Get(12345)
	require.NoError(t, err)
	require.EqualValues(t, 55, got)
}

func TestSplitAndTransferRejectsOutOfRange(t *testing.T) {
	a := newTestAllocator(t)
	src := NewIntVector("src", a)
	dst := NewIntVector("dst", a)
	require.NoError(t, src.AllocateNew())
	require.NoError(t, src.SetSafe(0, 1))
	require.NoError(t, src.SetValueCount(1))

	pair := src.MakeTransferPair(dst)
	err := pair.SplitAndTransfer(0, 5)
	require.Error(t, err)
}

func TestDateAndTimestampDecodeHelpers(t *testing.T) {
	a := newTestAllocator(t)

	dd := NewDateDayVector("d", a)
	require.NoError(t, dd.AllocateNew())
	require.NoError(t, dd.SetSafe(0, 1))
	got, err := DateDayTime(dd, 0)
	require.NoError(t, err)
	require.Equal(t, time.Unix(0, 0).UTC().AddDate(0, 0, 1), got)

	dm := NewDateMilliVector("dm", a)
	require.NoError(t, dm.AllocateNew())
	require.NoError(t, dm.SetSafe(0, 1000))
	gotm, err := DateMilliTime(dm, 0)
	require.NoError(t, err)
	require.Equal(t, time.UnixMilli(1000).UTC(), gotm)

	ts := NewTimeStampSecVector("ts", a)
	require.NoError(t, ts.AllocateNew())
	require.NoError(t, ts.SetSafe(0, 10))
	gott, err := TimeStampSecTime(ts, 0)
	require.NoError(t, err)
	require.Equal(t, time.Unix(10, 0).UTC(), gott)
}
