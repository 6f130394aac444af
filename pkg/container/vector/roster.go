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
	"time"

	"github.com/edrya/arrow/pkg/common/mpool"
	"github.com/edrya/arrow/pkg/container/types"
)

// Type roster. Each is a named instantiation of the generic NumericVector
// façade over the Go type whose memory layout matches the element's wire
// representation.
type (
	TinyIntVector  = NumericVector[int8]
	UInt1Vector    = NumericVector[uint8]
	SmallIntVector = NumericVector[int16]
	UInt2Vector    = NumericVector[uint16]
	IntVector      = NumericVector[int32]
	UInt4Vector    = NumericVector[uint32]
	BigIntVector   = NumericVector[int64]
	UInt8Vector    = NumericVector[uint64]
	Float4Vector   = NumericVector[float32]
	Float8Vector   = NumericVector[float64]

	DateDayVector   = NumericVector[int32]
	DateMilliVector = NumericVector[int64]

	TimeSecVector   = NumericVector[int32]
	TimeMilliVector = NumericVector[int32]
	TimeMicroVector = NumericVector[int64]
	TimeNanoVector  = NumericVector[int64]

	TimeStampSecVector   = NumericVector[int64]
	TimeStampMilliVector = NumericVector[int64]
	TimeStampMicroVector = NumericVector[int64]
	TimeStampNanoVector  = NumericVector[int64]

	IntervalYearVector = NumericVector[int32]
)

func field(name string, minor types.MinorType) types.FieldType {
	return types.FieldType{Name: name, Minor: minor}
}

func NewTinyIntVector(name string, a mpool.Allocator) *TinyIntVector {
	return newNumericVector[int8](a, field(name, types.TinyInt))
}

func NewUInt1Vector(name string, a mpool.Allocator) *UInt1Vector {
	return newNumericVector[uint8](a, field(name, types.UInt1))
}

func NewSmallIntVector(name string, a mpool.Allocator) *SmallIntVector {
	return newNumericVector[int16](a, field(name, types.SmallInt))
}

func NewUInt2Vector(name string, a mpool.Allocator) *UInt2Vector {
	return newNumericVector[uint16](a, field(name, types.UInt2))
}

func NewIntVector(name string, a mpool.Allocator) *IntVector {
	return newNumericVector[int32](a, field(name, types.Int))
}

func NewUInt4Vector(name string, a mpool.Allocator) *UInt4Vector {
	return newNumericVector[uint32](a, field(name, types.UInt4))
}

func NewBigIntVector(name string, a mpool.Allocator) *BigIntVector {
	return newNumericVector[int64](a, field(name, types.BigInt))
}

func NewUInt8Vector(name string, a mpool.Allocator) *UInt8Vector {
	return newNumericVector[uint64](a, field(name, types.UInt8))
}

func NewFloat4Vector(name string, a mpool.Allocator) *Float4Vector {
	return newNumericVector[float32](a, field(name, types.Float4))
}

func NewFloat8Vector(name string, a mpool.Allocator) *Float8Vector {
	return newNumericVector[float64](a, field(name, types.Float8))
}

func NewDateDayVector(name string, a mpool.Allocator) *DateDayVector {
	return newNumericVector[int32](a, field(name, types.DateDay))
}

func NewDateMilliVector(name string, a mpool.Allocator) *DateMilliVector {
	return newNumericVector[int64](a, field(name, types.DateMilli))
}

func NewTimeSecVector(name string, a mpool.Allocator) *TimeSecVector {
	return newNumericVector[int32](a, field(name, types.TimeSec))
}

func NewTimeMilliVector(name string, a mpool.Allocator) *TimeMilliVector {
	return newNumericVector[int32](a, field(name, types.TimeMilli))
}

func NewTimeMicroVector(name string, a mpool.Allocator) *TimeMicroVector {
	return newNumericVector[int64](a, field(name, types.TimeMicro))
}

func NewTimeNanoVector(name string, a mpool.Allocator) *TimeNanoVector {
	return newNumericVector[int64](a, field(name, types.TimeNano))
}

func NewTimeStampSecVector(name string, a mpool.Allocator) *TimeStampSecVector {
	return newNumericVector[int64](a, field(name, types.TimeStampSec))
}

func NewTimeStampMilliVector(name string, a mpool.Allocator) *TimeStampMilliVector {
	return newNumericVector[int64](a, field(name, types.TimeStampMilli))
}

func NewTimeStampMicroVector(name string, a mpool.Allocator) *TimeStampMicroVector {
	return newNumericVector[int64](a, field(name, types.TimeStampMicro))
}

func NewTimeStampNanoVector(name string, a mpool.Allocator) *TimeStampNanoVector {
	return newNumericVector[int64](a, field(name, types.TimeStampNano))
}

func NewIntervalYearVector(name string, a mpool.Allocator) *IntervalYearVector {
	return newNumericVector[int32](a, field(name, types.IntervalYear))
}

// DateMilliTime decodes a DateMilli element into the calendar value its
// raw millis-since-epoch GetObject access keeps opaque, built on the
// standard library's time package since no third-party calendar library
// appears anywhere in the example pack. A free function rather than a
// method: DateMilliVector, BigIntVector, TimeMicroVector, ... are all the
// same generic instantiation (NumericVector[int64]), so a method here would
// collide with the other instantiations' methods of the same name.
func DateMilliTime(v *DateMilliVector, i int) (time.Time, error) {
	ms, err := v.Get(i)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// DateDayTime decodes a DateDay element (days since epoch) into a calendar date.
func DateDayTime(v *DateDayVector, i int) (time.Time, error) {
	days, err := v.Get(i)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, 0).UTC().AddDate(0, 0, int(days)), nil
}

// timestampUnixTime converts a stored epoch offset at the given unit scale
// (nanoseconds per unit) into a time.Time.
func timestampUnixTime(v int64, nsPerUnit int64) time.Time {
	return time.Unix(0, v*nsPerUnit).UTC()
}

func TimeStampSecTime(v *TimeStampSecVector, i int) (time.Time, error) {
	val, err := v.Get(i)
	if err != nil {
		return time.Time{}, err
	}
	return timestampUnixTime(val, int64(time.Second)), nil
}

func TimeStampMilliTime(v *TimeStampMilliVector, i int) (time.Time, error) {
	val, err := v.Get(i)
	if err != nil {
		return time.Time{}, err
	}
	return timestampUnixTime(val, int64(time.Millisecond)), nil
}

func TimeStampMicroTime(v *TimeStampMicroVector, i int) (time.Time, error) {
	val, err := v.Get(i)
	if err != nil {
		return time.Time{}, err
	}
	return timestampUnixTime(val, int64(time.Microsecond)), nil
}

func TimeStampNanoTime(v *TimeStampNanoVector, i int) (time.Time, error) {
	val, err := v.Get(i)
	if err != nil {
		return time.Time{}, err
	}
	return timestampUnixTime(val, 1), nil
}
