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

// Package types holds the minor-type tags and field descriptors the
// vector core is parameterized over. It does not model a full schema --
// just the per-vector descriptor the core needs to size and label itself.
package types

// MinorType tags the scalar interpretation of one vector's elements.
type MinorType int32

const (
	Bit MinorType = iota
	TinyInt
	UInt1
	SmallInt
	UInt2
	Int
	UInt4
	BigInt
	UInt8
	Float4
	Float8
	DateDay
	DateMilli
	TimeSec
	TimeMilli
	TimeMicro
	TimeNano
	TimeStampSec
	TimeStampMilli
	TimeStampMicro
	TimeStampNano
	IntervalYear
	IntervalDayMinor
	Decimal
)

var minorTypeNames = map[MinorType]string{
	Bit:              "Bit",
	TinyInt:          "TinyInt",
	UInt1:            "UInt1",
	SmallInt:         "SmallInt",
	UInt2:            "UInt2",
	Int:              "Int",
	UInt4:            "UInt4",
	BigInt:           "BigInt",
	UInt8:            "UInt8",
	Float4:           "Float4",
	Float8:           "Float8",
	DateDay:          "DateDay",
	DateMilli:        "DateMilli",
	TimeSec:          "TimeSec",
	TimeMilli:        "TimeMilli",
	TimeMicro:        "TimeMicro",
	TimeNano:         "TimeNano",
	TimeStampSec:     "TimeStampSec",
	TimeStampMilli:   "TimeStampMilli",
	TimeStampMicro:   "TimeStampMicro",
	TimeStampNano:    "TimeStampNano",
	IntervalYear:     "IntervalYear",
	IntervalDayMinor: "IntervalDay",
	Decimal:          "Decimal",
}

func (t MinorType) String() string {
	if n, ok := minorTypeNames[t]; ok {
		return n
	}
	return "Unknown"
}

// widthBits is the element width in bits. Bit is the one width that isn't
// a whole number of bytes.
var widthBits = map[MinorType]int{
	Bit:              1,
	TinyInt:          8,
	UInt1:            8,
	SmallInt:         16,
	UInt2:            16,
	Int:              32,
	UInt4:            32,
	BigInt:           64,
	UInt8:            64,
	Float4:           32,
	Float8:           64,
	DateDay:          32,
	DateMilli:        64,
	TimeSec:          32,
	TimeMilli:        32,
	TimeMicro:        64,
	TimeNano:         64,
	TimeStampSec:     64,
	TimeStampMilli:   64,
	TimeStampMicro:   64,
	TimeStampNano:    64,
	IntervalYear:     32,
	IntervalDayMinor: 64,
	Decimal:          128,
}

// WidthBits returns the element width in bits for t.
func (t MinorType) WidthBits() int {
	return widthBits[t]
}

// WidthBytes returns ceil(WidthBits()/8); for Bit this is 1, but callers
// sizing a Bit value buffer must use WidthBits and bitmap.SizeFromCount,
// not a byte-per-element assumption.
func (t MinorType) WidthBytes() int {
	return (t.WidthBits() + 7) / 8
}

// FieldType is the per-vector descriptor the core carries: a minor-type
// tag plus, for Decimal, the precision/scale that travel with it.
type FieldType struct {
	Name      string
	Minor     MinorType
	Precision int32
	Scale     int32
}

// FieldBuffers is the ordered (validity, value) pair exposed via
// getFieldBuffers for zero-copy IPC consumers. Nothing in this repo
// serializes them; the accessor itself is the contract.
type FieldBuffers[B any] struct {
	Validity B
	Value    B
}
