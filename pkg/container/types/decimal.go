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

package types

import (
	"math/big"

	"github.com/edrya/arrow/pkg/common/moerr"
)

// Decimal128Size is the fixed width, in bytes, of a Decimal128 value.
const Decimal128Size = 16

// Decimal128 is a 16-byte little-endian two's-complement significand.
// Precision/scale are not stored in the value itself -- they live in the
// vector's FieldType -- mirroring EncodeDecimal128/DecodeDecimal128's
// raw-byte reinterpretation idiom.
type Decimal128 [Decimal128Size]byte

// MaxPrecision and MinPrecision bound the legal precision range.
const (
	MinPrecision = 1
	MaxPrecision = 38
)

var pow10 = func() [MaxPrecision + 1]*big.Int {
	var t [MaxPrecision + 1]*big.Int
	v := big.NewInt(1)
	ten := big.NewInt(10)
	for i := 0; i <= MaxPrecision; i++ {
		t[i] = new(big.Int).Set(v)
		v.Mul(v, ten)
	}
	return t
}()

// ValidatePrecisionScale checks precision in [1,38] and scale in [0,precision].
func ValidatePrecisionScale(precision, scale int32) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return moerr.NewInvalidArgument("precision", precision)
	}
	if scale < 0 || scale > precision {
		return moerr.NewInvalidArgument("scale", scale)
	}
	return nil
}

// Decimal128FromBigInt encodes unscaled into a two's-complement, little-
// endian Decimal128, failing with InvalidArgument if |unscaled| >= 10^precision.
func Decimal128FromBigInt(unscaled *big.Int, precision int32) (Decimal128, error) {
	limit := pow10[precision]
	abs := new(big.Int).Abs(unscaled)
	if abs.Cmp(limit) >= 0 {
		return Decimal128{}, moerr.NewInvalidArgument("decimal magnitude", unscaled.String())
	}

	var d Decimal128
	// two's complement over 16 bytes: for non-negative values this is
	// just the little-endian magnitude; for negative values we encode
	// (2^128 + unscaled).
	mag := new(big.Int).Set(unscaled)
	if mag.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		mag.Add(mag, mod)
	}
	b := mag.Bytes() // big-endian, no leading zero byte trimming guarantees
	for i := 0; i < len(b) && i < Decimal128Size; i++ {
		d[i] = b[len(b)-1-i]
	}
	return d, nil
}

// BigInt decodes the two's-complement significand back into a signed big.Int.
func (d Decimal128) BigInt() *big.Int {
	be := make([]byte, Decimal128Size)
	for i := 0; i < Decimal128Size; i++ {
		be[i] = d[Decimal128Size-1-i]
	}
	v := new(big.Int).SetBytes(be)
	// if the high bit is set, this is a negative two's-complement value
	if d[Decimal128Size-1]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		v.Sub(v, mod)
	}
	return v
}

// BigDecimal renders d against the given scale as unscaled * 10^-scale,
// exposed as (unscaled, scale) and built on math/big since no third-party
// arbitrary-precision decimal type appears anywhere in the example pack
// (see DESIGN.md).
type BigDecimal struct {
	Unscaled *big.Int
	Scale    int32
}

func (d Decimal128) BigDecimal(scale int32) BigDecimal {
	return BigDecimal{Unscaled: d.BigInt(), Scale: scale}
}
