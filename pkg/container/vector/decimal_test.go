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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edrya/arrow/pkg/common/moerr"
)

func TestDecimalConstructorValidatesPrecisionScale(t *testing.T) {
	a := newTestAllocator(t)

	_, err := NewDecimal128Vector("x", a, 0, 0)
	require.Error(t, err)
	require.True(t, moerr.Is(err, moerr.ErrInvalidArgument))

	_, err = NewDecimal128Vector("x", a, 10, 20)
	require.Error(t, err)

	_, err = NewDecimal128Vector("x", a, 39, 0)
	require.Error(t, err)
}

// S5: Decimal(10,2) must accept a value within its magnitude bound and
// reject one that overflows it.
func TestDecimalMagnitudeBound(t *testing.T) {
	a := newTestAllocator(t)
	v, err := NewDecimal128Vector("x", a, 10, 2)
	require.NoError(t, err)
	require.NoError(t, v.AllocateNew())

	ok := big.NewInt(123456789) // fits under 10^10
	require.NoError(t, SetDecimalSafe(v, 0, ok))

	bd, err := GetBigDecimal(v, 0)
	require.NoError(t, err)
	require.Equal(t, int32(2), bd.Scale)
	require.Equal(t, ok.String(), bd.Unscaled.String())

	tooBig := new(big.Int).Exp(big.NewInt(10), big.NewInt(10), nil) // == 10^10, out of range
	err = SetDecimalSafe(v, 1, tooBig)
	require.Error(t, err)
	require.True(t, moerr.Is(err, moerr.ErrInvalidArgument))
}

func TestDecimalNegativeRoundTrip(t *testing.T) {
	a := newTestAllocator(t)
	v, err := NewDecimal128Vector("x", a, 20, 5)
	require.NoError(t, err)
	require.NoError(t, v.AllocateNew())

	neg := big.NewInt(-987654321)
	require.NoError(t, SetDecimalSafe(v, 0, neg))

	bd, err := GetBigDecimal(v, 0)
	require.NoError(t, err)
	require.Equal(t, neg.String(), bd.Unscaled.String())
}
