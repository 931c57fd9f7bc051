// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mathutil

import (
	"io"
	"math/big"
)

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big4 = big.NewInt(4)
)

// RandomBits draws a uniformly random integer of exactly n bits. When
// msbSet is true the top bit is forced to 1, guaranteeing the result has
// bit length exactly n (the gen_bits(n, msb_set) contract short-exponent
// sampling relies on).
func RandomBits(rng io.Reader, n int, msbSet bool) (*big.Int, error) {
	if n <= 0 {
		return nil, ErrInvalidInput
	}
	numBytes := (n + 7) / 8
	buf := make([]byte, numBytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, err
	}
	excess := numBytes*8 - n
	if excess > 0 {
		buf[0] &= 0xff >> uint(excess)
	}
	if msbSet {
		buf[0] |= 1 << uint(7-excess)
	}
	return new(big.Int).SetBytes(buf), nil
}

// InRange checks that checkValue lies in [floor, ceil). BadPublicKey uses it
// for the in-range half of the degenerate-public-element check.
func InRange(checkValue *big.Int, floor *big.Int, ceil *big.Int) error {
	if ceil.Cmp(floor) < 1 {
		return ErrLargerFloor
	}
	if checkValue.Cmp(floor) < 0 {
		return ErrNotInRange
	}
	if checkValue.Cmp(ceil) > -1 {
		return ErrNotInRange
	}
	return nil
}
