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

package ffdh

import (
	"io"
	"math/big"

	"github.com/getamis/ffdh/internal/mathutil"
	"github.com/getamis/ffdh/logger"
)

// minGenGroupBits is the smallest modulus size GenGroup will produce.
const minGenGroupBits = 8

// GenGroup produces a new safe-prime group with generator 2 and a verified
// subgroup order: it draws (q, p) with p = 2q+1, both prime, from rand,
// and accepts the result only once 2^q mod p = 1 (i.e. 2 is a quadratic
// residue and thus a generator of the order-q subgroup). A failed check
// retries the safe-prime draw; it is never surfaced to the caller.
func GenGroup(rand io.Reader, bits int) (*Group, error) {
	if bits < minGenGroupBits {
		return nil, ErrInvalidArgument
	}
	for {
		sp, err := mathutil.GenerateRandomSafePrime(rand, bits)
		if err != nil {
			return nil, err
		}
		check := new(big.Int).Exp(big2, sp.Q, sp.P)
		if check.Cmp(big1) != 0 {
			logger.Logger().Debug("ffdh: generator check failed, retrying safe-prime draw")
			continue
		}
		return &Group{
			P:  sp.P,
			Gg: new(big.Int).Set(big2),
			Q:  sp.Q,
		}, nil
	}
}
