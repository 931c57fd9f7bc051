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

// deriveAndValidate computes y = gg^x mod p and reports whether it passes
// BadPublicKey. It never allocates an error: the caller decides whether a
// failed check is a hard error (KeyOfSecret) or a reason to retry (GenKey).
func deriveAndValidate(g *Group, x *big.Int) (*big.Int, bool) {
	y := new(big.Int).Exp(g.Gg, x, g.P)
	if BadPublicKey(g, y) {
		return nil, false
	}
	return y, true
}

// KeyOfSecret is the deterministic key-derivation variant: it interprets
// secretBytes big-endian as the private exponent x, computes y = gg^x mod
// p, and fails with ErrInvalidPublicKey if y is degenerate per
// BadPublicKey. A degenerate result here means the supplied secret is
// pathological for the chosen group, which is a programmer error, not a
// recoverable protocol event.
func KeyOfSecret(g *Group, secretBytes []byte) (*Secret, []byte, error) {
	x := new(big.Int).SetBytes(secretBytes)
	y, ok := deriveAndValidate(g, x)
	if !ok {
		return nil, nil, ErrInvalidPublicKey
	}
	return &Secret{x: x}, y.Bytes(), nil
}

// exponentBitSize picks the short-exponent bit length for GenKey: the
// caller's hint (if positive) or the table default from ExponentSize,
// capped by the group's subgroup order when known, else by the modulus
// size. When bitsHint exceeds the cap, it is silently truncated: callers
// cannot widen beyond the order cap, and a hint below the security-
// equivalent size is accepted without complaint (this module only logs it).
func exponentBitSize(g *Group, bitsHint int) int {
	pb := ModulusSize(g)
	sBits := bitsHint
	if sBits <= 0 {
		sBits = ExponentSize(pb)
	}
	orderCap := pb
	if g.Q != nil {
		orderCap = g.Q.BitLen()
	}
	if sBits > orderCap {
		logger.Logger().Debug("ffdh: capping exponent bit size to subgroup order", "requested", sBits, "cap", orderCap)
		sBits = orderCap
	}
	return sBits
}

// GenKey produces a fresh (Secret, public element) pair for g. bitsHint <=
// 0 means "use the default size for this modulus" (spec's absent
// ?bits_hint). Degenerate draws are discarded and retried; for any
// well-formed group this terminates almost immediately, since bad outputs
// have negligible probability.
func GenKey(g *Group, rand io.Reader, bitsHint int) (*Secret, []byte, error) {
	sBits := exponentBitSize(g, bitsHint)
	for {
		x, err := mathutil.RandomBits(rand, sBits, true)
		if err != nil {
			return nil, nil, err
		}
		y, ok := deriveAndValidate(g, x)
		if !ok {
			logger.Logger().Debug("ffdh: discarding degenerate public element, retrying")
			continue
		}
		return &Secret{x: x}, y.Bytes(), nil
	}
}

// Shared computes the shared secret between secret and a peer's public
// contribution peerBytes. It returns (nil, false) if peerBytes decodes to a
// degenerate public element per BadPublicKey — a normal, recoverable
// protocol outcome, not an error. There is no timing mask on this path;
// the design relies on ephemeral-only use of secret to bound any leakage.
func Shared(g *Group, secret *Secret, peerBytes []byte) ([]byte, bool) {
	y := new(big.Int).SetBytes(peerBytes)
	if BadPublicKey(g, y) {
		return nil, false
	}
	s := new(big.Int).Exp(y, secret.x, g.P)
	return s.Bytes(), true
}
