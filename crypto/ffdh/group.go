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
	"math/big"

	"github.com/getamis/ffdh/internal/mathutil"
)

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// Group is an immutable finite-field Diffie-Hellman group: a prime modulus
// P, a generator Gg in [2, P-2], and an optional subgroup order Q dividing
// P-1. Once constructed a Group is never mutated and is safe to share by
// reference across goroutines.
type Group struct {
	P  *big.Int
	Gg *big.Int
	Q  *big.Int // nil if the subgroup order is not known
}

// NewSafePrimeGroup builds the safe-prime convenience group: generator 2,
// subgroup order Q = (P-1)/2. Equivalent to the reference's s_group
// constructor.
func NewSafePrimeGroup(p *big.Int) *Group {
	q := new(big.Int).Sub(p, big1)
	q.Rsh(q, 1)
	return &Group{
		P:  new(big.Int).Set(p),
		Gg: new(big.Int).Set(big2),
		Q:  q,
	}
}

// NewGroup builds a group from explicit parameters. q may be nil when the
// subgroup order is not documented for this group. Callers constructing a
// Group directly are trusted to ensure gg^q mod p = 1 when q is present;
// GenGroup verifies it.
func NewGroup(p, gg, q *big.Int) *Group {
	g := &Group{
		P:  new(big.Int).Set(p),
		Gg: new(big.Int).Set(gg),
	}
	if q != nil {
		g.Q = new(big.Int).Set(q)
	}
	return g
}

// ModulusSize returns the bit length of the group's modulus.
func ModulusSize(g *Group) int {
	return g.P.BitLen()
}

// BadPublicKey reports whether y is a degenerate or malformed public
// element for g: y <= 1, y >= p-1, or y == gg. These are the small-subgroup
// and out-of-range cases reachable without knowing the subgroup order q;
// they are the mandatory checks whenever the full subgroup check (y^q mod p
// = 1) is not performed.
//
// Rejecting y == gg is conservative: it signals the peer's exponent is
// congruent to 1 mod ord(gg), which is not by itself dangerous, but is kept
// here for parity with the reference implementation. Treat it as a
// potential interop hazard against peers that do not apply the same check.
func BadPublicKey(g *Group, y *big.Int) bool {
	pMinus1 := new(big.Int).Sub(g.P, big1)
	if mathutil.InRange(y, big2, pMinus1) != nil {
		return true
	}
	if y.Cmp(g.Gg) == 0 {
		return true
	}
	return false
}

// Secret is a single-use Diffie-Hellman private exponent, conceptually
// bound to the Group it was generated for (the binding is not enforced
// structurally; callers must not mix a Secret with a different Group).
type Secret struct {
	x *big.Int
}

// Zeroize wipes the secret exponent's backing words in place. It is a
// best-effort measure: Go's garbage collector may already have copied the
// bytes elsewhere (e.g. during a big.Int reallocation), but it ensures the
// live backing array no longer holds the value once Zeroize returns.
func (s *Secret) Zeroize() {
	if s == nil || s.x == nil {
		return
	}
	words := s.x.Bits()
	for i := range words {
		words[i] = 0
	}
	s.x.SetInt64(0)
}
