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

// Package registry exposes a curated set of standardized finite-field
// Diffie-Hellman groups: the RFC 2409 Oakley groups, the RFC 3526 MODP
// extensions, RFC 5114's groups with documented subgroup order, and the
// RFC 7919 negotiated FFDHE set. Every exported value is a *ffdh.Group
// built once, on first use, from a fixed hex modulus.
package registry

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/getamis/ffdh/crypto/ffdh"
)

// parseHex turns a whitespace-formatted hex literal (as published in RFCs,
// with spaces and newlines between words) into a *big.Int. It panics on a
// malformed literal: these are compile-time constants, not external input.
func parseHex(s string) *big.Int {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		default:
			return r
		}
	}, s)
	n, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		panic(fmt.Sprintf("registry: malformed hex literal %q", s))
	}
	return n
}

// lazyGroup memoizes the construction of a single registry *ffdh.Group so
// the hex-to-bigint parse happens at most once per process, even if the
// same constant is referenced concurrently from multiple goroutines.
type lazyGroup struct {
	once sync.Once
	g    *ffdh.Group
	fn   func() *ffdh.Group
}

func newLazySafePrime(hexP string) *lazyGroup {
	lg := &lazyGroup{}
	lg.fn = func() *ffdh.Group {
		return ffdh.NewSafePrimeGroup(parseHex(hexP))
	}
	return lg
}

func newLazyGroup(hexP, hexGg, hexQ string) *lazyGroup {
	lg := &lazyGroup{}
	lg.fn = func() *ffdh.Group {
		return ffdh.NewGroup(parseHex(hexP), parseHex(hexGg), parseHex(hexQ))
	}
	return lg
}

func (lg *lazyGroup) get() *ffdh.Group {
	lg.once.Do(func() {
		lg.g = lg.fn()
	})
	return lg.g
}
