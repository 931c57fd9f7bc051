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

// Package ffdh implements finite-field Diffie-Hellman key agreement over a
// prime-order (or safe-prime) multiplicative group: group generation,
// public-element validation, key derivation, and shared-secret computation.
//
// The package performs no blinding or exponent randomization against timing
// side channels in the shared-secret path; it relies on ephemeral-only use
// of the generated keys to bound any such leakage.
package ffdh

import "errors"

var (
	// ErrInvalidPublicKey is returned by KeyOfSecret when the caller's own
	// secret exponent yields a degenerate public element. This signals a
	// pathological secret or a misparametrized group, not a peer failure.
	ErrInvalidPublicKey = errors.New("ffdh: invalid public key")
	// ErrInvalidArgument is returned by GenGroup when bits < 8.
	ErrInvalidArgument = errors.New("ffdh: invalid argument")
)
