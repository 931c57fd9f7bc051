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

// Package mathutil collects the big-integer and randomness helpers shared
// by the ffdh engine: range checking, bit-length-exact random sampling,
// and safe-prime search. It has no notion of a Diffie-Hellman group itself.
package mathutil

import "errors"

var (
	// ErrInvalidInput is returned if the input is invalid.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotInRange is returned if the value is not in the given range.
	ErrNotInRange = errors.New("not in range")
	// ErrLargerFloor is returned if the floor is larger than ceil.
	ErrLargerFloor = errors.New("larger floor")
	// ErrSmallSafePrime is returned if the safe-prime size is too small.
	ErrSmallSafePrime = errors.New("safe-prime size must be at least 3-bit")
)
