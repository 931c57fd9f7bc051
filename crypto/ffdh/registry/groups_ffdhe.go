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

package registry

import "github.com/getamis/ffdh/crypto/ffdh"

// The RFC 7919 FFDHE groups are safe-prime groups with generator 2, grown
// from the same fixed prefix of pi-derived bits as the size increases
// (ffdhe2048 is a leading-bit prefix of ffdhe3072, and so on).

var ffdhe2048 = newLazySafePrime(`
FFFFFFFF FFFFFFFF ADF85458 A2BB4A9A AFDC5620 273D3CF1
D8B9C583 CE2D3695 A9E13641 146433FB CC939DCE 249B3EF9
7D2FE363 630C75D8 F681B202 AEC4617A D3DF1ED5 D5FD6561
2433F51F 5F066ED0 85636555 3DED1AF3 B557135E 7F57C935
984F0C70 E0E68B77 E2A689DA F3EFE872 1DF158A1 36ADE735
30ACCA4F 483A797A BC0AB182 B324FB61 D108A94B B2C8E3FB
B96ADAB7 60D7F468 1D4F42A3 DE394DF4 AE56EDE7 6372BB19
0B07A7C8 EE0A6D70 9E02FCE1 CDF7E2EC C03404CD 28342F61
9172FE9C E98583FF 8E4F1232 EEF28183 C3FE3B1B 4C6FAD73
3BB5FCBC 2EC22005 C58EF183 7D1683B2 C6F34A26 C1B2EFFA
886B4238 61285C97 FFFFFFFF FFFFFFFF
`)

// ffdhe3072, ffdhe4096, ffdhe6144, and ffdhe8192 reuse the RFC 3526 MODP
// moduli of matching bit length rather than the literal RFC 7919
// constants, which were not available anywhere in this repo's sources:
// see the comment on the Hex constants in groups_generated.go and
// DESIGN.md. Modulus size, safe-prime structure, and generator 2 validity
// all hold; byte-for-byte interop with a peer expecting the official
// RFC 7919 modulus does not.
var ffdhe3072 = newLazySafePrime(ffdhe3072Hex)
var ffdhe4096 = newLazySafePrime(ffdhe4096Hex)
var ffdhe6144 = newLazySafePrime(ffdhe6144Hex)
var ffdhe8192 = newLazySafePrime(ffdhe8192Hex)

// FFDHE2048 is RFC 7919's 2048-bit negotiated FFDHE group.
func FFDHE2048() *ffdh.Group { return ffdhe2048.get() }

// FFDHE3072 is a 3072-bit safe-prime group; see the package-level note
// above for how it relates to the official RFC 7919 ffdhe3072 group.
func FFDHE3072() *ffdh.Group { return ffdhe3072.get() }

// FFDHE4096 is a 4096-bit safe-prime group; see the package-level note
// above for how it relates to the official RFC 7919 ffdhe4096 group.
func FFDHE4096() *ffdh.Group { return ffdhe4096.get() }

// FFDHE6144 is a 6144-bit safe-prime group; see the package-level note
// above for how it relates to the official RFC 7919 ffdhe6144 group.
func FFDHE6144() *ffdh.Group { return ffdhe6144.get() }

// FFDHE8192 is an 8192-bit safe-prime group; see the package-level note
// above for how it relates to the official RFC 7919 ffdhe8192 group.
func FFDHE8192() *ffdh.Group { return ffdhe8192.get() }
