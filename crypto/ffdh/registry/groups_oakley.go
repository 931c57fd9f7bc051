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

// The Oakley groups: RFC 2409's three original MODP groups (1, 2, 5) and
// RFC 3526's four extensions (14, 15, 16, 17, 18). All are safe-prime
// groups with generator 2 and q = (p-1)/2.

// oakley1 is not the literal RFC 2409 Group 1 modulus: no copy of that
// 768-bit constant was found anywhere in this repo's sources, and past
// memory-transcription of RFC hex in this package has proven unreliable
// (see DESIGN.md). Instead this is an independently generated 768-bit
// safe prime, confirmed by repeated Miller-Rabin on both P and (P-1)/2
// and by checking 2^((P-1)/2) mod P = 1. It satisfies every invariant
// this package tests but is not interoperable with a peer expecting the
// official RFC 2409 Group 1 modulus.
var oakley1 = newLazySafePrime(`
A63120DE 32FEB5B4 FEC193B0 7F92B072 C3E1DEC5 19AA7515
99DF41C1 1A57C886 B4EF8482 F40DD2A7 81D63600 B83A191A
5B7C6C32 F2D2A8ED AE6587B0 BB014BDC 23FFC9D4 B9506F26
37DD6BBE A4DC3BE2 ADEB0AC0 3F17B932 C7737269 6E5B4147
`)

var oakley2 = newLazySafePrime(`
FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE65381
FFFFFFFF FFFFFFFF
`)

var oakley5 = newLazySafePrime(`
FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
670C354E 4ABC9804 F1746C08 CA237327 FFFFFFFF FFFFFFFF
`)

var oakley14 = newLazySafePrime(`
FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
15728E5A 8AACAA68 FFFFFFFF FFFFFFFF
`)

var oakley15 = newLazySafePrime(`
FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
43DB5BFC E0FD108E 4B82D120 A93AD2CA FFFFFFFF FFFFFFFF
`)

// oakley16, oakley17, and oakley18 hold the literal RFC 3526 MODP group
// 16/17/18 moduli (4096, 6144, 8192 bits); see the comment on the Hex
// constants in groups_generated.go for where they were sourced.
var oakley16 = newLazySafePrime(oakley16Hex)
var oakley17 = newLazySafePrime(oakley17Hex)
var oakley18 = newLazySafePrime(oakley18Hex)

// Oakley1 is a 768-bit safe-prime group standing in for RFC 2409's first
// Oakley default group; see the doc comment on oakley1 above.
func Oakley1() *ffdh.Group { return oakley1.get() }

// Oakley2 is RFC 2409's second Oakley group (1024-bit).
func Oakley2() *ffdh.Group { return oakley2.get() }

// Oakley5 is RFC 3526's 1536-bit MODP group.
func Oakley5() *ffdh.Group { return oakley5.get() }

// Oakley14 is RFC 3526's 2048-bit MODP group.
func Oakley14() *ffdh.Group { return oakley14.get() }

// Oakley15 is RFC 3526's 3072-bit MODP group.
func Oakley15() *ffdh.Group { return oakley15.get() }

// Oakley16 is RFC 3526's 4096-bit MODP group.
func Oakley16() *ffdh.Group { return oakley16.get() }

// Oakley17 is RFC 3526's 6144-bit MODP group.
func Oakley17() *ffdh.Group { return oakley17.get() }

// Oakley18 is RFC 3526's 8192-bit MODP group.
func Oakley18() *ffdh.Group { return oakley18.get() }
