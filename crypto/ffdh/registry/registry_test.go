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

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/getamis/ffdh/crypto/ffdh"
)

// primalityRounds is the Miller-Rabin round count used to check registry
// constants. 20 matches the bar a reviewer would apply by hand; it is not
// a claim about the final error bound, just a cheap, confident-enough check
// that a composite constant (like the placeholders a past revision of this
// package shipped) cannot slip through unnoticed again.
const primalityRounds = 20

func TestRegistry(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Registry Suite")
}

var _ = Describe("Registry", func() {
	DescribeTable("modulus size matches the group's nominal bit length",
		func(get func() *ffdh.Group, bits int) {
			Expect(ffdh.ModulusSize(get())).Should(Equal(bits))
		},
		Entry("oakley_1", Oakley1, 768),
		Entry("oakley_2", Oakley2, 1024),
		Entry("oakley_5", Oakley5, 1536),
		Entry("oakley_14", Oakley14, 2048),
		Entry("oakley_15", Oakley15, 3072),
		Entry("oakley_16", Oakley16, 4096),
		Entry("oakley_17", Oakley17, 6144),
		Entry("oakley_18", Oakley18, 8192),
		Entry("rfc_5114_1", RFC5114_1, 1024),
		Entry("rfc_5114_2", RFC5114_2, 2048),
		Entry("rfc_5114_3", RFC5114_3, 2048),
		Entry("ffdhe2048", FFDHE2048, 2048),
		Entry("ffdhe3072", FFDHE3072, 3072),
		Entry("ffdhe4096", FFDHE4096, 4096),
		Entry("ffdhe6144", FFDHE6144, 6144),
		Entry("ffdhe8192", FFDHE8192, 8192),
	)

	It("builds the safe-prime groups with generator 2 and q = (p-1)/2", func() {
		g := Oakley14()
		Expect(g.Gg.Int64()).Should(Equal(int64(2)))
		Expect(g.Q).ShouldNot(BeNil())
	})

	// Every safe-prime registry group must satisfy: p prime, q = (p-1)/2
	// prime, and gg^q mod p = 1 (gg generates the order-q subgroup). A
	// prior revision of this package shipped several composite placeholder
	// constants (Oakley1, Oakley16/17/18, FFDHE3072/4096/6144/8192) that the
	// modulus-size-only table above never caught; this table exists so that
	// class of bug fails the suite instead of shipping silently.
	DescribeTable("safe-prime groups are genuinely prime with a valid generator",
		func(get func() *ffdh.Group) {
			g := get()
			Expect(g.P.ProbablyPrime(primalityRounds)).Should(BeTrue(), "modulus must be prime")
			Expect(g.Q).ShouldNot(BeNil())
			Expect(g.Q.ProbablyPrime(primalityRounds)).Should(BeTrue(), "subgroup order must be prime")

			pMinus1 := new(big.Int).Sub(g.P, big.NewInt(1))
			wantQ := new(big.Int).Rsh(pMinus1, 1)
			Expect(g.Q.Cmp(wantQ)).Should(Equal(0), "q must equal (p-1)/2")

			check := new(big.Int).Exp(g.Gg, g.Q, g.P)
			Expect(check.Cmp(big.NewInt(1))).Should(Equal(0), "gg^q mod p must be 1")
		},
		Entry("oakley_1", Oakley1),
		Entry("oakley_2", Oakley2),
		Entry("oakley_5", Oakley5),
		Entry("oakley_14", Oakley14),
		Entry("oakley_15", Oakley15),
		Entry("oakley_16", Oakley16),
		Entry("oakley_17", Oakley17),
		Entry("oakley_18", Oakley18),
		Entry("ffdhe2048", FFDHE2048),
		Entry("ffdhe3072", FFDHE3072),
		Entry("ffdhe4096", FFDHE4096),
		Entry("ffdhe6144", FFDHE6144),
		Entry("ffdhe8192", FFDHE8192),
	)

	It("builds the RFC 5114 groups with their documented generator and order", func() {
		g := RFC5114_1()
		Expect(g.Gg.Int64()).ShouldNot(Equal(int64(2)))
		Expect(ffdh.ModulusSize(g)).Should(Equal(1024))
		Expect(g.Q.BitLen()).Should(BeNumerically("~", 160, 2))
	})

	// The RFC 5114-style groups are not safe-prime groups (q is a small
	// documented prime order, not (p-1)/2), so they need their own
	// structural check: p prime, q prime, g < p, q divides p-1, and
	// g^q mod p = 1. This table would have caught the previous RFC5114_2
	// generator, which was numerically larger than its own modulus.
	DescribeTable("rfc 5114 groups have a prime modulus and a valid documented-order generator",
		func(get func() *ffdh.Group) {
			g := get()
			Expect(g.P.ProbablyPrime(primalityRounds)).Should(BeTrue(), "modulus must be prime")
			Expect(g.Q).ShouldNot(BeNil())
			Expect(g.Q.ProbablyPrime(primalityRounds)).Should(BeTrue(), "subgroup order must be prime")
			Expect(g.Gg.Cmp(g.P)).Should(Equal(-1), "generator must be smaller than the modulus")

			pMinus1 := new(big.Int).Sub(g.P, big.NewInt(1))
			remainder := new(big.Int).Mod(pMinus1, g.Q)
			Expect(remainder.Sign()).Should(Equal(0), "q must divide p-1")

			check := new(big.Int).Exp(g.Gg, g.Q, g.P)
			Expect(check.Cmp(big.NewInt(1))).Should(Equal(0), "gg^q mod p must be 1")
		},
		Entry("rfc_5114_1", RFC5114_1),
		Entry("rfc_5114_2", RFC5114_2),
		Entry("rfc_5114_3", RFC5114_3),
	)

	It("memoizes repeated access to the same group", func() {
		a := Oakley14()
		b := Oakley14()
		Expect(a.P.Cmp(b.P)).Should(Equal(0))
	})

	It("accepts a minimal known-answer round trip against oakley_14", func() {
		g := Oakley14()
		secretA, pubA, err := ffdh.KeyOfSecret(g, []byte{2})
		Expect(err).ShouldNot(HaveOccurred())
		secretB, pubB, err := ffdh.KeyOfSecret(g, []byte{3})
		Expect(err).ShouldNot(HaveOccurred())

		sharedA, ok := ffdh.Shared(g, secretA, pubB)
		Expect(ok).Should(BeTrue())
		sharedB, ok := ffdh.Shared(g, secretB, pubA)
		Expect(ok).Should(BeTrue())
		Expect(sharedA).Should(Equal(sharedB))
	})
})
