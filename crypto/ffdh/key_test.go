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
	"crypto/rand"
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Key lifecycle", func() {
	// p = 23 is a safe prime: q = (p-1)/2 = 11 is prime too. Small enough
	// for exact literal assertions, large enough to exercise every check.
	g := NewSafePrimeGroup(big.NewInt(23))

	Context("KeyOfSecret", func() {
		It("derives the public element deterministically", func() {
			secret, pub, err := KeyOfSecret(g, []byte{2})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(new(big.Int).SetBytes(pub).Int64()).Should(Equal(int64(4)))
			Expect(secret.x.Int64()).Should(Equal(int64(2)))
		})

		// S4 Invalid secret
		DescribeTable("rejects secrets whose public element is degenerate",
			func(x int64) {
				_, _, err := KeyOfSecret(g, big.NewInt(x).Bytes())
				Expect(err).Should(MatchError(ErrInvalidPublicKey))
			},
			Entry("x=0 (gg^0=1)", int64(0)),
			Entry("x=1 (gg^1=gg)", int64(1)),
		)
	})

	Context("GenKey", func() {
		It("produces a valid key pair using the default exponent size", func() {
			secret, pub, err := GenKey(g, rand.Reader, 0)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(secret.x.Sign()).Should(BeNumerically(">", 0))
			y := new(big.Int).SetBytes(pub)
			Expect(BadPublicKey(g, y)).Should(BeFalse())
		})

		It("honors a positive bits_hint capped by the subgroup order", func() {
			secret, _, err := GenKey(g, rand.Reader, 800)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(secret.x.BitLen()).Should(BeNumerically("<=", g.Q.BitLen()))
		})
	})

	Context("Shared", func() {
		// S3-style KAT round trip, scaled down to this package's small test group.
		It("agrees on the same shared secret from both sides", func() {
			secretA, pubA, err := KeyOfSecret(g, []byte{2})
			Expect(err).ShouldNot(HaveOccurred())
			secretB, pubB, err := KeyOfSecret(g, []byte{3})
			Expect(err).ShouldNot(HaveOccurred())

			sharedA, ok := Shared(g, secretA, pubB)
			Expect(ok).Should(BeTrue())
			sharedB, ok := Shared(g, secretB, pubA)
			Expect(ok).Should(BeTrue())
			Expect(sharedA).Should(Equal(sharedB))
		})

		// S2 Degenerate peer
		DescribeTable("rejects degenerate peer contributions",
			func(y int64) {
				secret, _, err := KeyOfSecret(g, []byte{5})
				Expect(err).ShouldNot(HaveOccurred())
				_, ok := Shared(g, secret, big.NewInt(y).Bytes())
				Expect(ok).Should(BeFalse())
			},
			Entry("zero", int64(0)),
			Entry("one", int64(1)),
			Entry("p-1", int64(22)),
			Entry("gg", int64(2)),
		)
	})
})
