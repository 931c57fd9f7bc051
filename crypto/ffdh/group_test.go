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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestFfdh(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ffdh Suite")
}

var _ = Describe("Group", func() {
	var p = big.NewInt(23) // safe prime: (23-1)/2 = 11, also prime

	Context("NewSafePrimeGroup", func() {
		It("sets gg=2 and q=(p-1)/2", func() {
			g := NewSafePrimeGroup(p)
			Expect(g.Gg.Int64()).Should(Equal(int64(2)))
			Expect(g.Q.Int64()).Should(Equal(int64(11)))
			Expect(ModulusSize(g)).Should(Equal(p.BitLen()))
		})
	})

	Context("NewGroup", func() {
		It("accepts a nil subgroup order", func() {
			g := NewGroup(p, big.NewInt(5), nil)
			Expect(g.Q).Should(BeNil())
		})

		It("copies the supplied subgroup order", func() {
			q := big.NewInt(11)
			g := NewGroup(p, big.NewInt(5), q)
			Expect(g.Q.Cmp(q)).Should(Equal(0))
			q.SetInt64(999)
			Expect(g.Q.Int64()).Should(Equal(int64(11)))
		})
	})

	Context("BadPublicKey", func() {
		g := NewSafePrimeGroup(p)

		DescribeTable("degenerate values",
			func(y int64) {
				Expect(BadPublicKey(g, big.NewInt(y))).Should(BeTrue())
			},
			Entry("zero", int64(0)),
			Entry("one", int64(1)),
			Entry("p-1", int64(22)),
			Entry("gg", int64(2)),
		)

		DescribeTable("well-formed values",
			func(y int64) {
				Expect(BadPublicKey(g, big.NewInt(y))).Should(BeFalse())
			},
			Entry("4", int64(4)),
			Entry("8", int64(8)),
		)
	})
})

var _ = Describe("Secret", func() {
	It("zeroes the backing exponent on Zeroize", func() {
		s := &Secret{x: big.NewInt(123456789)}
		s.Zeroize()
		Expect(s.x.Sign()).Should(Equal(0))
	})

	It("tolerates Zeroize on a nil receiver", func() {
		var s *Secret
		Expect(func() { s.Zeroize() }).ShouldNot(Panic())
	})
})
