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
	. "github.com/onsi/gomega"
)

var _ = Describe("GenGroup", func() {
	// S6 Group generation
	It("returns a group whose modulus has the requested bit length (or one more)", func() {
		g, err := GenGroup(rand.Reader, 64)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ModulusSize(g)).Should(BeNumerically("~", 64, 1))
		Expect(g.Gg.Int64()).Should(Equal(int64(2)))
		Expect(g.Q).ShouldNot(BeNil())

		check := new(big.Int).Exp(big.NewInt(2), g.Q, g.P)
		Expect(check.Cmp(big1)).Should(Equal(0))

		expectedQ := new(big.Int).Sub(g.P, big1)
		expectedQ.Rsh(expectedQ, 1)
		Expect(g.Q.Cmp(expectedQ)).Should(Equal(0))
	})

	It("rejects a bit size below the minimum", func() {
		_, err := GenGroup(rand.Reader, 7)
		Expect(err).Should(MatchError(ErrInvalidArgument))
	})
})
