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

// exponentBound maps a modulus-size ceiling to the recommended short
// exponent bit length for that ceiling.
type exponentBound struct {
	maxModulusBits int
	exponentBits   int
}

// exponentSizeTable is scanned in declared order; the first entry whose
// maxModulusBits is >= the queried modulus size wins.
var exponentSizeTable = []exponentBound{
	{1024, 180},
	{2048, 225},
	{3072, 275},
	{4096, 325},
	{6144, 375},
	{8192, 400},
}

// defaultExponentBits is returned for modulus sizes above the table's
// largest entry.
const defaultExponentBits = 512

// ExponentSize returns the recommended short-exponent bit length for a
// modulus of the given bit length.
func ExponentSize(modulusBits int) int {
	for _, b := range exponentSizeTable {
		if modulusBits <= b.maxModulusBits {
			return b.exponentBits
		}
	}
	return defaultExponentBits
}
