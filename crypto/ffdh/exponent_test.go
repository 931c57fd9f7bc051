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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponentSize(t *testing.T) {
	cases := []struct {
		bits     int
		expected int
	}{
		{1024, 180},
		{2048, 225},
		{3072, 275},
		{4096, 325},
		{6144, 375},
		{8192, 400},
		{8193, 512},
		{1, 180}, // below the smallest bound still hits the first entry
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, ExponentSize(c.bits), "bits=%d", c.bits)
	}
}
