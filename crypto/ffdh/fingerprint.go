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
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable 32-byte blake2b-256 identifier for a group's
// public parameters (p, gg, q). It exists purely so callers can log, cache,
// or compare "which group is this" cheaply, without re-encoding and
// diffing full hex blobs; it is not a KDF over a shared secret and not a
// wire serialization of the group (both out of this library's scope).
func Fingerprint(g *Group) []byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only errors on a non-nil key longer than 64 bytes.
		panic(err)
	}
	writeLengthPrefixed(h, g.P.Bytes())
	writeLengthPrefixed(h, g.Gg.Bytes())
	if g.Q != nil {
		writeLengthPrefixed(h, g.Q.Bytes())
	} else {
		h.Write([]byte{0x00})
	}
	return h.Sum(nil)
}

func writeLengthPrefixed(h hash.Hash, b []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	h.Write(lenBuf[:])
	h.Write(b)
}
