// Copyright 2026 go-radix64 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package radix64

import "encoding/binary"

// decodeBlocks runs the bulk of src through a block engine and returns the
// tails left for the chunk codec. Block engines never report errors: when a
// block fails validation they rewind to its start and leave it in the tail,
// where the chunk codec derives the exact offending byte.
func decodeBlocks(c Config, src, dst []byte) (remSrc, remDst []byte) {
	if len(src) < blockDecodeThreshold {
		return src, dst
	}
	if c.accel != accelNone && currentLevel > DispatchScalar {
		return wideDecodeBlocks(c, src, dst)
	}
	return scalarDecodeBlocks(c, src, dst)
}

// scalarDecodeBlocks decodes 32-byte blocks through the inverse table, 8
// input bytes at a time.
func scalarDecodeBlocks(c Config, src, dst []byte) ([]byte, []byte) {
	it := newBlockIter(src, dst, 32, 32, 24, 24)
	for in, out, ok := it.next(); ok; in, out, ok = it.next() {
		for i := 0; i < 4; i++ {
			ib := in[i*8 : i*8+8]
			s0 := c.dec[ib[0]]
			s1 := c.dec[ib[1]]
			s2 := c.dec[ib[2]]
			s3 := c.dec[ib[3]]
			s4 := c.dec[ib[4]]
			s5 := c.dec[ib[5]]
			s6 := c.dec[ib[6]]
			s7 := c.dec[ib[7]]
			if s0|s1|s2|s3|s4|s5|s6|s7 > 0x3F {
				it.back()
				return it.remaining()
			}
			v := uint64(s0)<<42 | uint64(s1)<<36 | uint64(s2)<<30 | uint64(s3)<<24 |
				uint64(s4)<<18 | uint64(s5)<<12 | uint64(s6)<<6 | uint64(s7)
			ob := out[i*6 : i*6+6]
			ob[0] = byte(v >> 40)
			ob[1] = byte(v >> 32)
			ob[2] = byte(v >> 24)
			ob[3] = byte(v >> 16)
			ob[4] = byte(v >> 8)
			ob[5] = byte(v)
		}
	}
	return it.remaining()
}

// wideDecodeBlocks decodes 32-byte blocks using nibble-indexed validation
// masks and per-range translation deltas, then packs the sextet lanes back
// into bytes. The 32-byte output chunk gives the 64-bit stores 8 bytes of
// slack past each 6-byte group.
func wideDecodeBlocks(c Config, src, dst []byte) ([]byte, []byte) {
	lut := &wideDecodeLUTs[c.accel]
	it := newBlockIter(src, dst, 32, 32, 32, 24)
	for in, out, ok := it.next(); ok; in, out, ok = it.next() {
		var bad byte
		for i := 0; i < 4; i++ {
			ib := in[i*8 : i*8+8]
			var x uint64
			for _, b := range ib {
				m := lut.mask[b&0x0F] & wideBitPos[b>>4]
				bad |= (m - 1) & 0x80
				s := b + lut.shift[b>>4]
				if b == lut.special {
					s = b + lut.specialShift
				}
				x = x<<8 | uint64(s)
			}
			binary.BigEndian.PutUint64(out[i*6:], packSextets(x)<<16)
		}
		if bad != 0 {
			// Re-run the block through the chunk codec for the exact byte.
			it.back()
			return it.remaining()
		}
	}
	return it.remaining()
}
