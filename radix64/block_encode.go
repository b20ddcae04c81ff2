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

// encodeBlocks runs the bulk of src through a block engine and returns the
// tails left for the chunk codec. The wide engine requires a builtin
// alphabet and a dispatch level above scalar; everything else takes the
// scalar block engine.
func encodeBlocks(c Config, src, dst []byte) (remSrc, remDst []byte) {
	if len(src) < blockEncodeThreshold {
		return src, dst
	}
	if c.accel != accelNone && currentLevel > DispatchScalar {
		return wideEncodeBlocks(c, src, dst)
	}
	return scalarEncodeBlocks(c, src, dst)
}

// scalarEncodeBlocks encodes 24-byte blocks through table lookups, reading
// 64 bits at a time. The 26-byte input chunk lets the last read reach 2
// bytes past the block.
func scalarEncodeBlocks(c Config, src, dst []byte) ([]byte, []byte) {
	it := newBlockIter(src, dst, 26, 24, 32, 32)
	for in, out, ok := it.next(); ok; in, out, ok = it.next() {
		for i := 0; i < 4; i++ {
			v := binary.BigEndian.Uint64(in[i*6:])
			ob := out[i*8:]
			ob[0] = c.enc[v>>58&0x3F]
			ob[1] = c.enc[v>>52&0x3F]
			ob[2] = c.enc[v>>46&0x3F]
			ob[3] = c.enc[v>>40&0x3F]
			ob[4] = c.enc[v>>34&0x3F]
			ob[5] = c.enc[v>>28&0x3F]
			ob[6] = c.enc[v>>22&0x3F]
			ob[7] = c.enc[v>>16&0x3F]
		}
	}
	return it.remaining()
}

// wideEncodeBlocks encodes 24-byte blocks lane-parallel: spread the input
// bits into eight sextet lanes per 64-bit word, then translate all lanes to
// alphabet bytes arithmetically with range masks instead of table lookups.
func wideEncodeBlocks(c Config, src, dst []byte) ([]byte, []byte) {
	it := newBlockIter(src, dst, 28, 24, 32, 32)
	for in, out, ok := it.next(); ok; in, out, ok = it.next() {
		for i := 0; i < 4; i++ {
			x := spreadSextets(binary.BigEndian.Uint64(in[i*6:]))
			binary.BigEndian.PutUint64(out[i*8:], encodeTranslate(c.accel, x))
		}
	}
	return it.remaining()
}

// encodeTranslate maps eight sextet lanes to alphabet bytes by adding a
// per-lane delta chosen from the lane's value range.
func encodeTranslate(accel accelKind, x uint64) uint64 {
	var d uint64
	switch accel {
	case accelStd:
		d = lanesOf(0x41) // 'A'
		d = laneSelect(laneGE(x, 26), lanesOf(0x47), d)
		d = laneSelect(laneGE(x, 52), lanesOf(0xFC), d)
		d = laneSelect(laneGE(x, 62), lanesOf(0xED), d)
		d = laneSelect(laneGE(x, 63), lanesOf(0xF0), d)
	case accelURLSafe:
		d = lanesOf(0x41) // 'A'
		d = laneSelect(laneGE(x, 26), lanesOf(0x47), d)
		d = laneSelect(laneGE(x, 52), lanesOf(0xFC), d)
		d = laneSelect(laneGE(x, 62), lanesOf(0xEF), d)
		d = laneSelect(laneGE(x, 63), lanesOf(0x20), d)
	case accelCrypt:
		d = lanesOf(0x2E) // '.'
		d = laneSelect(laneGE(x, 12), lanesOf(0x35), d)
		d = laneSelect(laneGE(x, 38), lanesOf(0x3B), d)
	}
	return laneAdd(x, d)
}
