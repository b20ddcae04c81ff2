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

import "fmt"

// EncodedLen returns the number of bytes produced by encoding n input bytes,
// including padding when the configuration uses it.
func (c Config) EncodedLen(n int) int {
	full := n / 3 * 4
	switch {
	case n%3 == 0:
		return full
	case c.hasPad:
		return full + 4
	case n%3 == 1:
		return full + 2
	default:
		return full + 3
	}
}

// Encode returns the base64 encoding of src.
func (c Config) Encode(src []byte) string {
	c.check()
	dst := make([]byte, c.EncodedLen(len(src)))
	c.encodeSlice(src, dst)
	return string(dst)
}

// AppendEncode appends the base64 encoding of src to dst and returns the
// extended buffer.
func (c Config) AppendEncode(dst, src []byte) []byte {
	c.check()
	n := len(dst)
	dst = append(dst, make([]byte, c.EncodedLen(len(src)))...)
	c.encodeSlice(src, dst[n:])
	return dst
}

// EncodeSlice encodes src into dst and returns the number of bytes written,
// always exactly EncodedLen(len(src)). It panics if dst is too short; use
// EncodedLen to size it.
func (c Config) EncodeSlice(src, dst []byte) int {
	c.check()
	need := c.EncodedLen(len(src))
	if len(dst) < need {
		panic(fmt.Sprintf("radix64: output buffer too small to encode input (%d < %d)", len(dst), need))
	}
	c.encodeSlice(src, dst[:need])
	return need
}

// encodeSlice encodes src into dst, which must be exactly EncodedLen bytes.
func (c Config) encodeSlice(src, dst []byte) {
	nSrc, nDst := encodeFullChunks(c, src, dst)
	encodePartialChunk(c, src[nSrc:], dst[nDst:])
}

// encodeFullChunks encodes as many complete 3-byte chunks of src into dst as
// both buffers allow, and reports how much of each was used. Bulk blocks go
// through the block engines; the rest through the chunk codec.
func encodeFullChunks(c Config, src, dst []byte) (nSrc, nDst int) {
	remSrc, remDst := encodeBlocks(c, src, dst)
	for len(remSrc) >= 3 && len(remDst) >= 4 {
		encodeChunk(c, remSrc, remDst)
		remSrc, remDst = remSrc[3:], remDst[4:]
	}
	return len(src) - len(remSrc), len(dst) - len(remDst)
}

// encodeChunk encodes the first 3 bytes of src into the first 4 bytes of dst.
func encodeChunk(c Config, src, dst []byte) {
	_ = src[2]
	_ = dst[3]
	v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
	dst[0] = c.enc[v>>18&0x3F]
	dst[1] = c.enc[v>>12&0x3F]
	dst[2] = c.enc[v>>6&0x3F]
	dst[3] = c.enc[v&0x3F]
}

// encodePartialChunk encodes a final chunk of fewer than 3 bytes, padding the
// output to a full 4 bytes when the configuration calls for it. It returns
// the number of output bytes written. The caller must provide room for them;
// EncodedLen accounts for the partial chunk.
func encodePartialChunk(c Config, src, dst []byte) int {
	switch len(src) {
	case 0:
		return 0
	case 1:
		dst[0] = c.enc[src[0]>>2]
		dst[1] = c.enc[src[0]<<4&0x3F]
		if !c.hasPad {
			return 2
		}
		dst[2] = c.pad
		dst[3] = c.pad
		return 4
	default:
		dst[0] = c.enc[src[0]>>2]
		dst[1] = c.enc[(src[0]<<4|src[1]>>4)&0x3F]
		dst[2] = c.enc[src[1]<<2&0x3F]
		if !c.hasPad {
			return 3
		}
		dst[3] = c.pad
		return 4
	}
}
