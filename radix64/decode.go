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

import (
	"errors"
	"fmt"
)

// InvalidByteError reports the first input byte that is not a member of the
// configuration's alphabet.
type InvalidByteError byte

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("invalid base64 byte %#02x", byte(e))
}

// Decode errors that do not carry an offending byte.
var (
	// ErrInvalidLength indicates encoded input whose length leaves a single
	// byte over after the complete 4-byte chunks. No encoder produces such
	// input: one leftover byte holds at most 6 bits, not a whole byte.
	ErrInvalidLength = errors.New("encoded text cannot have a 6-bit remainder")

	// ErrInvalidTrailingBits indicates that the final sextet carries nonzero
	// bits beyond the end of the decoded output. Such input is not canonical
	// and decoding it would silently lose data.
	ErrInvalidTrailingBits = errors.New("last byte of encoded text has unnecessary trailing bits")
)

// MaxDecodedLen returns an upper bound on the number of bytes produced by
// decoding n input bytes with any configuration.
func (c Config) MaxDecodedLen(n int) int {
	return n*6/8 + 1
}

// Decode returns the bytes encoded by src. Trailing padding is accepted and
// ignored for configurations that use it, but is not required.
func (c Config) Decode(src []byte) ([]byte, error) {
	c.check()
	dst := make([]byte, c.MaxDecodedLen(len(src)))
	n, err := c.decodeSlice(src, dst)
	return dst[:n], err
}

// DecodeString is Decode for string input.
func (c Config) DecodeString(s string) ([]byte, error) {
	return c.Decode([]byte(s))
}

// DecodeSlice decodes src into dst and returns the number of bytes written.
// It panics if dst cannot hold the decoded output even when src is valid;
// use MaxDecodedLen to size it.
func (c Config) DecodeSlice(src, dst []byte) (int, error) {
	c.check()
	need := c.decodedLen(len(c.stripPadding(src)))
	if len(dst) < need {
		panic(fmt.Sprintf("radix64: output buffer too small to decode input (%d < %d)", len(dst), need))
	}
	return c.decodeSlice(src, dst)
}

// decodedLen returns the exact decoded size of n unpadded input bytes. A
// 1-byte tail decodes to nothing; it is rejected with ErrInvalidLength.
func (c Config) decodedLen(n int) int {
	tail := 0
	switch n % 4 {
	case 2:
		tail = 1
	case 3:
		tail = 2
	}
	return n/4*3 + tail
}

// stripPadding drops up to two trailing padding bytes. Padding anywhere else
// fails alphabet membership during decoding.
func (c Config) stripPadding(src []byte) []byte {
	if !c.hasPad {
		return src
	}
	for i := 0; i < 2 && len(src) > 0 && src[len(src)-1] == c.pad; i++ {
		src = src[:len(src)-1]
	}
	return src
}

func (c Config) decodeSlice(src, dst []byte) (int, error) {
	src = c.stripPadding(src)
	nSrc, nDst, err := decodeFullChunks(c, src, dst)
	if err != nil {
		return nDst, err
	}
	n, err := decodePartialTail(c, src[nSrc:], dst[nDst:])
	return nDst + n, err
}

// decodeFullChunks decodes as many complete 4-byte chunks of src into dst as
// both buffers allow, and reports how much of each was used. Bulk blocks go
// through the block engines; the rest through the chunk codec. On an invalid
// byte the counts cover the chunks decoded before it.
func decodeFullChunks(c Config, src, dst []byte) (nSrc, nDst int, err error) {
	remSrc, remDst := decodeBlocks(c, src, dst)
	for len(remSrc) >= 4 && len(remDst) >= 3 {
		if err := decodeChunk(c, remSrc, remDst); err != nil {
			return len(src) - len(remSrc), len(dst) - len(remDst), err
		}
		remSrc, remDst = remSrc[4:], remDst[3:]
	}
	return len(src) - len(remSrc), len(dst) - len(remDst), nil
}

// decodeChunk decodes the first 4 bytes of src into the first 3 bytes of dst.
func decodeChunk(c Config, src, dst []byte) error {
	_ = src[3]
	_ = dst[2]
	s0 := c.dec[src[0]]
	s1 := c.dec[src[1]]
	s2 := c.dec[src[2]]
	s3 := c.dec[src[3]]
	if s0|s1|s2|s3 > 0x3F {
		return firstInvalidByte(c, src[:4])
	}
	v := uint32(s0)<<18 | uint32(s1)<<12 | uint32(s2)<<6 | uint32(s3)
	dst[0] = byte(v >> 16)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v)
	return nil
}

func firstInvalidByte(c Config, src []byte) error {
	for _, b := range src {
		if c.dec[b] == invalidValue {
			return InvalidByteError(b)
		}
	}
	panic("radix64: no invalid byte in chunk reported as invalid")
}

// decodePartialTail decodes a final chunk of fewer than 4 bytes. Decoded
// bytes are written before trailing-bits validation, so the output prefix is
// intact even when ErrInvalidTrailingBits is returned.
func decodePartialTail(c Config, src, dst []byte) (int, error) {
	switch len(src) {
	case 0:
		return 0, nil
	case 1:
		// A single leftover byte can never decode, whatever its value.
		return 0, ErrInvalidLength
	case 2:
		s0, s1 := c.dec[src[0]], c.dec[src[1]]
		if s0|s1 > 0x3F {
			return 0, firstInvalidByte(c, src)
		}
		dst[0] = s0<<2 | s1>>4
		if s1&0x0F != 0 {
			return 1, ErrInvalidTrailingBits
		}
		return 1, nil
	default:
		s0, s1, s2 := c.dec[src[0]], c.dec[src[1]], c.dec[src[2]]
		if s0|s1|s2 > 0x3F {
			return 0, firstInvalidByte(c, src)
		}
		dst[0] = s0<<2 | s1>>4
		dst[1] = s1<<4 | s2>>2
		if s2&0x03 != 0 {
			return 2, ErrInvalidTrailingBits
		}
		return 2, nil
	}
}
