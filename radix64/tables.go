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

// Builtin alphabets.
const (
	stdAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	cryptAlphabet   = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

var (
	stdEncode     [64]byte
	urlSafeEncode [64]byte
	cryptEncode   [64]byte

	stdDecode     [256]byte
	urlSafeDecode [256]byte
	cryptDecode   [256]byte
)

func init() {
	buildTables(stdAlphabet, &stdEncode, &stdDecode)
	buildTables(urlSafeAlphabet, &urlSafeEncode, &urlSafeDecode)
	buildTables(cryptAlphabet, &cryptEncode, &cryptDecode)
}

func buildTables(alphabet string, enc *[64]byte, dec *[256]byte) {
	for i := range dec {
		dec[i] = invalidValue
	}
	for i := 0; i < 64; i++ {
		c := alphabet[i]
		enc[i] = c
		dec[c] = byte(i)
	}
}

// Wide-path decode validation splits each input byte into nibbles: the high
// nibble selects a one-hot bit, the low nibble a bitmask of high nibbles that
// form a valid alphabet byte with it. A byte is valid iff the bit is set in
// the mask. The same high nibble then selects an additive delta translating
// the byte to its sextet, with at most one alphabet member needing a
// special-cased delta.
type wideDecodeLUT struct {
	mask  [16]byte
	shift [16]byte // two's-complement deltas, applied with wrapping add
	// special is an alphabet byte whose delta differs from its high-nibble
	// row; specialShift applies to it instead. special == 0 means none.
	special      byte
	specialShift byte
}

// One-hot bit per high nibble. High nibbles 8-15 never occur in an ASCII
// alphabet, so their bit stays zero and the mask test always fails.
var wideBitPos = [16]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}

var wideDecodeLUTs = [...]wideDecodeLUT{
	accelStd: {
		mask: [16]byte{
			0xA8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8,
			0xF8, 0xF8, 0xF0, 0x54, 0x50, 0x50, 0x50, 0x54,
		},
		// '+' 0x2B -> 62 (+19), digits -> +4, 'A'-'Z' -> -65, 'a'-'z' -> -71
		shift: [16]byte{
			0x00, 0x00, 0x13, 0x04, 0xBF, 0xBF, 0xB9, 0xB9,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		},
		special:      '/', // 0x2F -> 63 (+16), shares the '+' high nibble
		specialShift: 0x10,
	},
	accelURLSafe: {
		mask: [16]byte{
			0xA8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8,
			0xF8, 0xF8, 0xF0, 0x50, 0x50, 0x54, 0x50, 0x70,
		},
		// '-' 0x2D -> 62 (+17), digits -> +4, 'A'-'Z' -> -65, 'a'-'z' -> -71
		shift: [16]byte{
			0x00, 0x00, 0x11, 0x04, 0xBF, 0xBF, 0xB9, 0xB9,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		},
		special:      '_', // 0x5F -> 63 (-32), shares the 'P'-'Z' high nibble
		specialShift: 0xE0,
	},
	accelCrypt: {
		mask: [16]byte{
			0xA8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8, 0xF8,
			0xF8, 0xF8, 0xF0, 0x50, 0x50, 0x50, 0x54, 0x54,
		},
		// './' -> -46, digits -> -46, 'A'-'Z' -> -53, 'a'-'z' -> -59
		shift: [16]byte{
			0x00, 0x00, 0xD2, 0xD2, 0xCB, 0xCB, 0xC5, 0xC5,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		},
	},
}
