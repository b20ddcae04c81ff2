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
	"bytes"
	"testing"
)

func FuzzRoundtrip(f *testing.F) {
	f.Add([]byte("my message"))
	f.Add([]byte{})
	f.Add([]byte{0xFF, 0x00, 0x80})
	f.Add(testPattern(97))

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, cfg := range []Config{Std, StdNoPad, URLSafe, URLSafeNoPad, Crypt} {
			encoded := cfg.Encode(data)
			decoded, err := cfg.DecodeString(encoded)
			if err != nil {
				t.Fatalf("decode of own encoding failed: %v", err)
			}
			if !bytes.Equal(data, decoded) {
				t.Fatalf("roundtrip mismatch: %x -> %q -> %x", data, encoded, decoded)
			}
		}
	})
}

// Anything that decodes must re-encode to the original input, modulo the
// optional padding the decoder accepts.
func FuzzDecodeReencode(f *testing.F) {
	f.Add([]byte("bXkgbWVzc2FnZQ=="))
	f.Add([]byte("ABCD"))
	f.Add([]byte("TQ"))
	f.Add([]byte("!!!!"))

	f.Fuzz(func(t *testing.T, in []byte) {
		decoded, err := Std.Decode(in)
		if err != nil {
			return
		}
		reencoded := Std.Encode(decoded)
		unpadded := bytes.TrimRight(in, "=")
		if got := bytes.TrimRight([]byte(reencoded), "="); !bytes.Equal(got, unpadded) {
			t.Fatalf("re-encode mismatch: %q -> %x -> %q", in, decoded, reencoded)
		}
	})
}

// The two decode paths must agree on every input, valid or not.
func FuzzPathEquivalence(f *testing.F) {
	f.Add([]byte("bXkgbWVzc2FnZQ=="))
	f.Add(bytes.Repeat([]byte("ABCD"), 20))
	f.Add([]byte("AAAA....AAAA....AAAAAAAAAAAAAAAA"))

	f.Fuzz(func(t *testing.T, in []byte) {
		var scalarDec, wideDec []byte
		var scalarErr, wideErr error
		atLevel(DispatchScalar, func() { scalarDec, scalarErr = Std.Decode(in) })
		atLevel(DispatchAVX2, func() { wideDec, wideErr = Std.Decode(in) })

		if (scalarErr == nil) != (wideErr == nil) {
			t.Fatalf("error mismatch: scalar %v, wide %v", scalarErr, wideErr)
		}
		if scalarErr != nil {
			if scalarErr.Error() != wideErr.Error() {
				t.Fatalf("errors differ: %v vs %v", scalarErr, wideErr)
			}
			return
		}
		if !bytes.Equal(scalarDec, wideDec) {
			t.Fatalf("outputs differ: %x vs %x", scalarDec, wideDec)
		}
	})
}
