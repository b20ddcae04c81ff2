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
	"fmt"
	"testing"
)

var benchSizes = []int{3, 32, 128, 8192}

func BenchmarkEncode(b *testing.B) {
	for _, n := range benchSizes {
		data := testPattern(n)
		dst := make([]byte, Std.EncodedLen(n))
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Std.EncodeSlice(data, dst)
			}
		})
	}
}

func BenchmarkEncodeScalar(b *testing.B) {
	for _, n := range benchSizes {
		data := testPattern(n)
		dst := make([]byte, Std.EncodedLen(n))
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			atLevel(DispatchScalar, func() {
				for i := 0; i < b.N; i++ {
					Std.EncodeSlice(data, dst)
				}
			})
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, n := range benchSizes {
		encoded := []byte(Std.Encode(testPattern(n)))
		dst := make([]byte, Std.MaxDecodedLen(len(encoded)))
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				if _, err := Std.DecodeSlice(encoded, dst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecodeScalar(b *testing.B) {
	for _, n := range benchSizes {
		encoded := []byte(Std.Encode(testPattern(n)))
		dst := make([]byte, Std.MaxDecodedLen(len(encoded)))
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			atLevel(DispatchScalar, func() {
				for i := 0; i < b.N; i++ {
					if _, err := Std.DecodeSlice(encoded, dst); err != nil {
						b.Fatal(err)
					}
				}
			})
		})
	}
}
