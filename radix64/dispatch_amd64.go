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

//go:build amd64

package radix64

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentName = "scalar"
		return
	}

	// SSE2 is part of the x86-64 baseline, so the wide path is always
	// available here; AVX2 only changes the reported tier.
	if cpu.X86.HasAVX2 {
		currentLevel = DispatchAVX2
		currentName = "avx2"
	} else {
		currentLevel = DispatchSSE2
		currentName = "sse2"
	}
}
