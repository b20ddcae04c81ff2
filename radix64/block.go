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

// Minimum input sizes below which the block engines are not worth entering
// and the chunk codec handles everything.
const (
	blockEncodeThreshold = 28
	blockDecodeThreshold = 32
)

// Lane-parallel helpers treating a uint64 as eight independent byte lanes.
const (
	lanes01 uint64 = 0x0101010101010101
	lanes80 uint64 = 0x8080808080808080
)

// lanesOf broadcasts b into every lane.
func lanesOf(b byte) uint64 {
	return uint64(b) * lanes01
}

// laneGE returns a per-lane mask: 0xFF where the lane is >= k, 0x00 where it
// is not. Both the lanes of x and k must be below 128.
func laneGE(x uint64, k byte) uint64 {
	m := (x + uint64(128-int(k))*lanes01) & lanes80
	return (m >> 7) * 0xFF
}

// laneSelect picks a where the mask lane is set and b where it is clear.
// The mask must hold 0xFF or 0x00 per lane.
func laneSelect(mask, a, b uint64) uint64 {
	return a&mask | b&^mask
}

// laneAdd adds the lanes of a and b without carry between lanes.
func laneAdd(a, b uint64) uint64 {
	return ((a &^ lanes80) + (b &^ lanes80)) ^ ((a ^ b) & lanes80)
}

// spreadSextets redistributes the top 48 bits of v, four 3-byte groups, into
// eight byte lanes each holding one 6-bit value, most significant group
// first. The inverse of packSextets.
func spreadSextets(v uint64) uint64 {
	v >>= 16
	v = (v&0x0000FFF000000000)<<12 |
		(v&0x0000000FFF000000)<<8 |
		(v&0x0000000000FFF000)<<4 |
		v&0x0000000000000FFF
	return v<<2&0x3F003F003F003F00 | v&0x003F003F003F003F
}

// packSextets gathers eight 6-bit byte lanes back into a 48-bit value in the
// low bits of the result, most significant lane first.
func packSextets(x uint64) uint64 {
	x = (x&0x3F003F003F003F00)>>2 | x&0x003F003F003F003F
	return (x&0x0FFF000000000000)>>12 |
		(x&0x00000FFF00000000)>>8 |
		(x&0x000000000FFF0000)>>4 |
		x&0x0000000000000FFF
}
