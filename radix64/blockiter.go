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

// blockIter walks an input and an output buffer in lockstep. Each step yields
// an inChunk-byte view of the input and an outChunk-byte view of the output,
// then advances by the (possibly smaller) strides. Chunk sizes larger than
// strides let a block engine read or write a little past the bytes it
// logically consumes, as long as the slack still lies inside the buffers.
//
// The number of steps is fixed at construction: the largest count such that
// every yielded view is in bounds for both buffers. The tails left over are
// available through remaining.
type blockIter struct {
	in, out             []byte
	inChunk, inStride   int
	outChunk, outStride int
	inIdx, outIdx       int
	inEnd               int
}

func newBlockIter(in, out []byte, inChunk, inStride, outChunk, outStride int) *blockIter {
	inSteps := 0
	if len(in) >= inChunk {
		inSteps = (len(in)-inChunk)/inStride + 1
	}
	outSteps := 0
	if len(out) >= outChunk {
		outSteps = (len(out)-outChunk)/outStride + 1
	}
	steps := min(inSteps, outSteps)
	return &blockIter{
		in: in, out: out,
		inChunk: inChunk, inStride: inStride,
		outChunk: outChunk, outStride: outStride,
		inEnd: steps * inStride,
	}
}

// next yields the next pair of chunk views. ok is false once every step has
// been taken.
func (it *blockIter) next() (in, out []byte, ok bool) {
	if it.inIdx >= it.inEnd {
		return nil, nil, false
	}
	in = it.in[it.inIdx : it.inIdx+it.inChunk]
	out = it.out[it.outIdx : it.outIdx+it.outChunk]
	it.inIdx += it.inStride
	it.outIdx += it.outStride
	return in, out, true
}

// back rewinds one step, so the chunks most recently yielded by next are
// reported as unprocessed by remaining. Used when a block fails validation
// and its bytes must be re-examined by a more precise path.
func (it *blockIter) back() {
	if it.inIdx > 0 {
		it.inIdx -= it.inStride
		it.outIdx -= it.outStride
	}
}

// remaining returns the tails past the last stride taken.
func (it *blockIter) remaining() (in, out []byte) {
	return it.in[it.inIdx:], it.out[it.outIdx:]
}
