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
	"io"
)

var errEncoderClosed = errors.New("radix64: write to closed encoder")

// Encoder is an io.WriteCloser that base64-encodes everything written to it
// and forwards the encoded bytes to the underlying writer. Output is
// buffered; Close encodes any pending partial chunk (with padding, when the
// configuration uses it) and flushes.
//
// A sink error never discards buffered state: the failed call can simply be
// retried, including Close.
type Encoder struct {
	cfg    Config
	w      io.Writer
	out    [1024]byte
	nout   int
	in     [3]byte
	nin    int
	closed bool
}

// NewEncoder returns an encoder writing to w. The caller must Close it to
// flush the final partial chunk.
func NewEncoder(cfg Config, w io.Writer) *Encoder {
	cfg.check()
	return &Encoder{cfg: cfg, w: w}
}

// Write encodes p. It returns the number of input bytes consumed; on a sink
// error the unconsumed suffix of p can be written again later.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, errEncoderClosed
	}
	var n int

	// Complete a pending partial chunk first.
	if e.nin > 0 {
		k := copy(e.in[e.nin:3], p)
		e.nin += k
		n += k
		p = p[k:]
		if e.nin < 3 {
			return n, nil
		}
		if err := e.room(4); err != nil {
			return n, err
		}
		encodeChunk(e.cfg, e.in[:], e.out[e.nout:])
		e.nout += 4
		e.nin = 0
	}

	// Bulk-encode complete chunks straight out of p.
	for len(p) >= 3 {
		if err := e.room(4); err != nil {
			return n, err
		}
		nSrc, nDst := encodeFullChunks(e.cfg, p, e.out[e.nout:])
		e.nout += nDst
		n += nSrc
		p = p[nSrc:]
	}

	// Stash the sub-chunk tail until more input or Close arrives.
	e.nin = copy(e.in[:], p)
	n += e.nin
	return n, nil
}

// Flush forwards all buffered encoded bytes to the underlying writer. It
// never encodes a pending partial chunk; only Close does that.
func (e *Encoder) Flush() error {
	return e.drain(e.nout)
}

// Close encodes the pending partial chunk, flushes, and marks the encoder
// closed. On error nothing is lost and Close can be called again; after it
// succeeds further calls return nil and further writes fail.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	if e.nin > 0 {
		if err := e.room(4); err != nil {
			return err
		}
		e.nout += encodePartialChunk(e.cfg, e.in[:e.nin], e.out[e.nout:])
		e.nin = 0
	}
	if err := e.drain(e.nout); err != nil {
		return err
	}
	e.closed = true
	return nil
}

// room drains until at least need bytes of output buffer are free.
func (e *Encoder) room(need int) error {
	if len(e.out)-e.nout >= need {
		return nil
	}
	return e.drain(e.nout + need - len(e.out))
}

// drain writes buffered output to the sink until at least min bytes are
// gone, compacting whatever was accepted even when the sink fails.
func (e *Encoder) drain(min int) error {
	var k int
	for k < min {
		m, err := e.w.Write(e.out[k:e.nout])
		k += m
		if err != nil {
			e.consume(k)
			return err
		}
		if m == 0 {
			e.consume(k)
			return io.ErrShortWrite
		}
	}
	e.consume(k)
	return nil
}

func (e *Encoder) consume(k int) {
	copy(e.out[:], e.out[k:e.nout])
	e.nout -= k
}
