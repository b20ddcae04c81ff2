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
	"io"
)

// Decoder is an io.Reader that base64-decodes the underlying reader's
// stream. Padding is honored only at the true end of the stream; anywhere
// else the padding byte fails alphabet membership. Decode errors are wrapped
// but keep their identity for errors.Is, and are sticky: once one is
// returned the decoder returns it forever.
type Decoder struct {
	cfg    Config
	r      io.Reader
	buf    [1024]byte
	pos    int
	end    int
	eof    bool
	stash  [3]byte
	nstash int
	err    error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(cfg Config, r io.Reader) *Decoder {
	cfg.check()
	return &Decoder{cfg: cfg, r: r}
}

// Read decodes into p. Unless p is empty it returns at least one byte or an
// error; (0, io.EOF) means the stream was fully decoded.
func (d *Decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if d.nstash > 0 {
		n := copy(p, d.stash[:d.nstash])
		copy(d.stash[:], d.stash[n:d.nstash])
		d.nstash -= n
		return n, nil
	}
	if d.err != nil {
		return 0, d.err
	}
	n, err := d.decode(p)
	if err != nil && n > 0 {
		// Deliver the bytes now, the sticky error on the next call.
		return n, nil
	}
	return n, err
}

func (d *Decoder) decode(p []byte) (int, error) {
	// Buffer until a complete chunk is on hand or the source is exhausted.
	// A source error is held back while complete chunks remain decodable;
	// it is not sticky, so a transient source can be read again.
	var srcErr error
	for !d.eof && d.decodableEnd()-d.pos < 4 {
		if err := d.fill(); err != nil {
			srcErr = err
			break
		}
	}
	data := d.buf[d.pos:d.decodableEnd()]

	if srcErr != nil && len(data) < 4 {
		return 0, srcErr
	}

	if d.eof && len(data) < 4 {
		var tmp [2]byte
		k, err := decodePartialTail(d.cfg, data, tmp[:])
		d.pos += len(data)
		n := copy(p, tmp[:k])
		d.nstash = copy(d.stash[:], tmp[n:k])
		if err != nil {
			d.err = fmt.Errorf("radix64: %w", err)
		} else {
			d.err = io.EOF
		}
		return n, d.err
	}

	nSrc, nDst, err := decodeFullChunks(d.cfg, data, p)
	d.pos += nSrc
	if err != nil {
		d.err = fmt.Errorf("radix64: %w", err)
		return nDst, d.err
	}
	if nDst == 0 {
		// p is shorter than one decoded chunk: go through the stash.
		var tmp [3]byte
		if err := decodeChunk(d.cfg, data, tmp[:]); err != nil {
			d.err = fmt.Errorf("radix64: %w", err)
			return 0, d.err
		}
		d.pos += 4
		nDst = copy(p, tmp[:])
		d.nstash = copy(d.stash[:], tmp[nDst:])
	}
	return nDst, nil
}

// decodableEnd bounds the bytes safe to decode now. Before the source is
// exhausted, up to 2 trailing padding bytes are withheld: they are valid if
// the stream ends here and invalid if more follows, so they wait for the
// next fill to settle it.
func (d *Decoder) decodableEnd() int {
	if d.eof || !d.cfg.hasPad {
		return d.end
	}
	end := d.end
	for i := 0; i < 2 && end > d.pos && d.buf[end-1] == d.cfg.pad; i++ {
		end--
	}
	return end
}

// Number of zero-byte, nil-error reads tolerated from the source before
// giving up, as in bufio.
const maxConsecutiveEmptyReads = 100

// fill compacts the buffer and reads more input. On end of input it marks
// the stream exhausted and strips trailing padding.
func (d *Decoder) fill() error {
	if d.pos > 0 {
		copy(d.buf[:], d.buf[d.pos:d.end])
		d.end -= d.pos
		d.pos = 0
	}
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := d.r.Read(d.buf[d.end:])
		d.end += n
		if err == io.EOF {
			d.eof = true
			if d.cfg.hasPad {
				for i := 0; i < 2 && d.end > 0 && d.buf[d.end-1] == d.cfg.pad; i++ {
					d.end--
				}
			}
			return nil
		}
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return io.ErrNoProgress
}
