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
	"strings"
)

// Display defers base64 encoding of a byte slice until it is formatted,
// using a fixed-size intermediate buffer instead of materializing the whole
// encoding. The output is identical to Encode on the same configuration.
type Display struct {
	cfg  Config
	data []byte
}

// NewDisplay wraps data for fmt formatting. The data is not copied; it must
// not change before formatting.
func NewDisplay(cfg Config, data []byte) Display {
	cfg.check()
	return Display{cfg: cfg, data: data}
}

// String returns the base64 encoding of the wrapped data.
func (d Display) String() string {
	var sb strings.Builder
	sb.Grow(d.cfg.EncodedLen(len(d.data)))
	d.encodeTo(&sb)
	return sb.String()
}

// Format implements fmt.Formatter for the %s, %v and %q verbs.
func (d Display) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		d.encodeTo(f)
	case 'q':
		fmt.Fprintf(f, "%q", d.String())
	default:
		fmt.Fprintf(f, "%%!%c(radix64.Display)", verb)
	}
}

func (d Display) encodeTo(w io.Writer) error {
	var buf [1024]byte
	src := d.data
	for {
		nSrc, nDst := encodeFullChunks(d.cfg, src, buf[:])
		src = src[nSrc:]
		done := false
		if len(src) < 3 && len(buf)-nDst >= 4 {
			nDst += encodePartialChunk(d.cfg, src, buf[nDst:])
			done = true
		}
		if _, err := w.Write(buf[:nDst]); err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
