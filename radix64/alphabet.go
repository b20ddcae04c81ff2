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

// invalidValue marks a byte that is not part of the alphabet in a decode table.
const invalidValue = 0xFF

// accelKind selects which lane-parallel translation formula the wide block
// engine may use for a configuration. Custom alphabets have no formula and
// always run on the scalar block engine.
type accelKind uint8

const (
	accelNone accelKind = iota
	accelStd
	accelURLSafe
	accelCrypt
)

// Config is a base64 configuration: an alphabet, its inverse lookup table,
// and an optional padding byte. Config values are cheap to copy, immutable,
// and safe for concurrent use. The zero Config is not valid; use one of the
// builtin configurations or build a custom one with WithAlphabet.
type Config struct {
	enc    *[64]byte
	dec    *[256]byte
	pad    byte
	hasPad bool
	accel  accelKind
}

// Builtin configurations.
var (
	// Std is the standard character set (uses `+` and `/`) with `=` padding.
	// See RFC 4648 section 4.
	Std = Config{enc: &stdEncode, dec: &stdDecode, pad: '=', hasPad: true, accel: accelStd}

	// StdNoPad is the standard character set without padding.
	StdNoPad = Config{enc: &stdEncode, dec: &stdDecode, accel: accelStd}

	// URLSafe is the URL safe character set (uses `-` and `_`) with `=` padding.
	// See RFC 4648 section 5.
	URLSafe = Config{enc: &urlSafeEncode, dec: &urlSafeDecode, pad: '=', hasPad: true, accel: accelURLSafe}

	// URLSafeNoPad is the URL safe character set without padding.
	URLSafeNoPad = Config{enc: &urlSafeEncode, dec: &urlSafeDecode, accel: accelURLSafe}

	// Crypt is the crypt(3) character set
	// (`./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz`),
	// without padding.
	Crypt = Config{enc: &cryptEncode, dec: &cryptDecode, accel: accelCrypt}
)

// Padding reports the padding byte of the configuration, if it uses one.
func (c Config) Padding() (byte, bool) {
	return c.pad, c.hasPad
}

// encodeByte maps a sextet (0-63) to its alphabet byte.
func (c Config) encodeByte(s byte) byte {
	return c.enc[s&0x3F]
}

// decodeByte maps an alphabet byte back to its sextet, or invalidValue.
func (c Config) decodeByte(b byte) byte {
	return c.dec[b]
}

func (c Config) check() {
	if c.enc == nil {
		panic("radix64: use of zero Config; use a builtin configuration or WithAlphabet")
	}
}

// Errors reported when building a custom configuration.
var (
	// ErrAlphabetSize indicates the alphabet is not exactly 64 bytes long.
	ErrAlphabetSize = errors.New("base64 alphabet must be exactly 64 bytes")
)

// NonASCIIError reports a non-ASCII byte in a custom alphabet or padding.
type NonASCIIError byte

func (e NonASCIIError) Error() string {
	return fmt.Sprintf("base64 alphabet byte %#02x is not ASCII", byte(e))
}

// DuplicateByteError reports a byte that appears more than once in a custom
// alphabet, or a padding byte that is also an alphabet member.
type DuplicateByteError byte

func (e DuplicateByteError) Error() string {
	return fmt.Sprintf("base64 alphabet byte %q appears more than once", byte(e))
}

// ConfigBuilder constructs custom configurations. Building a Config validates
// the alphabet once; the resulting Config is as cheap to use as a builtin,
// though it always runs on the scalar block engine.
type ConfigBuilder struct {
	alphabet []byte
	pad      byte
	hasPad   bool
}

// WithAlphabet starts a builder for the provided 64-byte alphabet.
// Padding defaults to '='; use NoPadding or WithPadding to change it.
func WithAlphabet(alphabet string) *ConfigBuilder {
	return &ConfigBuilder{alphabet: []byte(alphabet), pad: '=', hasPad: true}
}

// WithPadding sets the padding byte.
func (b *ConfigBuilder) WithPadding(pad byte) *ConfigBuilder {
	b.pad = pad
	b.hasPad = true
	return b
}

// NoPadding disables padding.
func (b *ConfigBuilder) NoPadding() *ConfigBuilder {
	b.pad = 0
	b.hasPad = false
	return b
}

// Build validates the alphabet and returns the configuration. The alphabet
// must be 64 distinct ASCII bytes; the padding byte, if any, must be ASCII
// and must not be a member of the alphabet.
func (b *ConfigBuilder) Build() (Config, error) {
	if len(b.alphabet) != 64 {
		return Config{}, ErrAlphabetSize
	}
	for _, c := range b.alphabet {
		if c >= 0x80 {
			return Config{}, NonASCIIError(c)
		}
	}
	if b.hasPad {
		if b.pad >= 0x80 {
			return Config{}, NonASCIIError(b.pad)
		}
		for _, c := range b.alphabet {
			if c == b.pad {
				return Config{}, DuplicateByteError(c)
			}
		}
	}
	enc := new([64]byte)
	dec := new([256]byte)
	for i := range dec {
		dec[i] = invalidValue
	}
	for i, c := range b.alphabet {
		if dec[c] != invalidValue {
			return Config{}, DuplicateByteError(c)
		}
		dec[c] = byte(i)
		enc[i] = c
	}
	return Config{enc: enc, dec: dec, pad: b.pad, hasPad: b.hasPad, accel: accelNone}, nil
}

// MustBuild is like Build but panics on an invalid alphabet. It is intended
// for static initialization of package-level configurations.
func (b *ConfigBuilder) MustBuild() Config {
	cfg, err := b.Build()
	if err != nil {
		panic("radix64: " + err.Error())
	}
	return cfg
}
