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
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderBasic(t *testing.T) {
	dec := NewDecoder(Std, strings.NewReader("bXkgbWVzc2FnZQ=="))
	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, []byte("my message"), got)
}

func TestDecoderRoundtrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 100, 767, 768, 769, 5000} {
		data := testPattern(n)
		dec := NewDecoder(Std, strings.NewReader(Std.Encode(data)))
		got, err := io.ReadAll(dec)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, data, got, "n=%d", n)
	}
}

func TestDecoderSmallDestination(t *testing.T) {
	data := testPattern(100)
	for size := 1; size <= 5; size++ {
		dec := NewDecoder(Std, strings.NewReader(Std.Encode(data)))
		var got []byte
		buf := make([]byte, size)
		for {
			n, err := dec.Read(buf)
			got = append(got, buf[:n]...)
			if err == io.EOF {
				break
			}
			require.NoError(t, err, "size=%d", size)
		}
		require.Equal(t, data, got, "size=%d", size)
	}
}

func TestDecoderOneByteSource(t *testing.T) {
	data := testPattern(70)
	src := iotest.OneByteReader(strings.NewReader(Std.Encode(data)))
	got, err := io.ReadAll(NewDecoder(Std, src))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDecoderDataErrSource(t *testing.T) {
	// Sources that return io.EOF together with the final bytes.
	data := testPattern(70)
	src := iotest.DataErrReader(strings.NewReader(Std.Encode(data)))
	got, err := io.ReadAll(NewDecoder(Std, src))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDecoderEmptyDestination(t *testing.T) {
	dec := NewDecoder(Std, strings.NewReader("Zm9v"))
	n, err := dec.Read(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, []byte("foo"), got)
}

func TestDecoderPaddingAtStreamEnd(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TQ==", "M"},
		{"TQ=", "M"},
		{"TQ", "M"},
		{"Zm9vYg==", "foob"},
	}
	for _, tc := range tests {
		got, err := io.ReadAll(NewDecoder(Std, strings.NewReader(tc.in)))
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, string(got), "input %q", tc.in)
	}
}

func TestDecoderMidStreamPadding(t *testing.T) {
	dec := NewDecoder(Std, strings.NewReader("TQ==TQ=="))
	_, err := io.ReadAll(dec)
	require.Error(t, err)
	var ibe InvalidByteError
	require.True(t, errors.As(err, &ibe))
	assert.Equal(t, byte('='), byte(ibe))
}

func TestDecoderErrorIdentity(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"AAAAA", ErrInvalidLength},
		{"AAAA\xff", ErrInvalidLength},
		{"AAAAiYX=", ErrInvalidTrailingBits},
	}
	for _, tc := range tests {
		_, err := io.ReadAll(NewDecoder(Std, strings.NewReader(tc.in)))
		assert.ErrorIs(t, err, tc.want, "input %q", tc.in)
	}
}

func TestDecoderErrorSticky(t *testing.T) {
	dec := NewDecoder(Std, strings.NewReader("Zm9v!!!!"))
	buf := make([]byte, 16)
	var firstErr error
	for i := 0; i < 4; i++ {
		_, err := dec.Read(buf)
		if err != nil {
			firstErr = err
			break
		}
	}
	require.Error(t, firstErr)

	_, err := dec.Read(buf)
	assert.Equal(t, firstErr, err)
	_, err = dec.Read(buf)
	assert.Equal(t, firstErr, err)
}

func TestDecoderDeliversBytesBeforeError(t *testing.T) {
	// The valid prefix must come out even though the stream ends invalid.
	dec := NewDecoder(Std, strings.NewReader("Zm9vYmFy!!!!"))
	got := make([]byte, 0, 8)
	buf := make([]byte, 16)
	var err error
	for {
		var n int
		n, err = dec.Read(buf)
		got = append(got, buf[:n]...)
		if err != nil {
			break
		}
	}
	assert.NotEqual(t, io.EOF, err)
	assert.Equal(t, "foobar", string(got))
}

func TestDecoderSourceErrorPassesThrough(t *testing.T) {
	srcErr := errors.New("source failed")
	dec := NewDecoder(Std, io.MultiReader(
		strings.NewReader("Zm9v"),
		iotest.ErrReader(srcErr),
	))
	buf := make([]byte, 2)
	// "Zm9v" decodes through the stash in 2-byte reads before the source
	// error surfaces.
	n, err := dec.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var got []byte
	got = append(got, buf[:n]...)
	for {
		n, err = dec.Read(buf)
		got = append(got, buf[:n]...)
		if err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, srcErr)
	assert.Equal(t, "foo", string(got))
}

// stalledReader returns (0, nil) forever.
type stalledReader struct{}

func (stalledReader) Read([]byte) (int, error) { return 0, nil }

func TestDecoderStalledSource(t *testing.T) {
	dec := NewDecoder(Std, stalledReader{})
	buf := make([]byte, 8)
	_, err := dec.Read(buf)
	assert.ErrorIs(t, err, io.ErrNoProgress)
}

func TestDecoderLargeStream(t *testing.T) {
	data := testPattern(1 << 16)
	var encoded bytes.Buffer
	enc := NewEncoder(URLSafe, &encoded)
	_, err := enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	got, err := io.ReadAll(NewDecoder(URLSafe, &encoded))
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, got))
}
