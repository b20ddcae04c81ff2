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

// Command b64 is a base64 filter: it encodes or decodes stdin to stdout.
//
//	echo -n "my message" | b64 encode
//	echo -n "bXkgbWVzc2FnZQ==" | b64 decode
//
// The alphabet is selectable (standard, URL safe, crypt, or a custom
// 64-byte one), and -z compresses before encoding and decompresses after
// decoding.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-radix64/radix64"
)

type options struct {
	alphabet string
	custom   string
	noPad    bool
	gzip     bool
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "b64",
		Short:         "base64 encode or decode stdin to stdout",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.alphabet, "alphabet", "a", "std", "alphabet: std, url or crypt")
	root.PersistentFlags().StringVar(&opts.custom, "custom", "", "custom 64-byte alphabet (overrides --alphabet)")
	root.PersistentFlags().BoolVar(&opts.noPad, "no-pad", false, "encode without padding, same as the url/crypt no-pad variants")
	root.PersistentFlags().BoolVarP(&opts.gzip, "gzip", "z", false, "gzip before encoding / gunzip after decoding")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log dispatch level and byte counts to stderr")

	root.AddCommand(newEncodeCmd(opts), newDecodeCmd(opts))
	return root
}

func newEncodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "read raw bytes from stdin, write base64 to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "read base64 from stdin, write raw bytes to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runEncode(opts *options, in io.Reader, out io.Writer) error {
	cfg, log, err := setup(opts)
	if err != nil {
		return err
	}
	defer log.Sync()

	enc := radix64.NewEncoder(cfg, out)
	var sink io.Writer = enc
	var gz *gzip.Writer
	if opts.gzip {
		gz = gzip.NewWriter(enc)
		sink = gz
	}

	n, err := io.Copy(sink, in)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	log.Info("encoded",
		zap.Int64("input_bytes", n),
		zap.String("dispatch", radix64.CurrentName()),
	)
	return nil
}

func runDecode(opts *options, in io.Reader, out io.Writer) error {
	cfg, log, err := setup(opts)
	if err != nil {
		return err
	}
	defer log.Sync()

	var src io.Reader = radix64.NewDecoder(cfg, in)
	if opts.gzip {
		gz, err := gzip.NewReader(src)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	n, err := io.Copy(out, src)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	log.Info("decoded",
		zap.Int64("output_bytes", n),
		zap.String("dispatch", radix64.CurrentName()),
	)
	return nil
}

func setup(opts *options) (radix64.Config, *zap.Logger, error) {
	log := zap.NewNop()
	if opts.verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return radix64.Config{}, nil, err
		}
	}
	cfg, err := configFor(opts)
	if err != nil {
		return radix64.Config{}, nil, err
	}
	return cfg, log, nil
}

func configFor(opts *options) (radix64.Config, error) {
	if opts.custom != "" {
		b := radix64.WithAlphabet(opts.custom)
		if opts.noPad {
			b = b.NoPadding()
		}
		return b.Build()
	}
	switch opts.alphabet {
	case "std":
		if opts.noPad {
			return radix64.StdNoPad, nil
		}
		return radix64.Std, nil
	case "url":
		if opts.noPad {
			return radix64.URLSafeNoPad, nil
		}
		return radix64.URLSafe, nil
	case "crypt":
		return radix64.Crypt, nil
	default:
		return radix64.Config{}, fmt.Errorf("unknown alphabet %q (want std, url or crypt)", opts.alphabet)
	}
}
