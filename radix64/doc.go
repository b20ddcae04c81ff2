// Package radix64 provides base64 encoding and decoding with runtime CPU
// dispatch between a scalar path and a wide block-processing path.
//
// It follows the same design philosophy as portable SIMD libraries: write
// against one API, run optimally everywhere. Large inputs are processed in
// multi-chunk blocks using lane-parallel arithmetic when the runtime probe
// allows it; everything else runs through a scalar fallback that produces
// byte-identical output and identical errors.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-radix64/radix64"
//
//	encoded := radix64.Std.Encode([]byte("my message"))
//	// encoded == "bXkgbWVzc2FnZQ=="
//
//	decoded, err := radix64.URLSafe.DecodeString("ABCD")
//	// decoded == []byte{0, 16, 131}
//
// Builtin configurations cover the RFC 4648 standard and URL-safe alphabets
// (with and without padding) and the crypt(3) alphabet. Custom alphabets are
// built once and reused:
//
//	cfg, err := radix64.WithAlphabet(myAlphabet).WithPadding('=').Build()
//
// Streaming is available through NewEncoder and NewDecoder, which wrap an
// io.Writer and io.Reader respectively.
package radix64
