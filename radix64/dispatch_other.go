//go:build !amd64 && !arm64

package radix64

func init() {
	// Other architectures fall back to the scalar block engine for now.
	currentLevel = DispatchScalar
	currentName = "scalar"
}
