//go:build !purego

package host

// Default returns the host capability for this build.
func Default() Host {
	return Native{}
}

// Available reports whether Default returns a usable Host.
func Available() bool {
	return true
}
