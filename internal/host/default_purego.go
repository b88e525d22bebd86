//go:build purego

package host

// Default returns nil: the purego build has no raw memory capability.
func Default() Host {
	return nil
}

// Available reports whether Default returns a usable Host.
func Available() bool {
	return false
}
