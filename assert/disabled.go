//go:build assertions_disabled

package assert

// True is a no-op when built with the assertions_disabled tag.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when built with the assertions_disabled tag.
func False(value bool, args ...any) {
	// Intentionally left blank
}
