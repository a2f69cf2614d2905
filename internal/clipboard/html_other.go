//go:build !windows

package clipboard

// ReadHTML reports absence: the "HTML Format" clipboard flavor is a
// Windows concept. Non-Windows use goes through the plain-text fallback
// or the --input flag.
func (System) ReadHTML() (string, bool) {
	return "", false
}
