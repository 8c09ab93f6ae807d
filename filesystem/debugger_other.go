//go:build !linux

package filesystem

// debuggerAttached always reports false on platforms without a procfs-based
// tracer indicator.
func debuggerAttached() bool {
	return false
}
