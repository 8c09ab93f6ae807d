//go:build linux

package filesystem

import (
	"os"
	"strings"
)

// debuggerAttached reports whether a tracer (e.g. delve) is attached to the
// process by inspecting the TracerPid field of /proc/self/status.
func debuggerAttached() bool {
	status, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return false
	}

	for _, line := range strings.Split(string(status), "\n") {
		if pid, found := strings.CutPrefix(line, "TracerPid:"); found {
			return strings.TrimSpace(pid) != "0"
		}
	}

	return false
}
