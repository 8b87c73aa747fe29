//go:build !unix

package params

import "time"

const cpuTimeSupported = false

// CPUTime returns the process CPU time consumed so far. On platforms
// without rusage support it always reports unsupported.
func CPUTime() (time.Duration, bool) {
	return 0, false
}
