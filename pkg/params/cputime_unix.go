//go:build unix

package params

import (
	"syscall"
	"time"
)

const cpuTimeSupported = true

// CPUTime returns the process CPU time consumed so far (user plus system).
// The second return is false when the platform cannot measure it.
func CPUTime() (time.Duration, bool) {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), true
}
