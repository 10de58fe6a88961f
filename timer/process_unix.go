//go:build !windows

package timer

import (
	"syscall"
)

// detached starts the timer in its own session so it survives the
// terminal that launched it.
func detached() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

func terminate(pid int) error {
	return syscall.Kill(pid, syscall.SIGTERM)
}
