//go:build unix && !linux

package iprobe

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func sysSocket(family int, sotype int, protocol int) (int, error) {
	syscall.ForkLock.RLock()
	s, err := unix.Socket(family, sotype, protocol)
	if err == nil {
		unix.CloseOnExec(s)
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return -1, os.NewSyscallError("socket", err)
	}
	return s, nil
}
