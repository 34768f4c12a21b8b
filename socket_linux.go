//go:build linux

package iprobe

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func sysSocket(family int, sotype int, protocol int) (int, error) {
	s, err := unix.Socket(family, sotype|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, protocol)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, unix.EPROTONOSUPPORT) && !errors.Is(err, unix.EINVAL) {
		return -1, os.NewSyscallError("socket", err)
	}
	// Old kernel without SOCK_NONBLOCK/SOCK_CLOEXEC support.
	syscall.ForkLock.RLock()
	s, err = unix.Socket(family, sotype, protocol)
	if err == nil {
		unix.CloseOnExec(s)
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return -1, os.NewSyscallError("socket", err)
	}
	if err = unix.SetNonblock(s, true); err != nil {
		_ = unix.Close(s)
		return -1, os.NewSyscallError("setnonblock", err)
	}
	return s, nil
}
