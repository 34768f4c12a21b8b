//go:build windows

package iprobe

import (
	"os"

	"golang.org/x/sys/windows"
)

func sysSocket(family int, sotype int, protocol int) (windows.Handle, error) {
	s, err := windows.WSASocket(int32(family), int32(sotype), int32(protocol), nil, 0, windows.WSA_FLAG_OVERLAPPED|windows.WSA_FLAG_NO_HANDLE_INHERIT)
	if err != nil {
		return windows.InvalidHandle, os.NewSyscallError("wsasocket", err)
	}
	return s, nil
}
