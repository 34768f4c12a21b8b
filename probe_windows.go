//go:build windows

package iprobe

import (
	"net"
	"os"

	"golang.org/x/sys/windows"
)

func (p *ipStackCapabilities) probe() {
	var data windows.WSAData
	if startupErr := windows.WSAStartup(uint32(0x202), &data); startupErr != nil {
		err := newProbeErr(errMetaOpWSAStartup, os.NewSyscallError("wsastartup", startupErr))
		p.ipv4Err = err
		p.ipv6Err = err
		p.ipv4MappedIPv6Err = err
		return
	}
	defer func() {
		_ = windows.WSACleanup()
	}()

	s, err := sysSocket(windows.AF_INET, windows.SOCK_STREAM, windows.IPPROTO_TCP)
	if err == nil {
		_ = windows.Closesocket(s)
		p.caps.ipv4Enabled = true
	} else {
		p.ipv4Err = newProbeErr(errMetaOpSocket, err)
	}
	var probes = []struct {
		laddr net.TCPAddr
		value int
	}{
		// IPv6 communication capability
		{laddr: net.TCPAddr{IP: net.ParseIP("::1")}, value: 1},
		// IPv4-mapped IPv6 address communication capability
		{laddr: net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}, value: 0},
	}
	for i := range probes {
		s, err = sysSocket(windows.AF_INET6, windows.SOCK_STREAM, windows.IPPROTO_TCP)
		if err != nil {
			p.noteTrial(i, newProbeErr(errMetaOpSocket, err))
			continue
		}
		defer windows.Closesocket(s)
		// best-effort, dual-stack may be disabled by policy
		_ = windows.SetsockoptInt(s, windows.IPPROTO_IPV6, windows.IPV6_V6ONLY, probes[i].value)
		sa := tcpAddrToSockaddrInet6(&probes[i].laddr)
		if bindErr := windows.Bind(s, sa); bindErr != nil {
			p.noteTrial(i, newProbeErr(errMetaOpBind, os.NewSyscallError("bind", bindErr)))
			continue
		}
		if i == 0 {
			p.caps.ipv6Enabled = true
		} else {
			p.caps.ipv4MappedIPv6Enabled = true
		}
	}
}
