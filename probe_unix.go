//go:build unix

package iprobe

import (
	"net"
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

func (p *ipStackCapabilities) probe() {
	s, err := sysSocket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err == nil {
		_ = unix.Close(s)
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
	switch runtime.GOOS {
	case "dragonfly", "openbsd":
		// The latest DragonFly BSD and OpenBSD kernels don't
		// support IPV6_V6ONLY=0. They always return an error
		// and we don't need to probe the capability.
		probes = probes[:1]
		p.ipv4MappedIPv6Err = newProbeErr(errMetaOpBind, errV6OnlyAlwaysOn)
	}
	for i := range probes {
		s, err = sysSocket(unix.AF_INET6, unix.SOCK_STREAM, unix.IPPROTO_TCP)
		if err != nil {
			p.noteTrial(i, newProbeErr(errMetaOpSocket, err))
			continue
		}
		defer unix.Close(s)
		// best-effort, some kernels pin IPV6_V6ONLY
		_ = unix.SetsockoptInt(s, unix.IPPROTO_IPV6, unix.IPV6_V6ONLY, probes[i].value)
		sa := tcpAddrToSockaddrInet6(&probes[i].laddr)
		if bindErr := unix.Bind(s, sa); bindErr != nil {
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
