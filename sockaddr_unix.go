//go:build unix

package iprobe

import (
	"net"

	"golang.org/x/sys/unix"
)

// tcpAddrToSockaddrInet6 converts a to an AF_INET6 sockaddr. IPv4
// addresses come out in their IPv4-mapped IPv6 form. Zone and flow
// information stay zero, which is all the loopback-only probe needs.
func tcpAddrToSockaddrInet6(a *net.TCPAddr) *unix.SockaddrInet6 {
	sa := &unix.SockaddrInet6{
		Port: a.Port,
	}
	copy(sa.Addr[:], a.IP.To16())
	return sa
}
