//go:build unix || windows

package iprobe

import (
	"net"
	"syscall"
)

// FavoriteAddrFamily returns the appropriate address family for the
// given network, laddr, raddr and mode, based on the probed
// capabilities.
//
// If mode indicates "listen" and laddr is a wildcard, it assumes the
// caller wants a passive-open socket reachable over both address
// families: when the platform supports both IPv6 and IPv4-mapped IPv6
// communication capabilities, or does not support IPv4 at all, it picks
// a dual stack listen, AF_INET6 with IPV6_V6ONLY=0. Otherwise it
// prefers an IPv4-only, AF_INET, wildcard address listen.
func FavoriteAddrFamily(network string, laddr, raddr net.Addr, mode string) (family int, ipv6only bool) {
	switch network {
	case "unix", "unixgram", "unixpacket":
		family = syscall.AF_UNIX
		return
	default:
		break
	}
	switch network[len(network)-1] {
	case '4':
		return syscall.AF_INET, false
	case '6':
		return syscall.AF_INET6, true
	}

	if mode == "listen" && (laddr == nil || IsWildcard(laddr)) {
		if IPv4MappedIPv6() || !IPv4() {
			return syscall.AF_INET6, false
		}
		if laddr == nil {
			return syscall.AF_INET, false
		}
		return addrFamily(laddr), false
	}

	if (laddr == nil || addrFamily(laddr) == syscall.AF_INET) &&
		(raddr == nil || addrFamily(raddr) == syscall.AF_INET) {
		return syscall.AF_INET, false
	}
	return syscall.AF_INET6, false
}

// IsWildcard reports whether addr holds no IP or the unspecified
// address of its family.
func IsWildcard(addr net.Addr) bool {
	if addr == nil {
		return true
	}
	switch a := addr.(type) {
	case *net.TCPAddr:
		if a.IP == nil {
			return true
		}
		return a.IP.IsUnspecified()
	case *net.UDPAddr:
		if a.IP == nil {
			return true
		}
		return a.IP.IsUnspecified()
	case *net.IPAddr:
		if a.IP == nil {
			return true
		}
		return a.IP.IsUnspecified()
	default:
		return false
	}
}

func addrFamily(addr net.Addr) int {
	switch a := addr.(type) {
	case *net.TCPAddr:
		if a == nil || len(a.IP) <= net.IPv4len {
			return syscall.AF_INET
		}
		if a.IP.To4() != nil {
			return syscall.AF_INET
		}
		return syscall.AF_INET6
	case *net.UDPAddr:
		if a == nil || len(a.IP) <= net.IPv4len {
			return syscall.AF_INET
		}
		if a.IP.To4() != nil {
			return syscall.AF_INET
		}
		return syscall.AF_INET6
	case *net.UnixAddr:
		return syscall.AF_UNIX
	case *net.IPAddr:
		if a == nil || len(a.IP) <= net.IPv4len {
			return syscall.AF_INET
		}
		if a.IP.To4() != nil {
			return syscall.AF_INET
		}
		return syscall.AF_INET6
	default:
		return syscall.AF_UNSPEC
	}
}
