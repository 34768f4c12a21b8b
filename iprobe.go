// Package iprobe determines, once per process, which IP communication
// modes the running system actually supports: plain IPv4, plain IPv6 and
// IPv4-mapped IPv6. Higher level networking code uses the answer to decide
// whether it can always open AF_INET6 sockets and serve IPv4 traffic
// through them, or whether it must keep separate IPv4 and IPv6 socket
// paths.
package iprobe

import (
	"runtime"
	"sync"
)

// Capabilities represents the IP stack communication capabilities of the
// running system. It is a plain value: copyable, comparable and immutable
// once obtained from Probe.
type Capabilities struct {
	ipv4Enabled           bool
	ipv6Enabled           bool
	ipv4MappedIPv6Enabled bool
}

// IPv4 reports whether the platform supports IPv4 networking
// functionality.
func (caps Capabilities) IPv4() bool {
	return caps.ipv4Enabled
}

// IPv6 reports whether the platform supports IPv6 networking
// functionality.
func (caps Capabilities) IPv6() bool {
	return caps.ipv6Enabled
}

// IPv4MappedIPv6 reports whether the platform supports mapping an
// IPv4 address inside an IPv6 address at transport layer
// protocols. See RFC 4291, RFC 4038 and RFC 3493.
func (caps Capabilities) IPv4MappedIPv6() bool {
	switch runtime.GOOS {
	case "dragonfly", "openbsd":
		return false
	}
	return caps.ipv4MappedIPv6Enabled
}

type ipStackCapabilities struct {
	sync.Once         // guards following
	caps              Capabilities
	ipv4Err           error
	ipv6Err           error
	ipv4MappedIPv6Err error
}

var ipStackCaps ipStackCapabilities

// Probe probes IPv4, IPv6 and IPv4-mapped IPv6 communication
// capabilities which are controlled by the IPV6_V6ONLY socket option
// and kernel configuration.
//
// Should we try to use the IPv4 socket interface if we're only
// dealing with IPv4 sockets? As long as the host system understands
// IPv4-mapped IPv6, it's okay to pass IPv4-mapped IPv6 addresses to
// the IPv6 interface. That simplifies our code and is most
// general. Unfortunately, we need to run on kernels built without
// IPv6 support too. So probe the kernel to figure it out.
//
// The probe runs at most once per process. Every call afterwards returns
// the same record, and concurrent first calls all converge on one record.
func Probe() Capabilities {
	ipStackCaps.Once.Do(ipStackCaps.probe)
	return ipStackCaps.caps
}

// IPv4 reports whether the platform supports IPv4 networking
// functionality.
func IPv4() bool {
	return Probe().IPv4()
}

// IPv6 reports whether the platform supports IPv6 networking
// functionality.
func IPv6() bool {
	return Probe().IPv6()
}

// IPv4MappedIPv6 reports whether the platform supports mapping an
// IPv4 address inside an IPv6 address at transport layer
// protocols. See RFC 4291, RFC 4038 and RFC 3493.
func IPv4MappedIPv6() bool {
	return Probe().IPv4MappedIPv6()
}
