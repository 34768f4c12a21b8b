package iprobe

import (
	"github.com/brickingsoft/errors"
)

var (
	// ErrUnsupportedPlatform is the cause carried by the report on
	// platforms without a reachable socket subsystem.
	ErrUnsupportedPlatform = errors.Define("platform does not expose a socket subsystem")

	errV6OnlyAlwaysOn = errors.Define("kernel rejects IPV6_V6ONLY=0")
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "iprobe"
)

const (
	errMetaOpKey        = "op"
	errMetaOpSocket     = "socket"
	errMetaOpBind       = "bind"
	errMetaOpWSAStartup = "wsastartup"
)

func newProbeErr(op string, cause error) error {
	return errors.New(
		"probe failed",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithWrap(cause),
	)
}

// Report carries the probed record together with the cause that resolved
// each absent flag to false. A flag that probed true has a nil cause.
type Report struct {
	Capabilities      Capabilities
	IPv4Err           error
	IPv6Err           error
	IPv4MappedIPv6Err error
}

// Diagnose returns the probe record with per-flag causes. It is an
// introspection aid only: the query functions stay infallible, and
// Diagnose never triggers a second probe.
func Diagnose() Report {
	ipStackCaps.Once.Do(ipStackCaps.probe)
	return Report{
		Capabilities:      ipStackCaps.caps,
		IPv4Err:           ipStackCaps.ipv4Err,
		IPv6Err:           ipStackCaps.ipv6Err,
		IPv4MappedIPv6Err: ipStackCaps.ipv4MappedIPv6Err,
	}
}

func (p *ipStackCapabilities) noteTrial(i int, err error) {
	if i == 0 {
		p.ipv6Err = err
	} else {
		p.ipv4MappedIPv6Err = err
	}
}
