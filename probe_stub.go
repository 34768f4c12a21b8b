//go:build !unix && !windows

package iprobe

// The probing binds need a socket subsystem this library can reach
// through raw syscalls; everywhere else every capability stays false and
// the report says why.
func (p *ipStackCapabilities) probe() {
	err := newProbeErr(errMetaOpSocket, ErrUnsupportedPlatform)
	p.ipv4Err = err
	p.ipv6Err = err
	p.ipv4MappedIPv6Err = err
}
