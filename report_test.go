package iprobe_test

import (
	"testing"

	"github.com/brickingsoft/iprobe"
)

func TestDiagnose(t *testing.T) {
	report := iprobe.Diagnose()
	caps := iprobe.Probe()
	if report.Capabilities != caps {
		t.Error("report record does not match probe record")
	}
	if caps.IPv4() && report.IPv4Err != nil {
		t.Error("ipv4 probed true but report carries a cause:", report.IPv4Err)
	}
	if !caps.IPv4() && report.IPv4Err == nil {
		t.Error("ipv4 probed false without a cause")
	}
	if caps.IPv6() && report.IPv6Err != nil {
		t.Error("ipv6 probed true but report carries a cause:", report.IPv6Err)
	}
	if !caps.IPv6() && report.IPv6Err == nil {
		t.Error("ipv6 probed false without a cause")
	}
	if caps.IPv4MappedIPv6() && report.IPv4MappedIPv6Err != nil {
		t.Error("ipv4 mapped ipv6 probed true but report carries a cause:", report.IPv4MappedIPv6Err)
	}
	if !caps.IPv4MappedIPv6() && report.IPv4MappedIPv6Err == nil {
		t.Error("ipv4 mapped ipv6 probed false without a cause")
	}
	t.Log("ipv4 cause:", report.IPv4Err)
	t.Log("ipv6 cause:", report.IPv6Err)
	t.Log("ipv4 mapped ipv6 cause:", report.IPv4MappedIPv6Err)
}

func TestDiagnoseIdempotent(t *testing.T) {
	first := iprobe.Diagnose()
	next := iprobe.Diagnose()
	if first != next {
		t.Error("reports differ across calls")
	}
}
