package iprobe_test

import (
	"context"
	"testing"

	"github.com/brickingsoft/iprobe"
	"github.com/brickingsoft/rxp"
)

func TestProbe(t *testing.T) {
	caps := iprobe.Probe()
	t.Log("ipv4:", caps.IPv4())
	t.Log("ipv6:", caps.IPv6())
	t.Log("ipv4 mapped ipv6:", caps.IPv4MappedIPv6())
	if !caps.IPv4() {
		t.Error("ipv4 must be enabled on the test host")
	}
}

func TestProbeIdempotent(t *testing.T) {
	first := iprobe.Probe()
	for i := 0; i < 8; i++ {
		next := iprobe.Probe()
		if next != first {
			t.Fatal("probe records differ:", first, next)
		}
	}
}

func TestQueriesMatchRecord(t *testing.T) {
	caps := iprobe.Probe()
	if iprobe.IPv4() != caps.IPv4() {
		t.Error("IPv4 query does not match record")
	}
	if iprobe.IPv6() != caps.IPv6() {
		t.Error("IPv6 query does not match record")
	}
	if iprobe.IPv4MappedIPv6() != caps.IPv4MappedIPv6() {
		t.Error("IPv4MappedIPv6 query does not match record")
	}
}

func TestProbeConcurrent(t *testing.T) {
	const n = 64
	ctx := context.Background()
	executors := rxp.New()
	results := make(chan iprobe.Capabilities, n)
	for i := 0; i < n; i++ {
		err := executors.Execute(ctx, func() {
			results <- iprobe.Probe()
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	first := iprobe.Probe()
	for i := 0; i < n; i++ {
		caps := <-results
		if caps != first {
			t.Fatal("concurrent callers observed different records:", first, caps)
		}
	}
	if err := executors.CloseGracefully(); err != nil {
		t.Error(err)
	}
}
