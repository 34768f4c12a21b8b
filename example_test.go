//go:build unix || windows

package iprobe_test

import (
	"fmt"

	"github.com/brickingsoft/iprobe"
)

func Example() {
	caps := iprobe.Probe()
	fmt.Println("ipv4 enabled:", caps.IPv4())
	fmt.Println("ipv6 enabled:", caps.IPv6())
	fmt.Println("ipv4 mapped ipv6 enabled:", caps.IPv4MappedIPv6())
}

func ExampleFavoriteAddrFamily() {
	family, ipv6only := iprobe.FavoriteAddrFamily("tcp", nil, nil, "listen")
	fmt.Println("wildcard listen family:", family, "ipv6only:", ipv6only)
}
