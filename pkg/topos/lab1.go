package topos

import (
	"fmt"

	"Sdntopo/pkg/topo"
)

// Lab1Part2 is a five-switch tree rooted at S2, with one host per switch.
func Lab1Part2() (*topo.Topology, error) {
	return lab1("lab1-part2", false)
}

// Lab1Part3 is Lab1Part2 with every host on 192.168.0.0/27.
func Lab1Part3() (*topo.Topology, error) {
	return lab1("lab1-part3", true)
}

func lab1(name string, addressed bool) (*topo.Topology, error) {
	b := newBuilder(name)
	b.switches("S1", "S2", "S3", "S4", "S5")
	for i := 1; i <= 5; i++ {
		var opts []topo.HostOption
		if addressed {
			opts = append(opts, topo.WithIP(fmt.Sprintf("192.168.0.%d/27", i)))
		}
		b.host(fmt.Sprintf("h%d", i), opts...)
	}
	b.links(
		[2]string{"S1", "h1"},
		[2]string{"S2", "h2"},
		[2]string{"S3", "h3"},
		[2]string{"S4", "h4"},
		[2]string{"S5", "h5"},

		[2]string{"S1", "S2"},
		[2]string{"S2", "S3"},
		[2]string{"S2", "S4"},
		[2]string{"S2", "S5"},
	)
	return b.done()
}
