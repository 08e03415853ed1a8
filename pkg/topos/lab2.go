package topos

import (
	"fmt"

	"Sdntopo/pkg/topo"
)

// Lab2Part3 is a full mesh of four switches with hosts on s1 and s2.
func Lab2Part3() (*topo.Topology, error) {
	b := newBuilder("lab2-part3")
	b.switches("s1", "s2", "s3", "s4")
	b.hosts("h1", "h2")
	b.links(
		[2]string{"s1", "h1"},
		[2]string{"s2", "h2"},

		[2]string{"s1", "s2"},
		[2]string{"s1", "s3"},
		[2]string{"s1", "s4"},
		[2]string{"s2", "s3"},
		[2]string{"s2", "s4"},
		[2]string{"s3", "s4"},
	)
	return b.done()
}

// Lab2Part5 puts three addressed hosts on a single switch, used for the
// static flow rule exercise.
func Lab2Part5() (*topo.Topology, error) {
	b := newBuilder("lab2-part5")
	b.switches("s1")
	for i := 1; i <= 3; i++ {
		b.host(fmt.Sprintf("h%d", i),
			topo.WithIP(fmt.Sprintf("192.168.130.%d/27", i)),
			topo.WithMAC(fmt.Sprintf("00:00:00:00:00:%02x", i)),
		)
	}
	b.links(
		[2]string{"s1", "h1"},
		[2]string{"s1", "h2"},
		[2]string{"s1", "h3"},
	)
	return b.done()
}
