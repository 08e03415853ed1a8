package topos

import "Sdntopo/pkg/topo"

// Lab3 is the learning bridge topology.
func Lab3() (*topo.Topology, error) {
	b := newBuilder("lab3")
	b.switches("s1", "s2", "s3", "s4", "s5", "s6")
	b.hosts("h1", "h2", "h3", "h4")
	b.links(
		[2]string{"s1", "h1"},
		[2]string{"s3", "h2"},
		[2]string{"s4", "h3"},
		[2]string{"s6", "h4"},

		[2]string{"s1", "s2"},
		[2]string{"s2", "s3"},
		[2]string{"s2", "s5"},
		[2]string{"s4", "s5"},
		[2]string{"s5", "s6"},
	)
	return b.done()
}

// Lab3Demo is the larger nine-switch variant used for the demo.
func Lab3Demo() (*topo.Topology, error) {
	b := newBuilder("lab3-demo")
	b.switches("s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9")
	b.hosts("h1", "h2", "h3", "h4")
	b.links(
		[2]string{"s1", "h1"},
		[2]string{"s3", "h2"},
		[2]string{"s7", "h3"},
		[2]string{"s9", "h4"},

		[2]string{"s1", "s2"},
		[2]string{"s2", "s3"},
		[2]string{"s2", "s5"},
		[2]string{"s4", "s5"},
		[2]string{"s5", "s6"},
		[2]string{"s5", "s8"},
		[2]string{"s7", "s8"},
		[2]string{"s8", "s9"},
	)
	return b.done()
}
