package topos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sdntopo/pkg/topo"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name     string
		switches int
		hosts    int
		links    int
		counts   map[string]int
	}{
		{"lab1-part2", 5, 5, 9, map[string]int{"S1": 2, "S2": 5, "S5": 2, "h3": 1}},
		{"lab1-part3", 5, 5, 9, map[string]int{"S2": 5}},
		{"lab2-part3", 4, 2, 8, map[string]int{"s1": 4, "s2": 4, "s3": 3, "s4": 3}},
		{"lab2-part5", 1, 3, 3, map[string]int{"s1": 3}},
		{"lab3", 6, 4, 9, map[string]int{"s2": 3, "s5": 3, "s6": 2}},
		{"lab3-demo", 9, 4, 12, map[string]int{"s5": 4, "s8": 3, "s9": 2}},
	}

	r := topo.NewRegistry()
	require.NoError(t, Register(r))
	assert.Len(t, r.Names(), len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := r.Build(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, tp.Name())
			assert.Len(t, tp.Switches(), tt.switches)
			assert.Len(t, tp.Hosts(), tt.hosts)
			assert.Len(t, tp.Links(), tt.links)
			for node, n := range tt.counts {
				assert.Equal(t, n, tp.LinkCount(node), node)
			}
		})
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	r := topo.NewRegistry()
	require.NoError(t, Register(r))
	var dup *topo.DuplicateTopologyError
	assert.ErrorAs(t, Register(r), &dup)
}

func TestLab1Part2SwitchPorts(t *testing.T) {
	tp, err := Lab1Part2()
	require.NoError(t, err)

	var s2ports []int
	for _, l := range tp.LinksOf("S2") {
		if l.A.Node == "S2" {
			s2ports = append(s2ports, l.A.Port)
		} else {
			s2ports = append(s2ports, l.B.Port)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s2ports)
	for _, h := range tp.Hosts() {
		assert.Nil(t, h.Host.IP, h.Name)
	}
}

func TestLab1Part3Addresses(t *testing.T) {
	tp, err := Lab1Part3()
	require.NoError(t, err)
	want := []string{"192.168.0.1/27", "192.168.0.2/27", "192.168.0.3/27", "192.168.0.4/27", "192.168.0.5/27"}
	for i, h := range tp.Hosts() {
		require.NotNil(t, h.Host.IP)
		assert.Equal(t, want[i], h.Host.IP.String())
		assert.Nil(t, h.Host.MAC)
	}
}

func TestLab2Part5Addresses(t *testing.T) {
	tp, err := Lab2Part5()
	require.NoError(t, err)

	hosts := tp.Hosts()
	require.Len(t, hosts, 3)
	assert.Equal(t, "192.168.130.3/27", hosts[2].Host.IP.String())
	assert.Equal(t, "00:00:00:00:00:03", hosts[2].Host.MAC.String())

	for i, l := range tp.Links() {
		assert.Equal(t, "s1", l.A.Node)
		assert.Equal(t, i+1, l.A.Port)
		assert.Equal(t, hosts[i].Name, l.B.Node)
	}
}

func TestBuilderStopsAtFirstError(t *testing.T) {
	b := newBuilder("bad")
	b.switches("s1", "s1", "s2")
	b.links([2]string{"s1", "s2"})
	_, err := b.done()

	var dup *topo.DuplicateNodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "s1", dup.Name)
	assert.Len(t, b.t.Nodes(), 1)
	assert.Empty(t, b.t.Links())
}
