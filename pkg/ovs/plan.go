package ovs

import (
	"slices"

	"github.com/digitalocean/go-openvswitch/ovs"

	"Sdntopo/api"
	"Sdntopo/pkg/topo"
)

// Plan is the OVS layout derived from a topology: one bridge per switch,
// one port per switch-side link endpoint.
type Plan struct {
	Topology string
	Bridges  []Bridge
	// Skipped holds links with no switch endpoint, which get no port.
	Skipped []api.Link
}

type Bridge struct {
	Name       string
	DatapathID uint64
	Protocols  []string
	Ports      []Port
}

type Port struct {
	Name   string
	Number int
	Type   ovs.InterfaceType
	Peer   string // patch peer interface, patch ports only
	Host   string // attached host, internal ports only
}

func (p Plan) BridgeNames() []string {
	names := make([]string, len(p.Bridges))
	for i, br := range p.Bridges {
		names[i] = br.Name
	}
	return names
}

type PlanOptions struct {
	// Protocols applies to switches that declare none.
	Protocols []string
}

// PlanFor walks switches and links in declaration order, so the same
// topology always yields the same plan.
func PlanFor(t *topo.Topology, opts PlanOptions) Plan {
	p := Plan{Topology: t.Name()}
	index := make(map[string]int)
	for _, sw := range t.Switches() {
		protocols := sw.Switch.Protocols
		if len(protocols) == 0 {
			protocols = slices.Clone(opts.Protocols)
		}
		index[sw.Name] = len(p.Bridges)
		p.Bridges = append(p.Bridges, Bridge{
			Name:       sw.Name,
			DatapathID: sw.EffectiveDatapathID(),
			Protocols:  protocols,
		})
	}

	for _, l := range t.Links() {
		ia, aSwitch := index[l.A.Node]
		ib, bSwitch := index[l.B.Node]
		switch {
		case aSwitch && bSwitch:
			p.Bridges[ia].Ports = append(p.Bridges[ia].Ports, patchPort(l.A, l.B))
			p.Bridges[ib].Ports = append(p.Bridges[ib].Ports, patchPort(l.B, l.A))
		case aSwitch:
			p.Bridges[ia].Ports = append(p.Bridges[ia].Ports, hostPort(l.A, l.B))
		case bSwitch:
			p.Bridges[ib].Ports = append(p.Bridges[ib].Ports, hostPort(l.B, l.A))
		default:
			p.Skipped = append(p.Skipped, l)
		}
	}
	return p
}

func patchPort(local, remote api.Endpoint) Port {
	return Port{
		Name:   local.Interface(),
		Number: local.Port,
		Type:   ovs.InterfaceTypePatch,
		Peer:   remote.Interface(),
	}
}

func hostPort(local, host api.Endpoint) Port {
	return Port{
		Name:   local.Interface(),
		Number: local.Port,
		Type:   ovs.InterfaceTypeInternal,
		Host:   host.Node,
	}
}
