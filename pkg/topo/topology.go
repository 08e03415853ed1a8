// Package topo builds the declarative switch/host/link graph that an
// emulator instantiates. Construction is additive only: nodes and links
// are appended in declaration order and never removed.
package topo

import (
	"maps"
	"slices"

	"Sdntopo/api"
	"Sdntopo/pkg/util"
)

// Topology is not safe for concurrent use. Build it from one goroutine, then
// hand it off for read-only traversal.
type Topology struct {
	name  string
	nodes map[string]api.Node
	order []string
	links []api.Link

	// ports counts the links touching each node; the next port is ports+1
	ports    map[string]int
	dpids    map[uint64]string // effective datapath id -> switch
	switches int
	hosts    int
}

func New(name string) *Topology {
	return &Topology{
		name:  name,
		nodes: make(map[string]api.Node),
		ports: make(map[string]int),
		dpids: make(map[uint64]string),
	}
}

func (t *Topology) Name() string { return t.name }

// AddSwitch registers a switch and returns its name for use in AddLink.
// Its effective datapath id, explicit or derived from registration order,
// must differ from every other switch's.
func (t *Topology) AddSwitch(name string, opts ...SwitchOption) (string, error) {
	if err := t.checkName(name); err != nil {
		return "", err
	}
	n := api.Node{Name: name, Kind: api.KindSwitch, Index: t.switches + 1}
	for _, opt := range opts {
		opt(&n.Switch)
	}
	dpid := n.EffectiveDatapathID()
	if other, ok := t.dpids[dpid]; ok {
		return "", &DuplicateDatapathIDError{Name: name, Other: other, DatapathID: dpid}
	}
	t.dpids[dpid] = name
	t.switches++
	t.insert(n)
	return name, nil
}

// AddHost registers a host. Omitted addresses stay unset.
func (t *Topology) AddHost(name string, opts ...HostOption) (string, error) {
	if err := t.checkName(name); err != nil {
		return "", err
	}
	var lit hostLiterals
	for _, opt := range opts {
		opt(&lit)
	}

	n := api.Node{Name: name, Kind: api.KindHost, Index: t.hosts + 1}
	if lit.hasIP {
		p, err := util.ParseHostCIDR(lit.ip)
		if err != nil {
			return "", &InvalidAddressError{Node: name, Field: "ip", Value: lit.ip, Err: err}
		}
		n.Host.IP = &p
	}
	if lit.hasMAC {
		mac, err := util.ParseMAC(lit.mac)
		if err != nil {
			return "", &InvalidAddressError{Node: name, Field: "mac", Value: lit.mac, Err: err}
		}
		n.Host.MAC = mac
	}
	t.hosts++
	t.insert(n)
	return name, nil
}

// AddLink connects two registered nodes. Each endpoint gets the next port
// on its node, so the order of AddLink calls decides the wiring.
func (t *Topology) AddLink(a, b string, opts ...LinkOption) (api.Link, error) {
	for _, name := range []string{a, b} {
		if _, ok := t.nodes[name]; !ok {
			return api.Link{}, &UnknownNodeError{Name: name}
		}
	}

	l := api.Link{Index: len(t.links)}
	t.ports[a]++
	l.A = api.Endpoint{Node: a, Port: t.ports[a]}
	t.ports[b]++
	l.B = api.Endpoint{Node: b, Port: t.ports[b]}
	for _, opt := range opts {
		opt(&l.Properties)
	}
	t.links = append(t.links, l)
	return cloneLink(l), nil
}

func (t *Topology) checkName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := t.nodes[name]; ok {
		return &DuplicateNodeError{Name: name}
	}
	return nil
}

func (t *Topology) insert(n api.Node) {
	t.nodes[n.Name] = n
	t.order = append(t.order, n.Name)
}

// Node looks up a node by name.
func (t *Topology) Node(name string) (api.Node, bool) {
	n, ok := t.nodes[name]
	if !ok {
		return api.Node{}, false
	}
	return cloneNode(n), true
}

// Nodes returns every node in declaration order.
func (t *Topology) Nodes() []api.Node {
	return t.filter(func(api.Node) bool { return true })
}

func (t *Topology) Switches() []api.Node {
	return t.filter(api.Node.IsSwitch)
}

func (t *Topology) Hosts() []api.Node {
	return t.filter(api.Node.IsHost)
}

func (t *Topology) filter(keep func(api.Node) bool) []api.Node {
	out := make([]api.Node, 0, len(t.order))
	for _, name := range t.order {
		if n := t.nodes[name]; keep(n) {
			out = append(out, cloneNode(n))
		}
	}
	return out
}

// Links returns every link in declaration order.
func (t *Topology) Links() []api.Link {
	out := make([]api.Link, len(t.links))
	for i, l := range t.links {
		out[i] = cloneLink(l)
	}
	return out
}

// LinksOf returns the links touching a node, in declaration order.
func (t *Topology) LinksOf(name string) []api.Link {
	var out []api.Link
	for _, l := range t.links {
		if l.Touches(name) {
			out = append(out, cloneLink(l))
		}
	}
	return out
}

// LinkCount is the number of link endpoints on a node, which is also the
// highest port number assigned to it so far.
func (t *Topology) LinkCount(name string) int {
	return t.ports[name]
}

func cloneNode(n api.Node) api.Node {
	if n.Switch.DatapathID != nil {
		dpid := *n.Switch.DatapathID
		n.Switch.DatapathID = &dpid
	}
	n.Switch.Protocols = slices.Clone(n.Switch.Protocols)
	if n.Host.IP != nil {
		ip := *n.Host.IP
		n.Host.IP = &ip
	}
	n.Host.MAC = slices.Clone(n.Host.MAC)
	return n
}

func cloneLink(l api.Link) api.Link {
	p := &l.Properties
	if p.Bandwidth != nil {
		v := *p.Bandwidth
		p.Bandwidth = &v
	}
	if p.Delay != nil {
		v := *p.Delay
		p.Delay = &v
	}
	if p.Loss != nil {
		v := *p.Loss
		p.Loss = &v
	}
	p.ParamsA = maps.Clone(p.ParamsA)
	p.ParamsB = maps.Clone(p.ParamsB)
	return l
}
