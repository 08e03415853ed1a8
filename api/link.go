package api

import (
	"fmt"
	"time"
)

// Endpoint is one side of a link. Port is assigned at declaration time:
// the n-th link touching a node gets port n.
type Endpoint struct {
	Node string
	Port int
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s:%d", e.Node, e.Port)
}

// Interface returns the emulator-style interface name, e.g. s1-eth2.
func (e Endpoint) Interface() string {
	return fmt.Sprintf("%s-eth%d", e.Node, e.Port)
}

type Link struct {
	Index      int // declaration order, 0-based
	A          Endpoint
	B          Endpoint
	Properties LinkProperties
}

// LinkProperties are recorded as declared and never interpreted by the builder.
type LinkProperties struct {
	Bandwidth *uint64 // in mbps
	Delay     *time.Duration
	Loss      *float32 // in percentage

	ParamsA map[string]string
	ParamsB map[string]string
}

func (l Link) String() string {
	return fmt.Sprintf("%s <-> %s", l.A, l.B)
}

// Touches reports whether the node is one of the link endpoints.
func (l Link) Touches(node string) bool {
	return l.A.Node == node || l.B.Node == node
}

// Peer returns the endpoint opposite to the given node. For a self-loop
// it returns B.
func (l Link) Peer(node string) (Endpoint, bool) {
	switch node {
	case l.A.Node:
		return l.B, true
	case l.B.Node:
		return l.A, true
	}
	return Endpoint{}, false
}
