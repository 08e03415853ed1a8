package api

import (
	"fmt"
	"net"
	"net/netip"
)

type NodeKind string

const (
	KindSwitch NodeKind = "switch"
	KindHost   NodeKind = "host"
)

// Node is a switch or a host declared in a topology.
// Index is the 1-based registration order among nodes of the same kind.
type Node struct {
	Name  string
	Kind  NodeKind
	Index int

	Switch SwitchAttrs
	Host   HostAttrs
}

// SwitchAttrs only carries meaning when Kind is KindSwitch.
// A nil DatapathID means none was declared.
type SwitchAttrs struct {
	DatapathID *uint64
	Protocols  []string
}

// HostAttrs only carries meaning when Kind is KindHost.
// Nil fields are left for the emulator to assign.
type HostAttrs struct {
	IP  *netip.Prefix
	MAC net.HardwareAddr
}

func (n Node) IsSwitch() bool { return n.Kind == KindSwitch }

func (n Node) IsHost() bool { return n.Kind == KindHost }

// EffectiveDatapathID returns the declared datapath id, or the switch
// registration order when none was declared. Hosts return 0.
func (n Node) EffectiveDatapathID() uint64 {
	if !n.IsSwitch() {
		return 0
	}
	if n.Switch.DatapathID != nil {
		return *n.Switch.DatapathID
	}
	return uint64(n.Index)
}

// DPIDString formats a datapath id the way ovs-vsctl expects it.
func DPIDString(dpid uint64) string {
	return fmt.Sprintf("%016x", dpid)
}
