package ovs

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// LinkUpper sets a kernel interface administratively up.
type LinkUpper interface {
	SetUp(name string) error
}

type netlinkUpper struct{}

// NewNetlinkUpper brings interfaces up in the current network namespace.
// OVS creates internal ports down.
func NewNetlinkUpper() LinkUpper {
	return netlinkUpper{}
}

func (netlinkUpper) SetUp(name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("failed to find interface %s: %v", name, err)
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to bring up interface %s: %v", name, err)
	}
	return nil
}
