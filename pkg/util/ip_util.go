package util

import (
	"fmt"
	"net"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
)

var (
	macRe  = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)
	dpidRe = regexp.MustCompile(`^(0[xX])?[0-9A-Fa-f]{1,16}$`)
)

// ParseHostCIDR parses an address with a mandatory prefix length,
// e.g. 192.168.0.1/27. The host bits are kept as given.
func ParseHostCIDR(s string) (netip.Prefix, error) {
	if !strings.Contains(s, "/") {
		return netip.Prefix{}, fmt.Errorf("missing prefix length in %q", s)
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	if p.Addr().Zone() != "" {
		return netip.Prefix{}, fmt.Errorf("zoned address %q not allowed", s)
	}
	return p, nil
}

// ParseMAC only accepts six colon-separated hex octets. net.ParseMAC alone
// would also take dashes, dots and 20-octet forms.
func ParseMAC(s string) (net.HardwareAddr, error) {
	if !macRe.MatchString(s) {
		return nil, fmt.Errorf("%q is not six colon-separated hex octets", s)
	}
	return net.ParseMAC(s)
}

// ParseDPID parses a datapath id written in hex, with or without 0x.
func ParseDPID(s string) (uint64, error) {
	if !dpidRe.MatchString(s) {
		return 0, fmt.Errorf("%q is not a hex datapath id of at most 16 digits", s)
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, 64)
}
