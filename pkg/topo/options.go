package topo

import (
	"maps"
	"slices"
	"time"

	"Sdntopo/api"
)

type SwitchOption func(*api.SwitchAttrs)

func WithDatapathID(dpid uint64) SwitchOption {
	return func(a *api.SwitchAttrs) {
		a.DatapathID = &dpid
	}
}

// WithProtocols sets the OpenFlow versions, e.g. "OpenFlow13".
func WithProtocols(protocols ...string) SwitchOption {
	return func(a *api.SwitchAttrs) {
		a.Protocols = slices.Clone(protocols)
	}
}

// hostLiterals holds the raw address strings until AddHost validates them.
type hostLiterals struct {
	ip, mac       string
	hasIP, hasMAC bool
}

type HostOption func(*hostLiterals)

// WithIP sets the host address in CIDR form, e.g. 192.168.0.1/27.
func WithIP(cidr string) HostOption {
	return func(h *hostLiterals) {
		h.ip, h.hasIP = cidr, true
	}
}

func WithMAC(mac string) HostOption {
	return func(h *hostLiterals) {
		h.mac, h.hasMAC = mac, true
	}
}

type LinkOption func(*api.LinkProperties)

func WithBandwidth(mbps uint64) LinkOption {
	return func(p *api.LinkProperties) {
		p.Bandwidth = &mbps
	}
}

func WithDelay(d time.Duration) LinkOption {
	return func(p *api.LinkProperties) {
		p.Delay = &d
	}
}

func WithLoss(percent float32) LinkOption {
	return func(p *api.LinkProperties) {
		p.Loss = &percent
	}
}

// WithParams attaches opaque per-endpoint parameters.
func WithParams(a, b map[string]string) LinkOption {
	return func(p *api.LinkProperties) {
		p.ParamsA = maps.Clone(a)
		p.ParamsB = maps.Clone(b)
	}
}
