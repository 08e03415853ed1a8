package ovs

import (
	"context"
	"fmt"
	"slices"

	"github.com/digitalocean/go-openvswitch/ovs"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Driver is the subset of ovs-vsctl operations the manager needs.
type Driver interface {
	ListBridges() ([]string, error)
	AddBridge(bridge string) error
	DeleteBridge(bridge string) error
	AddPort(bridge, port string) error
	SetBridgeProtocols(bridge string, protocols []string) error
	SetFailMode(bridge string, mode ovs.FailMode) error
	SetController(bridge, target string) error
	SetInterface(port string, options ovs.InterfaceOptions) error
}

type clientDriver struct {
	c *ovs.Client
}

// NewClientDriver returns a Driver backed by the ovs-vsctl binary.
func NewClientDriver(sudo bool) Driver {
	var opts []ovs.OptionFunc
	if sudo {
		opts = append(opts, ovs.Sudo())
	}
	return &clientDriver{c: ovs.New(opts...)}
}

func (d *clientDriver) ListBridges() ([]string, error) { return d.c.VSwitch.ListBridges() }

func (d *clientDriver) AddBridge(bridge string) error { return d.c.VSwitch.AddBridge(bridge) }

func (d *clientDriver) DeleteBridge(bridge string) error { return d.c.VSwitch.DeleteBridge(bridge) }

func (d *clientDriver) AddPort(bridge, port string) error { return d.c.VSwitch.AddPort(bridge, port) }

func (d *clientDriver) SetBridgeProtocols(bridge string, protocols []string) error {
	return d.c.VSwitch.Set.Bridge(bridge, ovs.BridgeOptions{Protocols: protocols})
}

func (d *clientDriver) SetFailMode(bridge string, mode ovs.FailMode) error {
	return d.c.VSwitch.SetFailMode(bridge, mode)
}

func (d *clientDriver) SetController(bridge, target string) error {
	return d.c.VSwitch.SetController(bridge, target)
}

func (d *clientDriver) SetInterface(port string, options ovs.InterfaceOptions) error {
	return d.c.VSwitch.Set.Interface(port, options)
}

type Options struct {
	Controller string
	FailMode   ovs.FailMode
	// Links brings internal ports up once configured. Nil leaves them down.
	Links LinkUpper
}

type OvsManager struct {
	d    Driver
	opts Options
	log  *zap.Logger
}

func NewOvsManager(d Driver, opts Options, log *zap.Logger) *OvsManager {
	if opts.FailMode == "" {
		opts.FailMode = ovs.FailModeSecure
	}
	return &OvsManager{d: d, opts: opts, log: log}
}

// CreateBridges creates every bridge before any port, so patch peers
// always land on an existing bridge. It returns the bridges this call
// created. Bridges that already existed are adopted by ovs-vsctl
// (--may-exist) and are left out of the result.
func (om *OvsManager) CreateBridges(ctx context.Context, p Plan) ([]string, error) {
	var created []string
	if err := ctx.Err(); err != nil {
		return created, err
	}
	existing, err := om.d.ListBridges()
	if err != nil {
		return created, fmt.Errorf("failed to list bridges: %w", err)
	}
	for _, br := range p.Bridges {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		if err := om.d.AddBridge(br.Name); err != nil {
			return created, fmt.Errorf("failed to add bridge %s: %w", br.Name, err)
		}
		if !slices.Contains(existing, br.Name) {
			created = append(created, br.Name)
		} else {
			om.log.Warn("bridge already exists, adopted", zap.String("bridge", br.Name))
		}
		if err := om.configureBridge(br); err != nil {
			return created, err
		}
	}
	return created, nil
}

func (om *OvsManager) configureBridge(br Bridge) error {
	if len(br.Protocols) > 0 {
		if err := om.d.SetBridgeProtocols(br.Name, br.Protocols); err != nil {
			return fmt.Errorf("failed to set protocols on bridge %s: %w", br.Name, err)
		}
	}
	if err := om.d.SetFailMode(br.Name, om.opts.FailMode); err != nil {
		return fmt.Errorf("failed to set fail mode on bridge %s: %w", br.Name, err)
	}
	if om.opts.Controller != "" {
		if err := om.d.SetController(br.Name, om.opts.Controller); err != nil {
			return fmt.Errorf("failed to set controller on bridge %s: %w", br.Name, err)
		}
	}
	om.log.Info("bridge configured",
		zap.String("bridge", br.Name),
		zap.String("dpid", fmt.Sprintf("%016x", br.DatapathID)),
		zap.Strings("protocols", br.Protocols))
	return nil
}

// AddPorts attaches ports in plan order, which is link declaration order.
func (om *OvsManager) AddPorts(ctx context.Context, p Plan) error {
	for _, br := range p.Bridges {
		for _, port := range br.Ports {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := om.d.AddPort(br.Name, port.Name); err != nil {
				return fmt.Errorf("failed to add port %s to bridge %s: %w", port.Name, br.Name, err)
			}
			if err := om.d.SetInterface(port.Name, ovs.InterfaceOptions{Type: port.Type, Peer: port.Peer}); err != nil {
				return fmt.Errorf("failed to configure port %s: %w", port.Name, err)
			}
			if port.Type == ovs.InterfaceTypeInternal && om.opts.Links != nil {
				if err := om.opts.Links.SetUp(port.Name); err != nil {
					return fmt.Errorf("failed to bring up port %s: %w", port.Name, err)
				}
			}
			om.log.Debug("port added",
				zap.String("bridge", br.Name),
				zap.String("port", port.Name),
				zap.Int("ofport", port.Number),
				zap.String("type", string(port.Type)))
		}
	}
	for _, l := range p.Skipped {
		om.log.Warn("link has no switch endpoint, skipped", zap.Stringer("link", l))
	}
	return nil
}

// DeleteBridges removes the named bridges and keeps going on failure.
func (om *OvsManager) DeleteBridges(ctx context.Context, bridges []string) error {
	var errs error
	for _, name := range bridges {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if err := om.d.DeleteBridge(name); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to delete bridge %s: %w", name, err))
			continue
		}
		om.log.Info("bridge deleted", zap.String("bridge", name))
	}
	return errs
}
