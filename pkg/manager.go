package pkg

import (
	"context"

	goovs "github.com/digitalocean/go-openvswitch/ovs"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"Sdntopo/pkg/config"
	"Sdntopo/pkg/ovs"
	"Sdntopo/pkg/topo"
)

// Manager realizes a built topology as OVS bridges and ports. It never
// touches hosts: their internal ports are left for the emulator to move
// into whatever namespace it uses.
type Manager struct {
	om       *ovs.OvsManager
	planOpts ovs.PlanOptions
	log      *zap.Logger
}

// NewManager wires a Driver for ovs-vsctl calls. links may be nil, in
// which case host ports stay down for the emulator to bring up.
func NewManager(d ovs.Driver, links ovs.LinkUpper, cfg config.OvsConfig, log *zap.Logger) *Manager {
	om := ovs.NewOvsManager(d, ovs.Options{
		Controller: cfg.Controller,
		FailMode:   goovs.FailMode(cfg.FailMode),
		Links:      links,
	}, log)
	return &Manager{
		om:       om,
		planOpts: ovs.PlanOptions{Protocols: cfg.Protocols},
		log:      log,
	}
}

func (m *Manager) Plan(t *topo.Topology) ovs.Plan {
	return ovs.PlanFor(t, m.planOpts)
}

// Apply creates all bridges, then all ports. On failure it deletes the
// bridges this call created. Bridges that existed beforehand are adopted
// and survive the rollback, along with any ports already added to them.
func (m *Manager) Apply(ctx context.Context, t *topo.Topology) error {
	p := m.Plan(t)
	m.log.Info("applying topology",
		zap.String("topology", p.Topology),
		zap.Int("bridges", len(p.Bridges)))

	created, err := m.om.CreateBridges(ctx, p)
	if err == nil {
		err = m.om.AddPorts(ctx, p)
	}
	if err != nil {
		// rollback must run even if ctx is what failed
		if rbErr := m.om.DeleteBridges(context.WithoutCancel(ctx), created); rbErr != nil {
			err = multierr.Append(err, errors.Wrap(rbErr, "rollback"))
		}
		return errors.Wrapf(err, "apply topology %s", p.Topology)
	}
	return nil
}

func (m *Manager) Destroy(ctx context.Context, t *topo.Topology) error {
	if err := m.om.DeleteBridges(ctx, m.Plan(t).BridgeNames()); err != nil {
		return errors.Wrapf(err, "destroy topology %s", t.Name())
	}
	return nil
}
