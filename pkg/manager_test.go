package pkg

import (
	"context"
	"errors"
	"strings"
	"testing"

	goovs "github.com/digitalocean/go-openvswitch/ovs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Sdntopo/pkg/config"
	"Sdntopo/pkg/topos"
)

type recordingDriver struct {
	calls    []string
	failOn   string
	existing []string
}

func (d *recordingDriver) do(parts ...string) error {
	call := strings.Join(parts, " ")
	d.calls = append(d.calls, call)
	if d.failOn != "" && strings.HasPrefix(call, d.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (d *recordingDriver) ListBridges() ([]string, error) {
	return d.existing, d.do("list-br")
}
func (d *recordingDriver) AddBridge(b string) error { return d.do("add-br", b) }
func (d *recordingDriver) DeleteBridge(b string) error { return d.do("del-br", b) }
func (d *recordingDriver) AddPort(b, p string) error { return d.do("add-port", b, p) }
func (d *recordingDriver) SetBridgeProtocols(b string, ps []string) error {
	return d.do(append([]string{"protocols", b}, ps...)...)
}
func (d *recordingDriver) SetFailMode(b string, m goovs.FailMode) error {
	return d.do("fail-mode", b, string(m))
}
func (d *recordingDriver) SetController(b, target string) error {
	return d.do("controller", b, target)
}
func (d *recordingDriver) SetInterface(p string, o goovs.InterfaceOptions) error {
	return d.do("set-if", p, string(o.Type), o.Peer)
}

func (d *recordingDriver) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

var testOvs = config.OvsConfig{
	Controller: "tcp:127.0.0.1:6653",
	Protocols:  []string{"OpenFlow13"},
	FailMode:   "secure",
}

func TestManagerApply(t *testing.T) {
	tp, err := topos.Lab2Part3()
	require.NoError(t, err)

	d := &recordingDriver{}
	m := NewManager(d, nil, testOvs, zap.NewNop())
	require.NoError(t, m.Apply(context.Background(), tp))

	assert.Equal(t, 4, d.count("add-br"))
	assert.Equal(t, 4, d.count("controller"))
	assert.Equal(t, 4, d.count("protocols s"))
	// 2 host ports + 6 mesh links with two patch ends each
	assert.Equal(t, 14, d.count("add-port"))
	patches := 0
	for _, c := range d.calls {
		if strings.Contains(c, " patch ") {
			patches++
		}
	}
	assert.Equal(t, 12, patches)
	assert.Contains(t, d.calls, "set-if s1-eth2 patch s2-eth2")
	assert.Contains(t, d.calls, "set-if s3-eth3 patch s4-eth3")
	assert.Zero(t, d.count("del-br"))

	firstPort := len(d.calls)
	for i, c := range d.calls {
		if strings.HasPrefix(c, "add-port") {
			firstPort = i
			break
		}
	}
	for _, c := range d.calls[firstPort:] {
		assert.False(t, strings.HasPrefix(c, "add-br"), "bridge created after ports: %s", c)
	}
}

func TestManagerApplyRollsBack(t *testing.T) {
	tp, err := topos.Lab2Part5()
	require.NoError(t, err)

	d := &recordingDriver{failOn: "add-port s1 s1-eth2"}
	m := NewManager(d, nil, testOvs, zap.NewNop())
	err = m.Apply(context.Background(), tp)
	assert.ErrorContains(t, err, "apply topology lab2-part5")
	assert.ErrorContains(t, err, "s1-eth2")
	assert.Equal(t, "del-br s1", d.calls[len(d.calls)-1])
}

func TestManagerApplyCancelled(t *testing.T) {
	tp, err := topos.Lab3()
	require.NoError(t, err)

	d := &recordingDriver{}
	m := NewManager(d, nil, testOvs, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = m.Apply(ctx, tp)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, d.count("add-br"))
	// nothing was created, so nothing is rolled back
	assert.Zero(t, d.count("del-br"))
}

func TestManagerApplyRollbackKeepsExistingBridges(t *testing.T) {
	tp, err := topos.Lab2Part3()
	require.NoError(t, err)

	d := &recordingDriver{failOn: "add-port s3", existing: []string{"s1"}}
	m := NewManager(d, nil, testOvs, zap.NewNop())
	err = m.Apply(context.Background(), tp)
	require.Error(t, err)

	assert.NotContains(t, d.calls, "del-br s1")
	for _, br := range []string{"s2", "s3", "s4"} {
		assert.Contains(t, d.calls, "del-br "+br)
	}
}

type upRecorder struct{ up []string }

func (u *upRecorder) SetUp(name string) error {
	u.up = append(u.up, name)
	return nil
}

func TestManagerApplyBringsHostPortsUp(t *testing.T) {
	tp, err := topos.Lab3()
	require.NoError(t, err)

	links := &upRecorder{}
	m := NewManager(&recordingDriver{}, links, testOvs, zap.NewNop())
	require.NoError(t, m.Apply(context.Background(), tp))
	assert.Equal(t, []string{"s1-eth1", "s3-eth1", "s4-eth1", "s6-eth1"}, links.up)
}

func TestManagerDestroy(t *testing.T) {
	tp, err := topos.Lab3Demo()
	require.NoError(t, err)

	d := &recordingDriver{}
	m := NewManager(d, nil, testOvs, zap.NewNop())
	require.NoError(t, m.Destroy(context.Background(), tp))
	assert.Equal(t, 9, d.count("del-br"))
}

func TestManagerPlanUsesDefaultProtocols(t *testing.T) {
	tp, err := topos.Lab2Part5()
	require.NoError(t, err)
	m := NewManager(&recordingDriver{}, nil, testOvs, zap.NewNop())

	p := m.Plan(tp)
	require.Len(t, p.Bridges, 1)
	assert.Equal(t, []string{"OpenFlow13"}, p.Bridges[0].Protocols)
	assert.Len(t, p.Bridges[0].Ports, 3)
}
