package pkg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"Sdntopo/api"
	"Sdntopo/pkg/topo"
	"Sdntopo/pkg/util"
)

// Calculator turns topology files and registered names into built topologies
// and renders them for display.
type Calculator struct {
	r   *topo.Registry
	log *zap.Logger
}

func NewCalculator(r *topo.Registry, log *zap.Logger) *Calculator {
	return &Calculator{r: r, log: log}
}

func (c *Calculator) Registry() *topo.Registry { return c.r }

// Build builds a registered topology by name.
func (c *Calculator) Build(name string) (*topo.Topology, error) {
	t, err := c.r.Build(name)
	if err != nil {
		return nil, errors.Wrapf(err, "build topology %s", name)
	}
	c.log.Debug("topology built",
		zap.String("topology", name),
		zap.Int("nodes", len(t.Nodes())),
		zap.Int("links", len(t.Links())))
	return t, nil
}

// ReadTopoConfig reads a YAML topology file. Unknown keys are rejected.
func ReadTopoConfig(path string) (api.TopoConfig, error) {
	var cfg api.TopoConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "error reading YAML file")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "error unmarshaling YAML file %s", path)
	}
	return cfg, nil
}

// LoadFile reads and builds a topology file without registering it.
func (c *Calculator) LoadFile(path string) (*topo.Topology, error) {
	cfg, err := ReadTopoConfig(path)
	if err != nil {
		return nil, err
	}
	t, err := FromConfig(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "topology file %s", path)
	}
	return t, nil
}

// RegisterFile registers a topology file under its name. The file is built
// once here so a broken file fails at startup rather than at lookup.
func (c *Calculator) RegisterFile(path string) error {
	cfg, err := ReadTopoConfig(path)
	if err != nil {
		return err
	}
	if cfg.Name == "" {
		return errors.Errorf("topology file %s has no name", path)
	}
	if _, err := FromConfig(cfg); err != nil {
		return errors.Wrapf(err, "topology file %s", path)
	}
	if err := c.r.Register(cfg.Name, func() (*topo.Topology, error) { return FromConfig(cfg) }); err != nil {
		return errors.Wrapf(err, "topology file %s", path)
	}
	c.log.Info("topology file registered", zap.String("topology", cfg.Name), zap.String("path", path))
	return nil
}

// FromConfig replays a TopoConfig through the builder, nodes first, each
// list in file order.
func FromConfig(cfg api.TopoConfig) (*topo.Topology, error) {
	t := topo.New(cfg.Name)
	for i, n := range cfg.Nodes {
		if err := addNode(t, n); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}
	for i, l := range cfg.Links {
		if _, err := t.AddLink(l.SrcNode, l.DstNode, linkOptions(l)...); err != nil {
			return nil, fmt.Errorf("links[%d]: %w", i, err)
		}
	}
	return t, nil
}

func addNode(t *topo.Topology, n api.NodeConfig) error {
	switch n.Type {
	case api.KindSwitch:
		if n.Ip != "" || n.Mac != "" {
			return fmt.Errorf("switch %q cannot carry ip or mac", n.Name)
		}
		var opts []topo.SwitchOption
		if n.Dpid != "" {
			dpid, err := util.ParseDPID(n.Dpid)
			if err != nil {
				return fmt.Errorf("switch %q: %w", n.Name, err)
			}
			opts = append(opts, topo.WithDatapathID(dpid))
		}
		if len(n.Protocols) > 0 {
			opts = append(opts, topo.WithProtocols(n.Protocols...))
		}
		_, err := t.AddSwitch(n.Name, opts...)
		return err
	case api.KindHost:
		if n.Dpid != "" || len(n.Protocols) > 0 {
			return fmt.Errorf("host %q cannot carry dpid or protocols", n.Name)
		}
		var opts []topo.HostOption
		if n.Ip != "" {
			opts = append(opts, topo.WithIP(n.Ip))
		}
		if n.Mac != "" {
			opts = append(opts, topo.WithMAC(n.Mac))
		}
		_, err := t.AddHost(n.Name, opts...)
		return err
	default:
		return fmt.Errorf("node %q has unknown type %q", n.Name, n.Type)
	}
}

func linkOptions(l api.LinkConfig) []topo.LinkOption {
	var opts []topo.LinkOption
	p := l.Properties
	if p.Rate != nil {
		opts = append(opts, topo.WithBandwidth(*p.Rate))
	}
	if p.Latency != nil {
		opts = append(opts, topo.WithDelay(time.Duration(*p.Latency)*time.Millisecond))
	}
	if p.Loss != nil {
		opts = append(opts, topo.WithLoss(*p.Loss))
	}
	if l.SrcParams != nil || l.DstParams != nil {
		opts = append(opts, topo.WithParams(l.SrcParams, l.DstParams))
	}
	return opts
}

// ExportConfig is the inverse of FromConfig. Delays are truncated to
// whole milliseconds.
func ExportConfig(t *topo.Topology) api.TopoConfig {
	cfg := api.TopoConfig{Name: t.Name()}
	for _, n := range t.Nodes() {
		nc := api.NodeConfig{Name: n.Name, Type: n.Kind}
		if n.Switch.DatapathID != nil {
			nc.Dpid = api.DPIDString(*n.Switch.DatapathID)
		}
		nc.Protocols = n.Switch.Protocols
		if n.Host.IP != nil {
			nc.Ip = n.Host.IP.String()
		}
		if n.Host.MAC != nil {
			nc.Mac = n.Host.MAC.String()
		}
		cfg.Nodes = append(cfg.Nodes, nc)
	}
	for _, l := range t.Links() {
		lc := api.LinkConfig{
			SrcNode:   l.A.Node,
			DstNode:   l.B.Node,
			SrcParams: l.Properties.ParamsA,
			DstParams: l.Properties.ParamsB,
		}
		lc.Properties.Rate = l.Properties.Bandwidth
		lc.Properties.Loss = l.Properties.Loss
		if d := l.Properties.Delay; d != nil {
			ms := uint32(*d / time.Millisecond)
			lc.Properties.Latency = &ms
		}
		cfg.Links = append(cfg.Links, lc)
	}
	return cfg
}

func (c *Calculator) Export(w io.Writer, t *topo.Topology) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ExportConfig(t)); err != nil {
		return errors.Wrap(err, "encode topology")
	}
	return enc.Close()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	return table
}

func (c *Calculator) ShowNodes(w io.Writer, t *topo.Topology) {
	table := newTable(w, []string{"NAME", "TYPE", "DPID", "IP", "MAC", "LINKS"})
	for _, n := range t.Nodes() {
		dpid, ip, mac := "-", "-", "-"
		if n.IsSwitch() {
			dpid = api.DPIDString(n.EffectiveDatapathID())
		}
		if n.Host.IP != nil {
			ip = n.Host.IP.String()
		}
		if n.Host.MAC != nil {
			mac = n.Host.MAC.String()
		}
		table.Append([]string{n.Name, string(n.Kind), dpid, ip, mac, fmt.Sprint(t.LinkCount(n.Name))})
	}
	table.Render()
}

func (c *Calculator) ShowLinks(w io.Writer, t *topo.Topology) {
	table := newTable(w, []string{"#", "SRC", "DST", "BW", "DELAY", "LOSS"})
	for _, l := range t.Links() {
		bw, delay, loss := "-", "-", "-"
		if p := l.Properties; p.Bandwidth != nil {
			bw = fmt.Sprintf("%dMbps", *p.Bandwidth)
		}
		if p := l.Properties; p.Delay != nil {
			delay = p.Delay.String()
		}
		if p := l.Properties; p.Loss != nil {
			loss = fmt.Sprintf("%.2f%%", *p.Loss)
		}
		table.Append([]string{fmt.Sprint(l.Index), l.A.Interface(), l.B.Interface(), bw, delay, loss})
	}
	table.Render()
}

// ShowNames lists the registered topologies, one per line.
func (c *Calculator) ShowNames(w io.Writer) {
	fmt.Fprintln(w, strings.Join(c.r.Names(), "\n"))
}
