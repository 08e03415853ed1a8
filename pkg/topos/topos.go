// Package topos holds the lab topologies, one factory per lab exercise.
package topos

import (
	"fmt"

	"Sdntopo/pkg/topo"
)

var builtins = []struct {
	name    string
	factory topo.Factory
}{
	{"lab1-part2", Lab1Part2},
	{"lab1-part3", Lab1Part3},
	{"lab2-part3", Lab2Part3},
	{"lab2-part5", Lab2Part5},
	{"lab3", Lab3},
	{"lab3-demo", Lab3Demo},
}

// Register adds every built-in topology to r.
func Register(r *topo.Registry) error {
	for _, b := range builtins {
		if err := r.Register(b.name, b.factory); err != nil {
			return err
		}
	}
	return nil
}

// builder stops at the first failing call and keeps that error, so a
// definition reads as a flat list of declarations.
type builder struct {
	t   *topo.Topology
	err error
}

func newBuilder(name string) *builder {
	return &builder{t: topo.New(name)}
}

func (b *builder) switches(names ...string) {
	for _, name := range names {
		if b.err != nil {
			return
		}
		_, b.err = b.t.AddSwitch(name)
	}
}

func (b *builder) host(name string, opts ...topo.HostOption) {
	if b.err != nil {
		return
	}
	_, b.err = b.t.AddHost(name, opts...)
}

func (b *builder) hosts(names ...string) {
	for _, name := range names {
		b.host(name)
	}
}

// links takes pairs of node names.
func (b *builder) links(pairs ...[2]string) {
	for _, p := range pairs {
		if b.err != nil {
			return
		}
		_, b.err = b.t.AddLink(p[0], p[1])
	}
}

func (b *builder) done() (*topo.Topology, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build %s: %w", b.t.Name(), b.err)
	}
	return b.t, nil
}
