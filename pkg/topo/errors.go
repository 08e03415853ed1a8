package topo

import (
	"errors"
	"fmt"
)

var ErrEmptyName = errors.New("node name must not be empty")

// DuplicateNodeError is returned when a node name is already registered.
type DuplicateNodeError struct {
	Name string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q already exists", e.Name)
}

// UnknownNodeError is returned when a link references an unregistered node.
type UnknownNodeError struct {
	Name string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("node %q not found", e.Name)
}

// InvalidAddressError is returned for a malformed host IP or MAC literal.
type InvalidAddressError struct {
	Node  string
	Field string // "ip" or "mac"
	Value string
	Err   error
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("node %q: invalid %s %q: %v", e.Node, e.Field, e.Value, e.Err)
}

func (e *InvalidAddressError) Unwrap() error { return e.Err }

// DuplicateDatapathIDError is returned when two switches would share a
// datapath id.
type DuplicateDatapathIDError struct {
	Name       string
	Other      string
	DatapathID uint64
}

func (e *DuplicateDatapathIDError) Error() string {
	return fmt.Sprintf("switch %q: datapath id %016x already used by %q", e.Name, e.DatapathID, e.Other)
}

type DuplicateTopologyError struct {
	Name string
}

func (e *DuplicateTopologyError) Error() string {
	return fmt.Sprintf("topology %q already registered", e.Name)
}

type UnknownTopologyError struct {
	Name string
}

func (e *UnknownTopologyError) Error() string {
	return fmt.Sprintf("topology %q not registered", e.Name)
}
