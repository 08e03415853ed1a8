package topo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	calls := 0
	require.NoError(t, r.Register("single", func() (*Topology, error) {
		calls++
		tp := New("single")
		_, err := tp.AddSwitch("s1")
		return tp, err
	}))
	require.NoError(t, r.Register("broken", func() (*Topology, error) {
		return nil, errors.New("boom")
	}))

	err := r.Register("single", nil)
	var dup *DuplicateTopologyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "single", dup.Name)

	assert.Equal(t, []string{"broken", "single"}, r.Names())

	a, err := r.Build("single")
	require.NoError(t, err)
	b, err := r.Build("single")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NotSame(t, a, b)

	_, err = r.Build("broken")
	assert.EqualError(t, err, "boom")

	_, err = r.Build("missing")
	var unknown *UnknownTopologyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Name)

	_, ok := r.Lookup("single")
	assert.True(t, ok)
	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}
