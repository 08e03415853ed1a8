package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"OpenFlow13"}, cfg.Ovs.Protocols)
	assert.Equal(t, "secure", cfg.Ovs.FailMode)
	assert.Empty(t, cfg.Ovs.Controller)
	assert.Empty(t, cfg.Topologies)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdntopo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
topologies:
  - extra.yaml
ovs:
  sudo: true
  controller: tcp:127.0.0.1:6653
  protocols: [OpenFlow10, OpenFlow13]
  failMode: standalone
`), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"extra.yaml"}, cfg.Topologies)
	assert.True(t, cfg.Ovs.Sudo)
	assert.Equal(t, "tcp:127.0.0.1:6653", cfg.Ovs.Controller)
	assert.Equal(t, []string{"OpenFlow10", "OpenFlow13"}, cfg.Ovs.Protocols)
	assert.Equal(t, "standalone", cfg.Ovs.FailMode)
}

func TestLoadRejectsBadFailMode(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("ovs.failMode", "open")
	_, err := Load(v)
	assert.ErrorContains(t, err, "failMode")
}
