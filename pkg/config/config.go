package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Log        LogConfig `mapstructure:"log"`
	Topologies []string  `mapstructure:"topologies"` // extra YAML topology files
	Ovs        OvsConfig `mapstructure:"ovs"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type OvsConfig struct {
	Sudo       bool     `mapstructure:"sudo"`
	Controller string   `mapstructure:"controller"` // e.g. tcp:127.0.0.1:6653, empty for none
	Protocols  []string `mapstructure:"protocols"`  // used when a switch declares none
	FailMode   string   `mapstructure:"failMode"`   // secure or standalone
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("ovs.sudo", false)
	v.SetDefault("ovs.controller", "")
	v.SetDefault("ovs.protocols", []string{"OpenFlow13"})
	v.SetDefault("ovs.failMode", "secure")
}

// Load decodes v into a Config. Defaults must already be set on v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	switch cfg.Ovs.FailMode {
	case "secure", "standalone":
	default:
		return nil, errors.Errorf("ovs.failMode must be secure or standalone, got %q", cfg.Ovs.FailMode)
	}
	return cfg, nil
}
