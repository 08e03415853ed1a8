package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"Sdntopo/pkg"
	"Sdntopo/pkg/config"
	"Sdntopo/pkg/log"
	"Sdntopo/pkg/topo"
	"Sdntopo/pkg/topos"
)

var (
	cfgFile    string
	Config     *config.Config
	Logger     = zap.NewNop()
	Calculator *pkg.Calculator
)

var rootCmd = &cobra.Command{
	Use:   "sdntopo",
	Short: "SDN lab topology CLI",
	Long: `sdntopo builds the lab switch/host topologies, shows them, and wires
them into Open vSwitch bridges for an external controller.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the command selected by os.Args and flushes the logger.
func Execute() error {
	defer func() { _ = Logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./sdntopo.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

// setup loads the config, then fills a fresh registry with the built-in
// topologies and every configured topology file.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	config.SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("sdntopo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("SDNTOPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "read config")
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	Config = cfg

	l, err := log.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	Logger = l

	r := topo.NewRegistry()
	if err := topos.Register(r); err != nil {
		return err
	}
	Calculator = pkg.NewCalculator(r, Logger)
	for _, path := range cfg.Topologies {
		if err := Calculator.RegisterFile(path); err != nil {
			return err
		}
	}
	return nil
}

// resolve builds the topology selected by --from or by the name argument.
func resolve(cmd *cobra.Command, args []string) (*topo.Topology, error) {
	from, _ := cmd.Flags().GetString("from")
	switch {
	case from != "" && len(args) > 0:
		return nil, errors.New("give either a topology name or --from, not both")
	case from != "":
		return Calculator.LoadFile(from)
	case len(args) == 1:
		return Calculator.Build(args[0])
	default:
		return nil, errors.New("a topology name or --from is required")
	}
}

func addFromFlag(c *cobra.Command) {
	c.Flags().StringP("from", "f", "", "Path to a topology file instead of a registered name")
}
