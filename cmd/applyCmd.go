package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"Sdntopo/pkg"
	"Sdntopo/pkg/ovs"
)

var applyCmd = &cobra.Command{
	Use:   "apply [name]",
	Short: "Apply Topology",
	Long: `Create one OVS bridge per switch and one port per switch-side link end.
Switch-to-switch links become patch port pairs, host links become internal ports.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolve(cmd, args)
		if err != nil {
			return err
		}
		m := newManager()
		if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
			printPlan(cmd, m.Plan(t))
			return nil
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return m.Apply(ctx, t)
	},
}

var destroyCmd = &cobra.Command{
	Use:   "destroy [name]",
	Short: "Delete the OVS bridges of a topology",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolve(cmd, args)
		if err != nil {
			return err
		}
		return newManager().Destroy(cmd.Context(), t)
	},
}

func newManager() *pkg.Manager {
	return pkg.NewManager(ovs.NewClientDriver(Config.Ovs.Sudo), ovs.NewNetlinkUpper(), Config.Ovs, Logger)
}

func printPlan(cmd *cobra.Command, p ovs.Plan) {
	w := cmd.OutOrStdout()
	for _, br := range p.Bridges {
		fmt.Fprintf(w, "bridge %s dpid=%016x protocols=%v\n", br.Name, br.DatapathID, br.Protocols)
		for _, port := range br.Ports {
			switch {
			case port.Peer != "":
				fmt.Fprintf(w, "  port %d %s %s peer=%s\n", port.Number, port.Name, port.Type, port.Peer)
			default:
				fmt.Fprintf(w, "  port %d %s %s host=%s\n", port.Number, port.Name, port.Type, port.Host)
			}
		}
	}
	for _, l := range p.Skipped {
		fmt.Fprintf(w, "skipped %s\n", l)
	}
}

func init() {
	rootCmd.AddCommand(applyCmd, destroyCmd)
	addFromFlag(applyCmd)
	addFromFlag(destroyCmd)
	applyCmd.Flags().Bool("dry-run", false, "Print the bridge plan without calling ovs-vsctl")
}
