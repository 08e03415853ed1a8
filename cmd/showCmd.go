package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show Resources",
	Long:  `Show the nodes or links of a topology, with auto-assigned port numbers.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolve(cmd, args)
		if err != nil {
			return err
		}
		class, _ := cmd.Flags().GetString("class")
		switch class {
		case "nodes":
			Calculator.ShowNodes(cmd.OutOrStdout(), t)
		case "links":
			Calculator.ShowLinks(cmd.OutOrStdout(), t)
		default:
			return errors.Errorf("invalid class %q, want nodes or links", class)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered topologies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		Calculator.ShowNames(cmd.OutOrStdout())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Print a topology in the YAML file format",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolve(cmd, args)
		if err != nil {
			return err
		}
		return Calculator.Export(cmd.OutOrStdout(), t)
	},
}

func init() {
	rootCmd.AddCommand(showCmd, listCmd, exportCmd)
	addFromFlag(showCmd)
	addFromFlag(exportCmd)
	showCmd.Flags().String("class", "nodes", "Class of the element to show (nodes or links)")
}
