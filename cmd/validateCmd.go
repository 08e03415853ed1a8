package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate topology files",
	Long:  `Build each topology file and report duplicate names, unknown link endpoints and malformed addresses.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			t, err := Calculator.LoadFile(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%s: %d switches, %d hosts, %d links)\n",
				path, t.Name(), len(t.Switches()), len(t.Hosts()), len(t.Links()))
		}
		if failed > 0 {
			return errors.Errorf("%d of %d files invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
