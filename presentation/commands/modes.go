package commands

import (
	"fmt"
	"sensocket/domain/mode"

	"github.com/spf13/cobra"
)

func modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List client modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range mode.All() {
				model := "event loop"
				if m.Blocking() {
					model = "blocking"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s, %s\n", m, m.Network(), model); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
