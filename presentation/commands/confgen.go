package commands

import (
	"encoding/json"
	"fmt"
	clientConfiguration "sensocket/infrastructure/PAL/configuration/client"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var writeConfigurationClipboard = clipboard.WriteAll

func confgenCmd(o *options) *cobra.Command {
	var write, copyToClipboard bool
	cmd := &cobra.Command{
		Use:   "confgen",
		Short: "Print a default client configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := clientConfiguration.Default()
			if write {
				path, err := clientConfiguration.NewDefaultCreator(o.resolver()).Create(conf)
				if err != nil {
					return fmt.Errorf("failed to write client configuration: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", path)
				return err
			}

			marshalled, err := json.MarshalIndent(conf, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal client configuration: %w", err)
			}
			if copyToClipboard {
				if err := writeConfigurationClipboard(string(marshalled)); err != nil {
					return fmt.Errorf("failed to copy client configuration to clipboard: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "configuration copied to clipboard")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(marshalled))
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write to the --config path instead of printing")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "copy to the system clipboard instead of printing")
	cmd.MarkFlagsMutuallyExclusive("write", "copy")
	return cmd
}
