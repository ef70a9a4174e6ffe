package commands

import (
	"io"
	"sensocket/application/logging"
	"sensocket/domain/app"
	clientConfiguration "sensocket/infrastructure/PAL/configuration/client"
	"sensocket/presentation/mode_selection"
	clientRunner "sensocket/presentation/runners/client"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	addresses  []string

	in     io.Reader
	out    io.Writer
	logger logging.Logger
	// prompt replaces the interactive selector when set.
	prompt mode_selection.Prompt
}

// NewRootCommand builds the sensocket command tree. Inbound messages go to out,
// outbound messages are read line by line from in.
func NewRootCommand(in io.Reader, out io.Writer, logger logging.Logger) *cobra.Command {
	return newRootCommand(&options{in: in, out: out, logger: logger})
}

func newRootCommand(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   app.Name + " [mode]",
		Short: "TCP and UDP socket client with blocking and event-loop I/O",
		Long: `Connects to the configured peers with one of four clients:
  tcp-nio, tcp-bio, udp-nio, udp-bio
Lines read from standard input are sent; received messages are printed.
Without a mode argument an interactive selector is shown.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, managerErr := clientConfiguration.NewManager(o.resolver())
			if managerErr != nil {
				return managerErr
			}
			deps := clientRunner.NewDependencies(manager, o.addresses, o.logger)
			return clientRunner.NewRunner(o.appMode(args), deps, o.in, o.out).Run(cmd.Context())
		},
	}
	root.SetOut(o.out)

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/sensocket/client_configuration.json)")
	root.Flags().StringSliceVar(&o.addresses, "address", nil, "peer host:port, repeatable; replaces the configured list")

	root.AddCommand(modesCmd(), confgenCmd(o), versionCmd())
	return root
}

func (o *options) resolver() clientConfiguration.Resolver {
	return clientConfiguration.NewFlagResolver(o.configPath, clientConfiguration.NewDefaultResolver())
}

func (o *options) appMode(args []string) mode_selection.AppMode {
	if app.UIModeFor(args) == app.CLI {
		return mode_selection.NewArgsAppMode(args)
	}
	if o.prompt != nil {
		return mode_selection.NewTeaAppModeWithPrompt(args, o.prompt)
	}
	return mode_selection.NewTeaAppMode(args)
}
