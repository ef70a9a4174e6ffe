package main

import (
	"context"
	"fmt"
	"os"
	palSignal "sensocket/infrastructure/PAL/signal"
	"sensocket/infrastructure/logging"
	"sensocket/presentation/commands"
	"sensocket/presentation/signals/shutdown"
)

func main() {
	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	shutdownHandler := shutdown.NewHandler(
		appCtx,
		appCtxCancel,
		palSignal.NewDefaultProvider(),
		shutdown.NewNotifier(),
		logging.NewPrefixedLogger("signal"),
	)
	shutdownHandler.Handle()

	root := commands.NewRootCommand(os.Stdin, os.Stdout, logging.NewLogLogger())
	if err := root.ExecuteContext(appCtx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		appCtxCancel()
		os.Exit(1)
	}
}
