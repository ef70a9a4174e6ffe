//go:build !windows

package signal

import (
	"os"
	"syscall"
)

// SIGHUP means the controlling terminal is gone, and with it the input stream.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
