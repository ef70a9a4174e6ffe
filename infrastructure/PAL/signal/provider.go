package signal

import "os"

// Provider lists the signals that end a client run on the current platform.
type Provider interface {
	ShutdownSignals() []os.Signal
}

type platformProvider struct {
	shutdown []os.Signal
}

func NewDefaultProvider() Provider {
	return platformProvider{shutdown: shutdownSignals}
}

// ShutdownSignals returns a fresh slice on every call.
func (p platformProvider) ShutdownSignals() []os.Signal {
	return append([]os.Signal(nil), p.shutdown...)
}
