package application

import (
	"context"
	"sensocket/infrastructure/settings"
	"time"
)

// ConnectListener receives connector outcomes. Callbacks may run on any goroutine
// and must not block.
type ConnectListener interface {
	// OnConnectionSuccess fires each time a socket is established.
	OnConnectionSuccess()
	// OnConnectionFailed fires once every address in the list has failed.
	OnConnectionFailed()
}

// Processor owns one socket for one connection attempt.
type Processor interface {
	ID() uint64
	// Start dials and serves the socket on its own goroutine.
	Start()
	// Close is idempotent and never waits for the processor goroutine.
	Close()
	// WakeUp asks the I/O loop to look at the write queue now.
	WakeUp()
}

// ProcessorListener is notified by processors. OnConnectFailed is reported on
// every exit, including after a successful connect.
type ProcessorListener interface {
	OnConnectSuccess(p Processor)
	OnConnectFailed(p Processor)
}

type ProcessorFactory interface {
	// NewProcessor builds a processor for address that waits delay before dialing.
	NewProcessor(ctx context.Context, address settings.Address, delay time.Duration, listener ProcessorListener) Processor
}
