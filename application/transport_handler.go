package application

import (
	"context"
	"net"
)

// Exchange is the client side of an I/O loop: the loop drains outbound frames from it
// and hands it every decoded inbound frame.
type Exchange interface {
	// Pending signals that Next may return a frame.
	Pending() <-chan struct{}
	// Next pops the next wire-ready outbound frame.
	Next() ([]byte, bool)
	// NewDecoder returns a fresh decoder for a new socket.
	NewDecoder() FrameDecoder
	// Receive consumes one inbound frame payload. An error ends the connection.
	Receive(payload []byte) error
}

// IOLoop moves bytes between one socket and an Exchange until ctx is done or the socket fails.
type IOLoop interface {
	// Serve returns nil when ctx was cancelled, and the socket error otherwise.
	Serve(ctx context.Context, conn net.Conn, exchange Exchange) error
	WakeUp()
}

type IOLoopFactory interface {
	NewLoop() IOLoop
}
