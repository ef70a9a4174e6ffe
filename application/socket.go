package application

import (
	"context"
	"net"
	"sensocket/infrastructure/settings"
)

// Dialer establishes the socket for one protocol. Cancellation and timeout come from ctx.
type Dialer interface {
	Dial(ctx context.Context, address settings.Address) (net.Conn, error)
}
