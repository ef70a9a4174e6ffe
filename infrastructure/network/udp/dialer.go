package udp

import (
	"context"
	"net"
	"sensocket/application"
	"sensocket/infrastructure/settings"
)

type UDPDialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Dialer opens connected UDP sockets, so a single Read/Write pair talks to one peer
// and ICMP errors surface as read errors.
type Dialer struct {
	dialer UDPDialer
}

func NewDialer() application.Dialer {
	return &Dialer{dialer: &net.Dialer{}}
}

func NewDialerWith(dialer UDPDialer) application.Dialer {
	return &Dialer{dialer: dialer}
}

func (d *Dialer) Dial(ctx context.Context, address settings.Address) (net.Conn, error) {
	return d.dialer.DialContext(ctx, "udp", address.String())
}
