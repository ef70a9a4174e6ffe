package tcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sensocket/application"
	"sensocket/infrastructure/settings"
	"time"

	"golang.org/x/net/proxy"
)

const keepAlivePeriod = 15 * time.Second

var ErrUnsupportedProxy = errors.New("unsupported proxy")

// ContextDialer is satisfied by *net.Dialer and by the SOCKS5 dialer of golang.org/x/net/proxy.
type ContextDialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

type Dialer struct {
	dialer ContextDialer
}

// NewDialer builds a TCP dialer for s, going through s.ProxyURL when it is set.
func NewDialer(s settings.Settings) (application.Dialer, error) {
	base := &net.Dialer{
		KeepAlive: keepAlivePeriod,
		Control:   userTimeoutControl(time.Duration(s.UserTimeoutMs) * time.Millisecond),
	}
	if s.ProxyURL == "" {
		return NewDialerWith(base), nil
	}

	u, err := url.Parse(s.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedProxy, err)
	}
	pd, err := proxy.FromURL(u, base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedProxy, err)
	}
	cd, ok := pd.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not support cancellation", ErrUnsupportedProxy, u.Scheme)
	}
	return NewDialerWith(cd), nil
}

func NewDialerWith(dialer ContextDialer) application.Dialer {
	return &Dialer{dialer: dialer}
}

func (d *Dialer) Dial(ctx context.Context, address settings.Address) (net.Conn, error) {
	conn, err := d.dialer.DialContext(ctx, "tcp", address.String())
	if err != nil {
		return nil, err
	}
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	return conn, nil
}
