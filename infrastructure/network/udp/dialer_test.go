package udp

import (
	"context"
	"errors"
	"net"
	"sensocket/infrastructure/settings"
	"testing"
	"time"
)

type mockDialer struct {
	network string
	address string
	err     error
}

func (m *mockDialer) DialContext(_ context.Context, network, address string) (net.Conn, error) {
	m.network = network
	m.address = address
	if m.err != nil {
		return nil, m.err
	}
	c, _ := net.Pipe()
	return c, nil
}

func TestDialer_UsesUDPNetwork(t *testing.T) {
	m := &mockDialer{}
	d := NewDialerWith(m)
	conn, err := d.Dial(context.Background(), settings.MustParseAddress("127.0.0.1:4321"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_ = conn.Close()
	if m.network != "udp" || m.address != "127.0.0.1:4321" {
		t.Fatalf("unexpected dial %s %s", m.network, m.address)
	}
}

func TestDialer_Error(t *testing.T) {
	d := NewDialerWith(&mockDialer{err: errors.New("fail")})
	conn, err := d.Dial(context.Background(), settings.MustParseAddress("127.0.0.1:4321"))
	if err == nil {
		t.Fatal("expected error")
	}
	if conn != nil {
		t.Fatal("expected nil connection")
	}
}

func TestDialer_Loopback(t *testing.T) {
	l, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer func(l *net.UDPConn) {
		_ = l.Close()
	}(l)

	conn, err := NewDialer().Dial(context.Background(), settings.MustParseAddress(l.LocalAddr().String()))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = l.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 16)
	n, from, err := l.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf[:n]) != "hello" {
		t.Fatalf("got %q", buf[:n])
	}
	if from.String() != conn.LocalAddr().String() {
		t.Fatalf("datagram from %s, want %s", from, conn.LocalAddr())
	}
}
