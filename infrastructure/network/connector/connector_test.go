package connector

import (
	"context"
	"sensocket/application"
	"sensocket/domain/connection"
	"sensocket/infrastructure/settings"
	"sync"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

type connectorTestProcessor struct {
	id       uint64
	address  settings.Address
	delay    time.Duration
	listener application.ProcessorListener

	mu      sync.Mutex
	started bool
	closed  int
	wakeUps int
}

func (p *connectorTestProcessor) ID() uint64 { return p.id }

func (p *connectorTestProcessor) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = true
}

func (p *connectorTestProcessor) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed++
}

func (p *connectorTestProcessor) WakeUp() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wakeUps++
}

func (p *connectorTestProcessor) closeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

type connectorTestFactory struct {
	mu      sync.Mutex
	created []*connectorTestProcessor
}

func (f *connectorTestFactory) NewProcessor(
	_ context.Context,
	address settings.Address,
	delay time.Duration,
	listener application.ProcessorListener,
) application.Processor {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &connectorTestProcessor{
		id:       uint64(len(f.created) + 1),
		address:  address,
		delay:    delay,
		listener: listener,
	}
	f.created = append(f.created, p)
	return p
}

func (f *connectorTestFactory) last(t *testing.T) *connectorTestProcessor {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.created) == 0 {
		t.Fatal("no processor was created")
	}
	return f.created[len(f.created)-1]
}

func (f *connectorTestFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type connectorTestListener struct {
	mu        sync.Mutex
	successes int
	failures  int
}

func (l *connectorTestListener) OnConnectionSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.successes++
}

func (l *connectorTestListener) OnConnectionFailed() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures++
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}

func newTestConnector(
	ctx context.Context,
	addresses []string,
	limiter *rate.Limiter,
) (*Connector, *connectorTestFactory, *connectorTestListener, *int) {
	factory := &connectorTestFactory{}
	listener := &connectorTestListener{}
	closes := new(int)
	c := NewConnector(ctx, factory, listener, limiter, func() { *closes++ }, discardLogger{})

	parsed := make([]settings.Address, 0, len(addresses))
	for _, a := range addresses {
		parsed = append(parsed, settings.MustParseAddress(a))
	}
	c.SetAddresses(parsed)
	return c, factory, listener, closes
}

func TestConnector_ConnectStartsFirstAddress(t *testing.T) {
	c, factory, _, _ := newTestConnector(context.Background(), []string{"10.0.0.1:1", "10.0.0.2:2"}, nil)

	c.Connect()

	p := factory.last(t)
	if p.address.String() != "10.0.0.1:1" {
		t.Fatalf("expected first address, got %s", p.address)
	}
	if !p.started {
		t.Fatal("expected processor to be started")
	}
	if c.State() != connection.Connecting {
		t.Fatalf("expected connecting, got %s", c.State())
	}

	// a second Connect while connecting is a no-op
	c.Connect()
	if factory.count() != 1 {
		t.Fatalf("expected one processor, got %d", factory.count())
	}
}

func TestConnector_FailureRotatesThenReportsOnce(t *testing.T) {
	c, factory, listener, _ := newTestConnector(context.Background(), []string{"10.0.0.1:1", "10.0.0.2:2"}, nil)

	c.Connect()
	first := factory.last(t)
	first.listener.OnConnectFailed(first)

	second := factory.last(t)
	if second == first || second.address.String() != "10.0.0.2:2" {
		t.Fatalf("expected rotation to second address, got %s", second.address)
	}
	if listener.failures != 0 {
		t.Fatal("listener must not be told while addresses remain")
	}

	second.listener.OnConnectFailed(second)
	if factory.count() != 2 {
		t.Fatalf("expected no new processor after exhausting the list, got %d", factory.count())
	}
	if listener.failures != 1 {
		t.Fatalf("expected one failure notification, got %d", listener.failures)
	}
	if c.State() != connection.Closed {
		t.Fatalf("expected closed, got %s", c.State())
	}

	// index was reset: the next connect starts over
	c.Connect()
	if got := factory.last(t).address.String(); got != "10.0.0.1:1" {
		t.Fatalf("expected restart from first address, got %s", got)
	}
}

func TestConnector_SuccessAndCheckConnectWakesProcessor(t *testing.T) {
	c, factory, listener, _ := newTestConnector(context.Background(), []string{"10.0.0.1:1"}, nil)

	c.CheckConnect()
	p := factory.last(t)
	p.listener.OnConnectSuccess(p)

	if !c.IsConnected() {
		t.Fatalf("expected connected, got %s", c.State())
	}
	if listener.successes != 1 {
		t.Fatalf("expected one success notification, got %d", listener.successes)
	}

	c.CheckConnect()
	if p.wakeUps != 1 {
		t.Fatalf("expected processor wake up, got %d", p.wakeUps)
	}
	if factory.count() != 1 {
		t.Fatal("CheckConnect must not dial while connected")
	}
}

func TestConnector_IgnoresStaleProcessor(t *testing.T) {
	c, factory, listener, _ := newTestConnector(context.Background(), []string{"10.0.0.1:1", "10.0.0.2:2"}, nil)

	c.Connect()
	stale := factory.last(t)
	c.Reconnect()
	current := factory.last(t)
	if current == stale {
		t.Fatal("expected a new processor after reconnect")
	}

	stale.listener.OnConnectSuccess(stale)
	if c.IsConnected() {
		t.Fatal("stale success must not change state")
	}
	stale.listener.OnConnectFailed(stale)
	if factory.count() != 2 {
		t.Fatal("stale failure must not start a connection")
	}
	if stale.closeCount() < 2 {
		t.Fatalf("stale processor should be closed on every stale callback, got %d", stale.closeCount())
	}
	if listener.successes != 0 || listener.failures != 0 {
		t.Fatal("stale callbacks must not reach the listener")
	}
}

func TestConnector_DisconnectClosesProcessor(t *testing.T) {
	c, factory, _, closes := newTestConnector(context.Background(), []string{"10.0.0.1:1"}, nil)

	c.Connect()
	p := factory.last(t)
	p.listener.OnConnectSuccess(p)

	c.Disconnect()
	if c.State() != connection.Closed {
		t.Fatalf("expected closed, got %s", c.State())
	}
	if p.closeCount() != 1 {
		t.Fatalf("expected processor closed once, got %d", p.closeCount())
	}
	if *closes != 1 {
		t.Fatalf("expected onClose once, got %d", *closes)
	}

	// exit report of the processor after Disconnect is stale
	p.listener.OnConnectFailed(p)
	if factory.count() != 1 {
		t.Fatal("exit after disconnect must not reconnect")
	}
}

func TestConnector_ReconnectAtEndRestartsFromFirst(t *testing.T) {
	c, factory, _, _ := newTestConnector(context.Background(), []string{"10.0.0.1:1", "10.0.0.2:2"}, nil)

	c.Connect()
	p := factory.last(t)
	p.listener.OnConnectFailed(p) // now at second address
	c.Reconnect()

	if got := factory.last(t).address.String(); got != "10.0.0.1:1" {
		t.Fatalf("expected reconnect to wrap to first address, got %s", got)
	}
}

func TestConnector_EmptyAddressListFailsImmediately(t *testing.T) {
	c, factory, listener, _ := newTestConnector(context.Background(), nil, nil)

	c.Connect()
	if factory.count() != 0 {
		t.Fatal("expected no processor")
	}
	if listener.failures != 1 {
		t.Fatalf("expected failure notification, got %d", listener.failures)
	}
}

func TestConnector_CancelledContextDoesNotDial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, factory, listener, _ := newTestConnector(ctx, []string{"10.0.0.1:1"}, nil)

	c.Connect()
	if factory.count() != 0 || listener.failures != 0 {
		t.Fatal("cancelled connector must stay idle")
	}
}

func TestConnector_LimiterPacesAttempts(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	c, factory, _, _ := newTestConnector(context.Background(), []string{"10.0.0.1:1", "10.0.0.2:2"}, limiter)

	c.Connect()
	first := factory.last(t)
	if first.delay != 0 {
		t.Fatalf("expected first attempt without delay, got %v", first.delay)
	}

	first.listener.OnConnectFailed(first)
	if second := factory.last(t); second.delay <= 0 {
		t.Fatalf("expected second attempt to be delayed, got %v", second.delay)
	}
}

func TestConnector_SetAddressesCopiesInput(t *testing.T) {
	c, factory, _, _ := newTestConnector(context.Background(), nil, nil)
	input := []settings.Address{settings.MustParseAddress("10.0.0.1:1")}
	c.SetAddresses(input)
	input[0] = settings.MustParseAddress("10.0.0.9:9")

	c.Connect()
	if got := factory.last(t).address.String(); got != "10.0.0.1:1" {
		t.Fatalf("connector must keep its own copy, got %s", got)
	}
}
