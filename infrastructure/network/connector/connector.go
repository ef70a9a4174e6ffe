package connector

import (
	"context"
	"sensocket/application"
	"sensocket/application/logging"
	"sensocket/domain/connection"
	"sensocket/infrastructure/settings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Connector walks an address list, keeping at most one live processor.
//
// A processor failure advances to the next address. When the list is exhausted
// the index resets and the listener is told once; nothing is retried until the
// next Connect, Reconnect or CheckConnect.
type Connector struct {
	ctx      context.Context
	factory  application.ProcessorFactory
	listener application.ConnectListener
	limiter  *rate.Limiter
	onClose  func()
	logger   logging.Logger

	mu        sync.Mutex
	addresses []settings.Address
	index     int
	state     connection.State
	processor application.Processor
}

// NewConnector builds a closed connector. limiter paces dial attempts and may be nil.
// onClose runs (under the connector lock) every time the connector is stopped.
func NewConnector(
	ctx context.Context,
	factory application.ProcessorFactory,
	listener application.ConnectListener,
	limiter *rate.Limiter,
	onClose func(),
	logger logging.Logger,
) *Connector {
	return &Connector{
		ctx:      ctx,
		factory:  factory,
		listener: listener,
		limiter:  limiter,
		onClose:  onClose,
		logger:   logger,
		index:    -1,
		state:    connection.Closed,
	}
}

func (c *Connector) SetAddresses(addresses []settings.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addresses = append([]settings.Address(nil), addresses...)
	c.index = -1
}

func (c *Connector) State() connection.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connector) IsConnected() bool {
	return c.State() == connection.Connected
}

func (c *Connector) Connect() {
	c.mu.Lock()
	failed := c.startConnect()
	c.mu.Unlock()
	c.notify(failed)
}

func (c *Connector) Reconnect() {
	c.mu.Lock()
	c.stopConnect()
	if c.index+1 >= len(c.addresses) || c.index+1 < 0 {
		c.index = -1
	}
	failed := c.startConnect()
	c.mu.Unlock()
	c.notify(failed)
}

func (c *Connector) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopConnect()
}

// CheckConnect starts a connection when idle and wakes the live processor when connected.
func (c *Connector) CheckConnect() {
	c.mu.Lock()
	var failed bool
	switch {
	case c.processor == nil:
		failed = c.startConnect()
	case c.state == connection.Closed:
		failed = c.startConnect()
	case c.state == connection.Connected:
		c.processor.WakeUp()
	}
	c.mu.Unlock()
	c.notify(failed)
}

// startConnect must be called with mu held. It reports whether the address list
// was exhausted, in which case the caller notifies the listener after unlocking.
func (c *Connector) startConnect() bool {
	if c.state != connection.Closed {
		return false
	}
	if c.ctx.Err() != nil {
		return false
	}

	c.index++
	if c.index >= 0 && c.index < len(c.addresses) {
		address := c.addresses[c.index]
		c.state = connection.Connecting
		c.processor = c.factory.NewProcessor(c.ctx, address, c.pacingDelay(), processorEvents{c: c})
		c.logger.Printf("connecting to %s (processor %d)", address, c.processor.ID())
		c.processor.Start()
		return false
	}

	c.index = -1
	return true
}

// stopConnect must be called with mu held.
func (c *Connector) stopConnect() {
	c.state = connection.Closed
	if c.onClose != nil {
		c.onClose()
	}

	if c.processor != nil {
		c.processor.Close()
		c.processor = nil
	}
}

func (c *Connector) pacingDelay() time.Duration {
	if c.limiter == nil {
		return 0
	}
	r := c.limiter.Reserve()
	if !r.OK() {
		return 0
	}
	return r.Delay()
}

func (c *Connector) notify(failed bool) {
	if failed && c.listener != nil {
		c.listener.OnConnectionFailed()
	}
}

func (c *Connector) onConnectSuccess(p application.Processor) {
	c.mu.Lock()
	if p != c.processor {
		c.mu.Unlock()
		p.Close()
		return
	}
	c.state = connection.Connected
	c.mu.Unlock()

	c.logger.Printf("processor %d connected", p.ID())
	if c.listener != nil {
		c.listener.OnConnectionSuccess()
	}
}

func (c *Connector) onConnectFailed(p application.Processor) {
	c.mu.Lock()
	if p != c.processor {
		c.mu.Unlock()
		p.Close()
		return
	}
	c.state = connection.Closed
	failed := c.startConnect()
	c.mu.Unlock()
	c.notify(failed)
}

// processorEvents keeps the ProcessorListener methods off the Connector's public API.
type processorEvents struct {
	c *Connector
}

func (e processorEvents) OnConnectSuccess(p application.Processor) {
	e.c.onConnectSuccess(p)
}

func (e processorEvents) OnConnectFailed(p application.Processor) {
	e.c.onConnectFailed(p)
}
