package processor

import (
	"context"
	"sensocket/application"
	"sensocket/application/logging"
	"sensocket/infrastructure/settings"
	"sync"
	"sync/atomic"
	"time"
)

var nextID atomic.Uint64

// Processor performs a single connection attempt: wait, dial, serve, exit.
// It is never reused; the connector creates a new one for every attempt.
type Processor struct {
	id          uint64
	ctx         context.Context
	cancel      context.CancelFunc
	address     settings.Address
	delay       time.Duration
	dialTimeout time.Duration
	dialer      application.Dialer
	loop        application.IOLoop
	exchange    application.Exchange
	listener    application.ProcessorListener
	logger      logging.Logger

	startOnce sync.Once
	closeOnce sync.Once
}

func NewProcessor(
	ctx context.Context,
	address settings.Address,
	delay time.Duration,
	dialTimeout time.Duration,
	dialer application.Dialer,
	loop application.IOLoop,
	exchange application.Exchange,
	listener application.ProcessorListener,
	logger logging.Logger,
) *Processor {
	pctx, cancel := context.WithCancel(ctx)
	return &Processor{
		id:          nextID.Add(1),
		ctx:         pctx,
		cancel:      cancel,
		address:     address,
		delay:       delay,
		dialTimeout: dialTimeout,
		dialer:      dialer,
		loop:        loop,
		exchange:    exchange,
		listener:    listener,
		logger:      logger,
	}
}

func (p *Processor) ID() uint64 {
	return p.id
}

func (p *Processor) Start() {
	p.startOnce.Do(func() {
		go p.run()
	})
}

// Close cancels the attempt. The dial, the delay and the I/O loop all observe the
// same context, so the goroutine unwinds on its own.
func (p *Processor) Close() {
	p.closeOnce.Do(p.cancel)
}

func (p *Processor) WakeUp() {
	p.loop.WakeUp()
}

func (p *Processor) run() {
	defer p.exit()

	if !p.wait() {
		return
	}

	dialCtx, cancel := context.WithTimeout(p.ctx, p.dialTimeout)
	conn, err := p.dialer.Dial(dialCtx, p.address)
	cancel()
	if err != nil {
		if p.ctx.Err() == nil {
			p.logger.Printf("processor %d: failed to connect to %s: %v", p.id, p.address, err)
		}
		return
	}
	if p.ctx.Err() != nil {
		_ = conn.Close()
		return
	}

	p.listener.OnConnectSuccess(p)

	if serveErr := p.loop.Serve(p.ctx, conn, p.exchange); serveErr != nil {
		p.logger.Printf("processor %d: connection to %s lost: %v", p.id, p.address, serveErr)
	}
}

func (p *Processor) wait() bool {
	if p.delay <= 0 {
		return p.ctx.Err() == nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-p.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// exit reports every termination, including a clean shutdown after a successful connect.
func (p *Processor) exit() {
	p.Close()
	p.listener.OnConnectFailed(p)
}
