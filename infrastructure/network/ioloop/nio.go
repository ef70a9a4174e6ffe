package ioloop

import (
	"context"
	"errors"
	"net"
	"os"
	"sensocket/application"
	"sensocket/infrastructure/settings"
	"sensocket/infrastructure/telemetry/trafficstats"
	"sync"
	"time"
)

// NIOLoop serves a socket from a single goroutine. Reads use a short deadline so the
// goroutine regularly returns to the write queue; WakeUp cuts the current wait short.
type NIOLoop struct {
	pollInterval time.Duration
	writeTimeout Deadline
	stats        *trafficstats.Collector

	mu   sync.Mutex
	conn net.Conn
}

func NewNIOLoop(pollInterval time.Duration, writeTimeout Deadline, stats *trafficstats.Collector) *NIOLoop {
	if pollInterval <= 0 {
		pollInterval = settings.DefaultPollInterval
	}
	return &NIOLoop{
		pollInterval: pollInterval,
		writeTimeout: writeTimeout,
		stats:        stats,
	}
}

// Serve owns conn and closes it before returning.
func (l *NIOLoop) Serve(ctx context.Context, conn net.Conn, exchange application.Exchange) error {
	defer func() { _ = conn.Close() }()
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	l.attach(conn)
	defer l.attach(nil)

	decoder := exchange.NewDecoder()
	buf := make([]byte, settings.ReadBufferSize)
	for {
		if ctx.Err() != nil {
			return nil
		}
		// arm before flushing, so a WakeUp racing with the flush still ends the read early
		if err := conn.SetReadDeadline(time.Now().Add(l.pollInterval)); err != nil {
			return result(ctx, err)
		}
		l.drainToken(exchange)
		if err := flush(conn, exchange, l.writeTimeout, l.stats); err != nil {
			return result(ctx, err)
		}

		n, err := conn.Read(buf)
		if n > 0 {
			if deliverErr := deliver(buf[:n], decoder, exchange, l.stats); deliverErr != nil {
				return result(ctx, deliverErr)
			}
		}
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}
			return result(ctx, err)
		}
	}
}

func (l *NIOLoop) WakeUp() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.SetReadDeadline(time.Now())
	}
}

func (l *NIOLoop) attach(conn net.Conn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conn = conn
}

// drainToken consumes a pending token without blocking; the flush that follows
// empties the queue anyway.
func (l *NIOLoop) drainToken(exchange application.Exchange) {
	select {
	case <-exchange.Pending():
	default:
	}
}

type NIOFactory struct {
	pollInterval time.Duration
	writeTimeout Deadline
	stats        *trafficstats.Collector
}

func NewNIOFactory(pollInterval time.Duration, writeTimeout Deadline, stats *trafficstats.Collector) application.IOLoopFactory {
	return &NIOFactory{
		pollInterval: pollInterval,
		writeTimeout: writeTimeout,
		stats:        stats,
	}
}

func (f *NIOFactory) NewLoop() application.IOLoop {
	return NewNIOLoop(f.pollInterval, f.writeTimeout, f.stats)
}
