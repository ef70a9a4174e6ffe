package ioloop

import (
	"context"
	"net"
	"sensocket/application"
	"sensocket/infrastructure/settings"
	"sensocket/infrastructure/telemetry/trafficstats"

	"golang.org/x/sync/errgroup"
)

// BIOLoop serves a socket with one blocking reader and one writer goroutine.
// The first of them to fail closes the socket, which unblocks the other.
type BIOLoop struct {
	writeTimeout Deadline
	stats        *trafficstats.Collector
	wake         chan struct{}
}

func NewBIOLoop(writeTimeout Deadline, stats *trafficstats.Collector) *BIOLoop {
	return &BIOLoop{
		writeTimeout: writeTimeout,
		stats:        stats,
		wake:         make(chan struct{}, 1),
	}
}

// Serve owns conn and closes it before returning.
func (l *BIOLoop) Serve(ctx context.Context, conn net.Conn, exchange application.Exchange) error {
	defer func() { _ = conn.Close() }()

	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() { _ = conn.Close() })
	defer stop()

	g.Go(func() error {
		return l.read(conn, exchange)
	})
	g.Go(func() error {
		return l.write(gctx, conn, exchange)
	})

	return result(ctx, g.Wait())
}

func (l *BIOLoop) WakeUp() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *BIOLoop) read(conn net.Conn, exchange application.Exchange) error {
	decoder := exchange.NewDecoder()
	buf := make([]byte, settings.ReadBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			if deliverErr := deliver(buf[:n], decoder, exchange, l.stats); deliverErr != nil {
				return deliverErr
			}
		}
		if err != nil {
			return err
		}
	}
}

func (l *BIOLoop) write(ctx context.Context, conn net.Conn, exchange application.Exchange) error {
	for {
		if err := flush(conn, exchange, l.writeTimeout, l.stats); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-exchange.Pending():
		case <-l.wake:
		}
	}
}

type BIOFactory struct {
	writeTimeout Deadline
	stats        *trafficstats.Collector
}

func NewBIOFactory(writeTimeout Deadline, stats *trafficstats.Collector) application.IOLoopFactory {
	return &BIOFactory{
		writeTimeout: writeTimeout,
		stats:        stats,
	}
}

func (f *BIOFactory) NewLoop() application.IOLoop {
	return NewBIOLoop(f.writeTimeout, f.stats)
}
