package ioloop

import (
	"context"
	"net"
	"sensocket/application"
	"sensocket/infrastructure/telemetry/trafficstats"
)

// deliver feeds one read chunk to the decoder and hands every completed frame to the exchange.
func deliver(
	chunk []byte,
	decoder application.FrameDecoder,
	exchange application.Exchange,
	stats *trafficstats.Collector,
) error {
	stats.AddRX(len(chunk))
	frames, err := decoder.Feed(chunk)
	stats.AddRXMessages(len(frames))
	for _, frame := range frames {
		if receiveErr := exchange.Receive(frame); receiveErr != nil {
			return receiveErr
		}
	}
	return err
}

// flush writes every queued frame. A failed write drops that frame.
func flush(conn net.Conn, exchange application.Exchange, deadline Deadline, stats *trafficstats.Collector) error {
	for {
		frame, ok := exchange.Next()
		if !ok {
			return nil
		}
		if err := deadline.ArmWrite(conn); err != nil {
			return err
		}
		n, err := conn.Write(frame)
		stats.AddTX(n)
		if err != nil {
			return err
		}
		stats.AddTXMessages(1)
	}
}

// result maps a socket error to Serve's contract: nil once ctx is cancelled.
func result(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return err
}
