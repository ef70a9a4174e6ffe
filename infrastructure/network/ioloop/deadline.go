package ioloop

import (
	"errors"
	"net"
	"time"
)

var ErrInvalidDuration = errors.New("invalid duration")

// Deadline is a per-operation timeout. Zero means no deadline.
type Deadline time.Duration

func NewDeadline(d time.Duration) (Deadline, error) {
	if d < 0 {
		return 0, ErrInvalidDuration
	}
	return Deadline(d), nil
}

func (d Deadline) Time() time.Time {
	if d == 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(d))
}

func (d Deadline) ArmWrite(conn net.Conn) error {
	return conn.SetWriteDeadline(d.Time())
}
