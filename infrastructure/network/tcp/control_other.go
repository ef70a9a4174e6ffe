//go:build !linux

package tcp

import (
	"syscall"
	"time"
)

func userTimeoutControl(_ time.Duration) func(network, address string, c syscall.RawConn) error {
	return nil
}
