package signal

import (
	"os"
	"syscall"
	"testing"
)

func TestShutdownSignals_IncludeInterrupt(t *testing.T) {
	for _, sig := range NewDefaultProvider().ShutdownSignals() {
		if sig == os.Interrupt {
			return
		}
	}
	t.Fatal("os.Interrupt must end the run on every platform")
}

func TestShutdownSignals_ReturnsCopy(t *testing.T) {
	p := NewDefaultProvider()
	first := p.ShutdownSignals()
	first[0] = syscall.Signal(0)

	if got := p.ShutdownSignals()[0]; got != os.Interrupt {
		t.Fatalf("provider table was modified through a returned slice: %v", got)
	}
}
