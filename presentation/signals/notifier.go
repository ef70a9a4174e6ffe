package signals

import "os"

type Notifier interface {
	// Subscribe relays sig to the returned channel until cancel is called.
	Subscribe(sig ...os.Signal) (ch <-chan os.Signal, cancel func())
}

// Handler turns OS signals into cancellation of the application context.
type Handler interface {
	Handle()
}
