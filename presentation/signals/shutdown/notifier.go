package shutdown

import (
	"os"
	"os/signal"
	"sync"
)

// Notifier subscribes through os/signal. Each subscription owns a channel with room for
// one pending signal, since os/signal drops what it cannot deliver without blocking.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe with no signals returns a channel that never fires; os/signal would
// otherwise relay every incoming signal.
func (n *Notifier) Subscribe(sig ...os.Signal) (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	if len(sig) == 0 {
		return ch, func() {}
	}
	signal.Notify(ch, sig...)
	var once sync.Once
	return ch, func() { once.Do(func() { signal.Stop(ch) }) }
}
