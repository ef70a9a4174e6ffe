package trafficstats

import (
	"context"
	"sync/atomic"
	"time"
)

// Snapshot is a point-in-time copy of a client's traffic counters.
type Snapshot struct {
	RXBytesTotal    uint64
	TXBytesTotal    uint64
	RXMessagesTotal uint64
	TXMessagesTotal uint64
	RXRate          uint64 // bytes/sec
	TXRate          uint64 // bytes/sec
}

// Collector counts wire bytes and messages for one client. Counting is lock-free;
// rates are sampled by the goroutine running Start.
type Collector struct {
	rxBytesTotal    atomic.Uint64
	txBytesTotal    atomic.Uint64
	rxMessagesTotal atomic.Uint64
	txMessagesTotal atomic.Uint64
	rxRate          atomic.Uint64
	txRate          atomic.Uint64

	sampleInterval time.Duration
	emaAlpha       float64

	// accessed only from the single sampler goroutine in Start()
	lastRX  uint64
	lastTX  uint64
	rxEMA   float64
	txEMA   float64
	started atomic.Bool
}

func NewCollector(sampleInterval time.Duration, emaAlpha float64) *Collector {
	if sampleInterval <= 0 {
		sampleInterval = time.Second
	}
	if emaAlpha < 0 {
		emaAlpha = 0
	}
	if emaAlpha > 1 {
		emaAlpha = 1
	}
	return &Collector{
		sampleInterval: sampleInterval,
		emaAlpha:       emaAlpha,
	}
}

// Start samples rates until ctx is done. Only the first call samples; later calls return at once.
func (c *Collector) Start(ctx context.Context) {
	if !c.started.CompareAndSwap(false, true) {
		return
	}

	ticker := time.NewTicker(c.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.updateRates(c.sampleInterval)
		}
	}
}

func (c *Collector) AddRX(bytes int) {
	if c == nil || bytes <= 0 {
		return
	}
	c.rxBytesTotal.Add(uint64(bytes))
}

func (c *Collector) AddTX(bytes int) {
	if c == nil || bytes <= 0 {
		return
	}
	c.txBytesTotal.Add(uint64(bytes))
}

func (c *Collector) AddRXMessages(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.rxMessagesTotal.Add(uint64(n))
}

func (c *Collector) AddTXMessages(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.txMessagesTotal.Add(uint64(n))
}

func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		RXBytesTotal:    c.rxBytesTotal.Load(),
		TXBytesTotal:    c.txBytesTotal.Load(),
		RXMessagesTotal: c.rxMessagesTotal.Load(),
		TXMessagesTotal: c.txMessagesTotal.Load(),
		RXRate:          c.rxRate.Load(),
		TXRate:          c.txRate.Load(),
	}
}

func (c *Collector) updateRates(interval time.Duration) {
	seconds := interval.Seconds()
	if seconds <= 0 {
		return
	}

	rxNow := c.rxBytesTotal.Load()
	txNow := c.txBytesTotal.Load()

	rxPerSec := float64(rxNow-c.lastRX) / seconds
	txPerSec := float64(txNow-c.lastTX) / seconds
	c.lastRX = rxNow
	c.lastTX = txNow

	if c.emaAlpha > 0 {
		c.rxEMA = smooth(c.rxEMA, rxPerSec, c.emaAlpha)
		c.txEMA = smooth(c.txEMA, txPerSec, c.emaAlpha)
		rxPerSec = c.rxEMA
		txPerSec = c.txEMA
	}

	c.rxRate.Store(uint64(rxPerSec))
	c.txRate.Store(uint64(txPerSec))
}

// smooth seeds the average with the first sample instead of decaying from zero.
func smooth(prev, sample, alpha float64) float64 {
	if prev == 0 {
		return sample
	}
	return alpha*sample + (1-alpha)*prev
}
