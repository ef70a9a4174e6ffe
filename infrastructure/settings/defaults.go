package settings

import "time"

const (
	DefaultPeerAddress    = "192.168.1.1:9999"
	DefaultDialTimeout    = 10 * time.Second
	DefaultDialTimeoutMs  = DialTimeoutMs(10000)
	DefaultWriteQueueSize = 1024
	DefaultPollInterval   = 50 * time.Millisecond
	// MaxMessageLengthBytes is the largest payload a u16 length prefix can carry.
	MaxMessageLengthBytes = 65535
	// ReadBufferSize fits any UDP datagram.
	ReadBufferSize = 64 * 1024
)

func DefaultTCPSettings() Settings {
	return Settings{
		Protocol:      TCP,
		Addresses:     []Address{MustParseAddress(DefaultPeerAddress)},
		DialTimeoutMs: DefaultDialTimeoutMs,
		Framing:       FramingLengthPrefix,
	}
}

func DefaultUDPSettings() Settings {
	return Settings{
		Protocol:      UDP,
		Addresses:     []Address{MustParseAddress(DefaultPeerAddress)},
		DialTimeoutMs: DefaultDialTimeoutMs,
		Framing:       FramingDatagram,
	}
}
