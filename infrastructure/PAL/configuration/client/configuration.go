package client

import (
	"errors"
	"fmt"
	"sensocket/domain/mode"
	"sensocket/infrastructure/settings"
	"time"
)

const (
	DefaultReconnectIntervalMs = 3000
	DefaultReconnectBurst      = 3
	DefaultWriteTimeoutMs      = 10000
)

type Configuration struct {
	TCPSettings    settings.Settings `json:"TCPSettings"`
	UDPSettings    settings.Settings `json:"UDPSettings"`
	WriteQueueSize int               `json:"WriteQueueSize"`
	PollIntervalMs int               `json:"PollIntervalMs"`
	// WriteTimeoutMs bounds a single NIO write; BIO writes block without a deadline.
	WriteTimeoutMs int        `json:"WriteTimeoutMs"`
	Reconnect      Reconnect  `json:"Reconnect"`
	Encryption     Encryption `json:"Encryption"`
}

// Reconnect controls what happens once every address has failed, and how fast dials may follow each other.
type Reconnect struct {
	Enabled    bool `json:"Enabled"`
	IntervalMs int  `json:"IntervalMs"`
	// Burst is the number of dials allowed back to back before pacing kicks in.
	Burst int `json:"Burst"`
}

type Encryption struct {
	Enabled bool `json:"Enabled"`
	// Key is the pre-shared passphrase; both peers must use the same one.
	Key string `json:"Key,omitempty"`
}

func Default() Configuration {
	return Configuration{
		TCPSettings:    settings.DefaultTCPSettings(),
		UDPSettings:    settings.DefaultUDPSettings(),
		WriteQueueSize: settings.DefaultWriteQueueSize,
		PollIntervalMs: int(settings.DefaultPollInterval / time.Millisecond),
		WriteTimeoutMs: DefaultWriteTimeoutMs,
		Reconnect: Reconnect{
			Enabled:    true,
			IntervalMs: DefaultReconnectIntervalMs,
			Burst:      DefaultReconnectBurst,
		},
	}
}

// ApplyDefaults fills zero values left by a partial file.
func (c *Configuration) ApplyDefaults() {
	defaults := Default()
	applySettingsDefaults(&c.TCPSettings, defaults.TCPSettings)
	applySettingsDefaults(&c.UDPSettings, defaults.UDPSettings)
	if c.WriteQueueSize == 0 {
		c.WriteQueueSize = defaults.WriteQueueSize
	}
	if c.PollIntervalMs == 0 {
		c.PollIntervalMs = defaults.PollIntervalMs
	}
	if c.WriteTimeoutMs == 0 {
		c.WriteTimeoutMs = defaults.WriteTimeoutMs
	}
	if c.Reconnect.IntervalMs == 0 {
		c.Reconnect.IntervalMs = defaults.Reconnect.IntervalMs
	}
	if c.Reconnect.Burst == 0 {
		c.Reconnect.Burst = defaults.Reconnect.Burst
	}
}

func applySettingsDefaults(s *settings.Settings, defaults settings.Settings) {
	if s.Protocol == settings.UNKNOWN {
		s.Protocol = defaults.Protocol
	}
	if len(s.Addresses) == 0 {
		s.Addresses = defaults.Addresses
	}
	if s.DialTimeoutMs == 0 {
		s.DialTimeoutMs = defaults.DialTimeoutMs
	}
}

// Validate checks that the configuration can build a client for every mode.
func (c *Configuration) Validate() error {
	if c.TCPSettings.Protocol != settings.TCP {
		return fmt.Errorf("TCPSettings: protocol must be TCP, got %s", c.TCPSettings.Protocol)
	}
	if err := c.TCPSettings.Validate(); err != nil {
		return fmt.Errorf("TCPSettings: %w", err)
	}
	if c.UDPSettings.Protocol != settings.UDP {
		return fmt.Errorf("UDPSettings: protocol must be UDP, got %s", c.UDPSettings.Protocol)
	}
	if err := c.UDPSettings.Validate(); err != nil {
		return fmt.Errorf("UDPSettings: %w", err)
	}
	if c.WriteQueueSize <= 0 {
		return fmt.Errorf("invalid WriteQueueSize %d: must be > 0", c.WriteQueueSize)
	}
	if c.PollIntervalMs < 0 {
		return fmt.Errorf("invalid PollIntervalMs %d", c.PollIntervalMs)
	}
	if c.WriteTimeoutMs < 0 {
		return fmt.Errorf("invalid WriteTimeoutMs %d", c.WriteTimeoutMs)
	}
	if c.Reconnect.IntervalMs < 0 || c.Reconnect.Burst < 0 {
		return fmt.Errorf("invalid Reconnect %+v", c.Reconnect)
	}
	if c.Encryption.Enabled && c.Encryption.Key == "" {
		return errors.New("encryption is enabled but no Key is configured")
	}
	if c.Encryption.Enabled {
		if err := sealable(c.TCPSettings); err != nil {
			return fmt.Errorf("TCPSettings: %w", err)
		}
	}
	return nil
}

// sealable rejects framings that cannot carry sealed payloads: a line frame breaks on
// ciphertext bytes equal to '\n', and raw reads do not keep seal boundaries.
func sealable(s settings.Settings) error {
	switch framing := s.Framing.Resolve(s.Protocol); framing {
	case settings.FramingLine, settings.FramingRaw:
		return fmt.Errorf("%w: encryption needs length-prefix framing, got %s", settings.ErrInvalidFraming, framing)
	default:
		return nil
	}
}

// SettingsFor returns the protocol settings used by clients of m.
func (c *Configuration) SettingsFor(m mode.Mode) (settings.Settings, error) {
	switch m.Network() {
	case "tcp":
		return c.TCPSettings, nil
	case "udp":
		return c.UDPSettings, nil
	default:
		return settings.Settings{}, mode.NewInvalidModeProvided(m.String())
	}
}

// SetAddresses replaces the address list of the protocol used by m.
func (c *Configuration) SetAddresses(m mode.Mode, addresses []settings.Address) error {
	switch m.Network() {
	case "tcp":
		c.TCPSettings.Addresses = append([]settings.Address(nil), addresses...)
	case "udp":
		c.UDPSettings.Addresses = append([]settings.Address(nil), addresses...)
	default:
		return mode.NewInvalidModeProvided(m.String())
	}
	return nil
}

func (c *Configuration) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (c *Configuration) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMs) * time.Millisecond
}

func (c *Configuration) ReconnectInterval() time.Duration {
	return time.Duration(c.Reconnect.IntervalMs) * time.Millisecond
}
