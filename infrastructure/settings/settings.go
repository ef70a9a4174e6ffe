package settings

import (
	"errors"
	"fmt"
	"time"
)

// Settings describes how one protocol's clients reach their peers.
type Settings struct {
	Protocol      Protocol      `json:"Protocol"`
	Addresses     []Address     `json:"Addresses"`
	DialTimeoutMs DialTimeoutMs `json:"DialTimeoutMs"`
	Framing       Framing       `json:"Framing"`
	// ProxyURL is an optional socks5:// proxy for TCP dials.
	ProxyURL string `json:"ProxyURL,omitempty"`
	// UserTimeoutMs bounds unacknowledged TCP data where the platform supports it.
	UserTimeoutMs int `json:"UserTimeoutMs,omitempty"`
}

func (s Settings) Validate() error {
	if s.Protocol != TCP && s.Protocol != UDP {
		return fmt.Errorf("%w: %s", ErrInvalidProtocol, s.Protocol)
	}
	if len(s.Addresses) == 0 {
		return errors.New("at least one address is required")
	}
	if err := s.DialTimeoutMs.Validate(); err != nil {
		return err
	}
	framing := s.Framing.Resolve(s.Protocol)
	if s.Protocol == UDP && framing != FramingDatagram {
		return fmt.Errorf("%w: UDP supports only datagram framing, got %s", ErrInvalidFraming, framing)
	}
	if s.Protocol == TCP && framing == FramingDatagram {
		return fmt.Errorf("%w: TCP cannot use datagram framing", ErrInvalidFraming)
	}
	if s.Protocol == UDP && s.ProxyURL != "" {
		return errors.New("proxy is supported for TCP only")
	}
	return nil
}

// DialTimeout returns the configured dial timeout, DefaultDialTimeout when unset.
func (s Settings) DialTimeout() time.Duration {
	return s.DialTimeoutMs.Duration()
}
