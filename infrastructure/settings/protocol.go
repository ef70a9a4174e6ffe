package settings

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidProtocol = errors.New("invalid protocol")
)

// Protocol specifies the transport protocol
type Protocol int

const (
	UNKNOWN Protocol = iota
	TCP
	UDP
)

func (p Protocol) MarshalJSON() ([]byte, error) {
	switch p {
	case UNKNOWN, TCP, UDP:
		return json.Marshal(p.String())
	default:
		return nil, ErrInvalidProtocol
	}
}

func (p *Protocol) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToUpper(s) {
	case "UNKNOWN":
		*p = UNKNOWN
	case "TCP":
		*p = TCP
	case "UDP":
		*p = UDP
	default:
		return ErrInvalidProtocol
	}
	return nil
}

func (p Protocol) String() string {
	switch p {
	case UNKNOWN:
		return "UNKNOWN"
	case TCP:
		return "TCP"
	case UDP:
		return "UDP"
	default:
		return ErrInvalidProtocol.Error()
	}
}
