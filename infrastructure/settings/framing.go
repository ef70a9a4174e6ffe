package settings

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidFraming = errors.New("invalid framing")

// Framing selects how a byte stream is split into messages.
type Framing int

const (
	// FramingDefault resolves to LengthPrefix for TCP and Datagram for UDP.
	FramingDefault Framing = iota
	// FramingLengthPrefix is a u16 big-endian length followed by the payload.
	FramingLengthPrefix
	// FramingLine is a '\n'-terminated payload.
	FramingLine
	// FramingRaw delivers whatever a single read returned.
	FramingRaw
	// FramingDatagram treats every datagram as one message.
	FramingDatagram
)

// Resolve replaces FramingDefault with the protocol's natural framing.
func (f Framing) Resolve(p Protocol) Framing {
	if f != FramingDefault {
		return f
	}
	if p == UDP {
		return FramingDatagram
	}
	return FramingLengthPrefix
}

func (f Framing) String() string {
	switch f {
	case FramingDefault:
		return "default"
	case FramingLengthPrefix:
		return "length-prefix"
	case FramingLine:
		return "line"
	case FramingRaw:
		return "raw"
	case FramingDatagram:
		return "datagram"
	default:
		return ErrInvalidFraming.Error()
	}
}

func (f Framing) MarshalJSON() ([]byte, error) {
	if f < FramingDefault || f > FramingDatagram {
		return nil, ErrInvalidFraming
	}
	return json.Marshal(f.String())
}

func (f *Framing) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		*f = FramingDefault
	case "length-prefix":
		*f = FramingLengthPrefix
	case "line":
		*f = FramingLine
	case "raw":
		*f = FramingRaw
	case "datagram":
		*f = FramingDatagram
	default:
		return ErrInvalidFraming
	}
	return nil
}
