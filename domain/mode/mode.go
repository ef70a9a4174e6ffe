package mode

import "strings"

type Mode int

const (
	Unknown Mode = iota
	// TcpNio is a TCP client driven by a single event-loop goroutine
	TcpNio
	// TcpBio is a TCP client with blocking reader and writer goroutines
	TcpBio
	// UdpNio is a connected UDP client driven by a single event-loop goroutine
	UdpNio
	// UdpBio is a connected UDP client with blocking reader and writer goroutines
	UdpBio
)

// All returns the selectable modes in display order.
func All() []Mode {
	return []Mode{TcpNio, TcpBio, UdpNio, UdpBio}
}

// Parse resolves a routing key into a Mode. Canonical names ("tcp-nio") and the
// legacy fragment names ("TcpNioClientFragment") are accepted, case-insensitively.
func Parse(raw string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return Unknown, NewNoModeProvided()
	}

	switch key {
	case "tcp-nio", "tcpnio", "tcpnioclientfragment":
		return TcpNio, nil
	case "tcp-bio", "tcpbio", "tcpbioclientfragment":
		return TcpBio, nil
	case "udp-nio", "udpnio", "udpnioclientfragment":
		return UdpNio, nil
	case "udp-bio", "udpbio", "udpbioclientfragment":
		return UdpBio, nil
	default:
		return Unknown, NewInvalidModeProvided(strings.TrimSpace(raw))
	}
}

func (m Mode) String() string {
	switch m {
	case TcpNio:
		return "tcp-nio"
	case TcpBio:
		return "tcp-bio"
	case UdpNio:
		return "udp-nio"
	case UdpBio:
		return "udp-bio"
	default:
		return "unknown"
	}
}

// Network returns the net package network name for the mode, or "" for Unknown.
func (m Mode) Network() string {
	switch m {
	case TcpNio, TcpBio:
		return "tcp"
	case UdpNio, UdpBio:
		return "udp"
	default:
		return ""
	}
}

// Blocking reports whether the mode uses one blocking goroutine per direction.
func (m Mode) Blocking() bool {
	return m == TcpBio || m == UdpBio
}

func (m Mode) IsValid() bool {
	return m >= TcpNio && m <= UdpBio
}
