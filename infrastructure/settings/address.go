package settings

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Address is one peer endpoint a connector may dial.
type Address struct {
	Host Host
	Port int
}

// ParseAddress parses "host:port"; IPv6 literals must be bracketed.
func ParseAddress(raw string) (Address, error) {
	hostPart, portPart, splitErr := net.SplitHostPort(strings.TrimSpace(raw))
	if splitErr != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", raw, splitErr)
	}

	host, hostErr := NewHost(hostPart)
	if hostErr != nil {
		return Address{}, hostErr
	}
	if host.IsZero() {
		return Address{}, fmt.Errorf("invalid address %q: empty host", raw)
	}

	port, portErr := strconv.Atoi(portPart)
	if portErr != nil {
		return Address{}, fmt.Errorf("invalid address %q: port is not a number", raw)
	}
	if err := validatePort(port); err != nil {
		return Address{}, err
	}

	return Address{Host: host, Port: port}, nil
}

// MustParseAddress is ParseAddress for literals known to be valid.
func MustParseAddress(raw string) Address {
	a, err := ParseAddress(raw)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	endpoint, err := a.Host.Endpoint(a.Port)
	if err != nil {
		return ""
	}
	return endpoint
}

func (a Address) MarshalJSON() ([]byte, error) {
	endpoint, err := a.Host.Endpoint(a.Port)
	if err != nil {
		return nil, err
	}
	return json.Marshal(endpoint)
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("address must be a \"host:port\" string: %w", err)
	}
	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// EqualAddresses reports whether both lists name the same endpoints in the same order.
func EqualAddresses(a, b []Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}
