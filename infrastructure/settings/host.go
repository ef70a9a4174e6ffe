package settings

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// Host is a peer host: either an IP address or a normalized domain name.
// A zero Host has neither.
type Host struct {
	domain string
	ip     netip.Addr
}

// NewHost parses an IPv4/IPv6 literal (brackets allowed) or a domain name.
// Empty string returns a zero Host.
func NewHost(raw string) (Host, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Host{}, nil
	}

	if ip, ok := parseHostIP(trimmed); ok {
		return Host{ip: ip}, nil
	}

	domain, ok := normalizeDomain(trimmed)
	if !ok {
		return Host{}, fmt.Errorf("invalid host %q: expected IP address or domain name", raw)
	}

	return Host{domain: domain}, nil
}

func (h Host) String() string {
	if h.domain != "" {
		return h.domain
	}
	if h.ip.IsValid() {
		return h.ip.String()
	}
	return ""
}

func (h Host) IsZero() bool {
	return h.domain == "" && !h.ip.IsValid()
}

func (h Host) IsIP() bool {
	return h.ip.IsValid()
}

func (h Host) IP() (netip.Addr, bool) {
	return h.ip, h.ip.IsValid()
}

func (h Host) Domain() (string, bool) {
	return h.domain, h.domain != ""
}

// Endpoint returns host:port, bracketing IPv6 literals.
func (h Host) Endpoint(port int) (string, error) {
	if h.IsZero() {
		return "", fmt.Errorf("empty host")
	}
	if err := validatePort(port); err != nil {
		return "", err
	}
	return net.JoinHostPort(h.String(), strconv.Itoa(port)), nil
}

func parseHostIP(raw string) (netip.Addr, bool) {
	ip, err := netip.ParseAddr(strings.Trim(raw, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}
	return nil
}

func normalizeDomain(raw string) (string, bool) {
	domain := strings.ToLower(strings.TrimSpace(raw))
	domain = strings.TrimSuffix(domain, ".")
	if domain == "" || len(domain) > 253 {
		return "", false
	}
	if strings.ContainsAny(domain, " \t\n\r/:?#[]@\\") {
		return "", false
	}
	for _, label := range strings.Split(domain, ".") {
		if !isValidDomainLabel(label) {
			return "", false
		}
	}
	return domain, true
}

func isValidDomainLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, c := range label {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return false
	}
	return true
}
