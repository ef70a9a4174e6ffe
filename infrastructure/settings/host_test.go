package settings

import (
	"net/netip"
	"testing"
)

func TestNewHost_IPv4(t *testing.T) {
	h, err := NewHost("192.0.2.10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.IsIP() {
		t.Fatal("expected host to be IP")
	}
	ip, ok := h.IP()
	if !ok || ip != netip.MustParseAddr("192.0.2.10") {
		t.Fatalf("unexpected ip: %v, ok=%v", ip, ok)
	}
}

func TestNewHost_BracketedIPv6(t *testing.T) {
	h, err := NewHost("[2001:db8::1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	endpoint, err := h.Endpoint(9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if endpoint != "[2001:db8::1]:9999" {
		t.Fatalf("unexpected endpoint %q", endpoint)
	}
}

func TestNewHost_Domain(t *testing.T) {
	h, err := NewHost("ECHO.Example.COM.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.IsIP() {
		t.Fatal("expected host to be domain")
	}
	domain, ok := h.Domain()
	if !ok || domain != "echo.example.com" {
		t.Fatalf("unexpected domain: %q, ok=%v", domain, ok)
	}
}

func TestNewHost_Invalid(t *testing.T) {
	for _, raw := range []string{"https://example.com", "-bad.example", "a b"} {
		if _, err := NewHost(raw); err == nil {
			t.Fatalf("expected validation error for %q", raw)
		}
	}
}

func TestNewHost_EmptyIsZero(t *testing.T) {
	h, err := NewHost("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.IsZero() {
		t.Fatal("expected zero host")
	}
	if _, err := h.Endpoint(80); err == nil {
		t.Fatal("expected error for empty host endpoint")
	}
}
