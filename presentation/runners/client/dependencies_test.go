package client

import (
	"path/filepath"
	"sensocket/domain/mode"
	clientConfiguration "sensocket/infrastructure/PAL/configuration/client"
	"sensocket/infrastructure/settings"
	"testing"
)

func newTestManager(t *testing.T) clientConfiguration.ConfigurationManager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client_configuration.json")
	manager, err := clientConfiguration.NewManager(clientConfiguration.NewFlagResolver(path, nil))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return manager
}

func TestDependencies_InitializeWithDefaults(t *testing.T) {
	manager := newTestManager(t)
	deps := NewDependencies(manager, nil, runnerTestLogger{})

	if err := deps.Initialize(mode.TcpNio); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if deps.ClientFactory() == nil || deps.Stats() == nil {
		t.Fatal("expected factory and stats")
	}
	if deps.ConfigurationManager() != manager {
		t.Fatal("configuration must be watched without address overrides")
	}
	want := []settings.Address{settings.MustParseAddress(settings.DefaultPeerAddress)}
	if !settings.EqualAddresses(deps.Configuration().TCPSettings.Addresses, want) {
		t.Fatalf("unexpected addresses %v", deps.Configuration().TCPSettings.Addresses)
	}
}

func TestDependencies_AddressOverridesApplyToActiveProtocol(t *testing.T) {
	deps := NewDependencies(newTestManager(t), []string{"127.0.0.1:7000", "example.com:7001"}, runnerTestLogger{})

	if err := deps.Initialize(mode.UdpBio); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	conf := deps.Configuration()
	want := []settings.Address{
		settings.MustParseAddress("127.0.0.1:7000"),
		settings.MustParseAddress("example.com:7001"),
	}
	if !settings.EqualAddresses(conf.UDPSettings.Addresses, want) {
		t.Fatalf("unexpected UDP addresses %v", conf.UDPSettings.Addresses)
	}
	if !settings.EqualAddresses(conf.TCPSettings.Addresses, clientConfiguration.Default().TCPSettings.Addresses) {
		t.Fatalf("TCP addresses must be untouched, got %v", conf.TCPSettings.Addresses)
	}
	if deps.ConfigurationManager() != nil {
		t.Fatal("configuration must not be watched with address overrides")
	}
}

func TestDependencies_InvalidOverride(t *testing.T) {
	deps := NewDependencies(newTestManager(t), []string{"no-port"}, runnerTestLogger{})
	if err := deps.Initialize(mode.TcpBio); err == nil {
		t.Fatal("expected error for an address without port")
	}
}
