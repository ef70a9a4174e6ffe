package client

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

type managerTestResolver struct {
	path string
	err  error
}

func (r *managerTestResolver) Resolve() (string, error) {
	return r.path, r.err
}

func TestManager_MissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	m, err := NewManager(&managerTestResolver{path: path})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.Path() != path {
		t.Fatalf("unexpected path %s", m.Path())
	}

	conf, err := m.Configuration()
	if err != nil {
		t.Fatalf("Configuration: %v", err)
	}
	if conf.WriteQueueSize != Default().WriteQueueSize {
		t.Fatal("expected default configuration")
	}
}

func TestManager_InvalidFileIsAnError(t *testing.T) {
	path := writeTempClientConfigFile(t, "{")
	m, _ := NewManager(&managerTestResolver{path: path})
	if _, err := m.Configuration(); err == nil {
		t.Fatal("expected error for a broken file")
	}
}

func TestManager_ResolveError(t *testing.T) {
	want := errors.New("no home")
	if _, err := NewManager(&managerTestResolver{err: want}); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestFlagResolver(t *testing.T) {
	fallback := &managerTestResolver{path: "/fallback.json"}

	got, _ := NewFlagResolver("/explicit.json", fallback).Resolve()
	if got != "/explicit.json" {
		t.Fatalf("expected explicit path, got %s", got)
	}
	got, _ = NewFlagResolver("", fallback).Resolve()
	if got != "/fallback.json" {
		t.Fatalf("expected fallback path, got %s", got)
	}
}

func TestDefaultResolver_UsesXDGConfigHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is honoured on linux only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := NewDefaultResolver().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(dir, "sensocket", fileName); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDefaultCreator_CreateThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", fileName)
	creator := NewDefaultCreator(&managerTestResolver{path: path})

	conf := Default()
	conf.Encryption = Encryption{Enabled: true, Key: "k"}
	written, err := creator.Create(conf)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if written != path {
		t.Fatalf("unexpected path %s", written)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Fatalf("expected 0600, got %v", info.Mode().Perm())
	}

	m, _ := NewManager(&managerTestResolver{path: path})
	read, err := m.Configuration()
	if err != nil {
		t.Fatalf("Configuration: %v", err)
	}
	if !read.Encryption.Enabled || read.Encryption.Key != "k" {
		t.Fatalf("unexpected encryption %+v", read.Encryption)
	}
}

func TestDefaultCreator_ResolveError(t *testing.T) {
	creator := NewDefaultCreator(&managerTestResolver{err: errors.New("boom")})
	if _, err := creator.Create(Default()); err == nil {
		t.Fatal("expected error")
	}
}
