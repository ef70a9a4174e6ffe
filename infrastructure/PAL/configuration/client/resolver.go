package client

import (
	"os"
	"path/filepath"
)

const fileName = "client_configuration.json"

// Resolver resolves a configuration file path.
type Resolver interface {
	Resolve() (string, error)
}

// DefaultResolver points at the per-user configuration directory,
// $XDG_CONFIG_HOME/sensocket on Linux.
type DefaultResolver struct {
}

func NewDefaultResolver() DefaultResolver {
	return DefaultResolver{}
}

func (r DefaultResolver) Resolve() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sensocket", fileName), nil
}

// FlagResolver prefers an explicit --config path and falls back to resolver.
type FlagResolver struct {
	path     string
	resolver Resolver
}

func NewFlagResolver(path string, resolver Resolver) Resolver {
	return &FlagResolver{
		path:     path,
		resolver: resolver,
	}
}

func (f *FlagResolver) Resolve() (string, error) {
	if f.path != "" {
		return f.path, nil
	}
	return f.resolver.Resolve()
}
