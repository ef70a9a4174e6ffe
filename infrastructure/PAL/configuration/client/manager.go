package client

import (
	"errors"
	"fmt"
	"io/fs"
)

type ConfigurationManager interface {
	// Configuration reads the file; a missing file yields Default().
	Configuration() (*Configuration, error)
	Path() string
}

type Manager struct {
	path   string
	reader *reader
}

func NewManager(resolver Resolver) (ConfigurationManager, error) {
	path, pathErr := resolver.Resolve()
	if pathErr != nil {
		return nil, fmt.Errorf("failed to resolve client configuration path: %w", pathErr)
	}

	return &Manager{
		path:   path,
		reader: newReader(path),
	}, nil
}

func (m *Manager) Configuration() (*Configuration, error) {
	configuration, err := m.reader.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			defaults := Default()
			return &defaults, nil
		}
		return nil, err
	}
	return configuration, nil
}

func (m *Manager) Path() string {
	return m.path
}
