package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Creator interface {
	// Create writes configuration to the resolved path and returns that path.
	Create(configuration Configuration) (string, error)
}

type DefaultCreator struct {
	resolver Resolver
}

func NewDefaultCreator(resolver Resolver) Creator {
	return &DefaultCreator{
		resolver: resolver,
	}
}

func (d *DefaultCreator) Create(configuration Configuration) (string, error) {
	serialized, serializedErr := json.MarshalIndent(configuration, "", "\t")
	if serializedErr != nil {
		return "", serializedErr
	}

	confPath, confPathErr := d.resolver.Resolve()
	if confPathErr != nil {
		return "", confPathErr
	}

	mkdirErr := os.MkdirAll(filepath.Dir(confPath), 0700)
	if mkdirErr != nil {
		return "", mkdirErr
	}

	// the file may hold the pre-shared key
	writeErr := os.WriteFile(confPath, serialized, 0600)
	if writeErr != nil {
		return "", writeErr
	}

	return confPath, nil
}
