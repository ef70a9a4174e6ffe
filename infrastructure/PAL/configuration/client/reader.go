package client

import (
	"encoding/json"
	"fmt"
	"os"
)

type reader struct {
	path string
}

func newReader(path string) *reader {
	return &reader{
		path: path,
	}
}

// read decodes the file over Default(), so keys absent from the file keep their default value.
func (c *reader) read() (*Configuration, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, err
	}

	configuration := Default()
	if err := json.Unmarshal(data, &configuration); err != nil {
		return nil, fmt.Errorf("invalid client configuration (%s): %w", c.path, err)
	}
	configuration.ApplyDefaults()

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client configuration (%s): %w", c.path, err)
	}

	return &configuration, nil
}
