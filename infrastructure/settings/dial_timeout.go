package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDialTimeout = errors.New("invalid dial timeout")

// DialTimeoutMs bounds a single connect attempt. Zero means DefaultDialTimeout.
//
// In JSON it is either a number of milliseconds or a duration string like "1500ms" or "2s".
type DialTimeoutMs int

func (d DialTimeoutMs) Validate() error {
	if d < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDialTimeout, int(d))
	}
	return nil
}

func (d DialTimeoutMs) Duration() time.Duration {
	if d <= 0 {
		return DefaultDialTimeout
	}
	return time.Duration(d) * time.Millisecond
}

func (d *DialTimeoutMs) UnmarshalJSON(data []byte) error {
	var ms int
	if err := json.Unmarshal(data, &ms); err == nil {
		*d = DialTimeoutMs(ms)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDialTimeout, data)
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDialTimeout, err)
	}
	if parsed%time.Millisecond != 0 {
		return fmt.Errorf("%w: %s is not a whole number of milliseconds", ErrInvalidDialTimeout, text)
	}
	*d = DialTimeoutMs(parsed / time.Millisecond)
	return nil
}
