package framing

import "errors"

var (
	ErrEmptyFrame    = errors.New("empty frame")
	ErrFrameTooLarge = errors.New("frame too large")
	ErrLineBreak     = errors.New("payload contains a line break")
)
