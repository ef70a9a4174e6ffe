package framing

import (
	"bytes"
	"fmt"
	"sensocket/application"
)

// PassthroughCodec treats every read as one message: one datagram for UDP, one read() for raw TCP.
type PassthroughCodec struct {
	maxLen int
}

func (c *PassthroughCodec) Encode(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyFrame
	}
	if len(payload) > c.maxLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(payload), c.maxLen)
	}
	return bytes.Clone(payload), nil
}

func (c *PassthroughCodec) NewDecoder() application.FrameDecoder {
	return passthroughDecoder{}
}

type passthroughDecoder struct{}

func (passthroughDecoder) Feed(chunk []byte) ([][]byte, error) {
	if len(chunk) == 0 {
		return nil, nil
	}
	return [][]byte{bytes.Clone(chunk)}, nil
}
