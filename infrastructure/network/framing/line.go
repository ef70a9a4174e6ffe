package framing

import (
	"bytes"
	"fmt"
	"sensocket/application"
)

// LineCodec frames each message as a '\n'-terminated line. A trailing '\r' is stripped on decode.
type LineCodec struct {
	maxLen int
}

func (c *LineCodec) Encode(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyFrame
	}
	if len(payload) > c.maxLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(payload), c.maxLen)
	}
	if bytes.IndexByte(payload, '\n') >= 0 {
		return nil, ErrLineBreak
	}
	frame := make([]byte, len(payload)+1)
	copy(frame, payload)
	frame[len(payload)] = '\n'
	return frame, nil
}

func (c *LineCodec) NewDecoder() application.FrameDecoder {
	return &lineDecoder{maxLen: c.maxLen}
}

type lineDecoder struct {
	maxLen  int
	pending []byte
}

func (d *lineDecoder) Feed(chunk []byte) ([][]byte, error) {
	d.pending = append(d.pending, chunk...)

	var lines [][]byte
	offset := 0
	for {
		i := bytes.IndexByte(d.pending[offset:], '\n')
		if i < 0 {
			break
		}
		line := bytes.TrimSuffix(d.pending[offset:offset+i], []byte{'\r'})
		offset += i + 1
		if len(line) == 0 {
			continue
		}
		if len(line) > d.maxLen {
			d.pending = nil
			return lines, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(line), d.maxLen)
		}
		lines = append(lines, bytes.Clone(line))
	}

	d.pending = compact(d.pending, offset)
	if len(d.pending) > d.maxLen {
		d.pending = nil
		return lines, fmt.Errorf("%w: unterminated line exceeds %d bytes", ErrFrameTooLarge, d.maxLen)
	}
	return lines, nil
}
