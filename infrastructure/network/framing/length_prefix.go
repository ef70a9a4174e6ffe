package framing

import (
	"encoding/binary"
	"fmt"
	"sensocket/application"
)

const lengthPrefixSize = 2

// LengthPrefixCodec frames each message as a u16 big-endian length followed by the payload.
type LengthPrefixCodec struct {
	maxLen int
}

func (c *LengthPrefixCodec) Encode(payload []byte) ([]byte, error) {
	// zero frames are not allowed by the decoder
	if len(payload) == 0 {
		return nil, ErrEmptyFrame
	}
	if len(payload) > c.maxLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(payload), c.maxLen)
	}
	frame := make([]byte, lengthPrefixSize+len(payload))
	binary.BigEndian.PutUint16(frame[:lengthPrefixSize], uint16(len(payload)))
	copy(frame[lengthPrefixSize:], payload)
	return frame, nil
}

func (c *LengthPrefixCodec) NewDecoder() application.FrameDecoder {
	return &lengthPrefixDecoder{maxLen: c.maxLen}
}

type lengthPrefixDecoder struct {
	maxLen  int
	pending []byte
}

func (d *lengthPrefixDecoder) Feed(chunk []byte) ([][]byte, error) {
	d.pending = append(d.pending, chunk...)

	var frames [][]byte
	offset := 0
	for len(d.pending)-offset >= lengthPrefixSize {
		length := int(binary.BigEndian.Uint16(d.pending[offset : offset+lengthPrefixSize]))
		if length == 0 {
			d.pending = nil
			return frames, fmt.Errorf("invalid frame length: %w", ErrEmptyFrame)
		}
		if length > d.maxLen {
			d.pending = nil
			return frames, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, length, d.maxLen)
		}
		end := offset + lengthPrefixSize + length
		if end > len(d.pending) {
			break
		}
		frame := make([]byte, length)
		copy(frame, d.pending[offset+lengthPrefixSize:end])
		frames = append(frames, frame)
		offset = end
	}

	d.pending = compact(d.pending, offset)
	return frames, nil
}

// compact drops the first offset bytes, reusing the backing array.
func compact(buf []byte, offset int) []byte {
	if offset == 0 {
		return buf
	}
	n := copy(buf, buf[offset:])
	return buf[:n]
}
