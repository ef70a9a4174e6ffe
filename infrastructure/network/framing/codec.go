package framing

import (
	"fmt"
	"math"
	"sensocket/application"
	"sensocket/infrastructure/settings"
)

// MaxDatagramPayload is the largest UDP payload over IPv4.
const MaxDatagramPayload = 65507

// NewCodec returns the codec for a resolved framing. maxLen <= 0 means settings.MaxMessageLengthBytes.
func NewCodec(f settings.Framing, maxLen int) (application.FrameCodec, error) {
	if maxLen <= 0 || maxLen > settings.MaxMessageLengthBytes {
		maxLen = settings.MaxMessageLengthBytes
	}
	switch f {
	case settings.FramingLengthPrefix:
		if maxLen > math.MaxUint16 {
			maxLen = math.MaxUint16
		}
		return &LengthPrefixCodec{maxLen: maxLen}, nil
	case settings.FramingLine:
		return &LineCodec{maxLen: maxLen}, nil
	case settings.FramingRaw:
		return &PassthroughCodec{maxLen: maxLen}, nil
	case settings.FramingDatagram:
		if maxLen > MaxDatagramPayload {
			maxLen = MaxDatagramPayload
		}
		return &PassthroughCodec{maxLen: maxLen}, nil
	default:
		return nil, fmt.Errorf("%w: %s", settings.ErrInvalidFraming, f)
	}
}
