package application

// FrameEncoder turns one outbound message into the bytes written to the socket.
type FrameEncoder interface {
	Encode(payload []byte) ([]byte, error)
}

// FrameDecoder splits bytes read from a socket into complete inbound messages.
// Implementations are stateful and belong to exactly one connection.
type FrameDecoder interface {
	// Feed appends chunk to the pending bytes and returns every message completed by it.
	// Returned slices are owned by the caller.
	Feed(chunk []byte) ([][]byte, error)
}

type FrameCodec interface {
	FrameEncoder
	NewDecoder() FrameDecoder
}
