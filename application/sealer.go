package application

// Sealer protects message payloads end to end, independently of framing.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
	// Overhead is the number of bytes Seal adds to every payload.
	Overhead() int
}
