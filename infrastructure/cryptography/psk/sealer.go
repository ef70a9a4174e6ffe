package psk

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"sensocket/application"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrEmptyKey       = errors.New("pre-shared key is empty")
	ErrSealedTooShort = errors.New("sealed payload is shorter than nonce and tag")
)

// hkdfInfo binds derived keys to this payload format.
const hkdfInfo = "sensocket payload seal v1"

// Sealer encrypts each payload with XChaCha20-Poly1305 under a key derived from a
// pre-shared secret. Wire form: nonce(24) || ciphertext || tag(16).
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(secret string) (application.Sealer, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	out := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(out); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return s.aead.Seal(out, out[:chacha20poly1305.NonceSizeX], plaintext, nil), nil
}

func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < chacha20poly1305.NonceSizeX+s.aead.Overhead() {
		return nil, ErrSealedTooShort
	}
	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	return plaintext, nil
}

func (s *Sealer) Overhead() int {
	return chacha20poly1305.NonceSizeX + s.aead.Overhead()
}

// Plain is the Sealer used when sealing is disabled.
type Plain struct{}

func NewPlain() application.Sealer {
	return Plain{}
}

func (Plain) Seal(plaintext []byte) ([]byte, error) { return plaintext, nil }
func (Plain) Open(sealed []byte) ([]byte, error)    { return sealed, nil }
func (Plain) Overhead() int                         { return 0 }
