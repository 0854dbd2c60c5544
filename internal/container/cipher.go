package container

import (
	"crypto/sha256"

	"github.com/hexlocker/pswm/internal/pswmerr"
	"golang.org/x/crypto/chacha20"
)

// streamCipher wraps a ChaCha20 keystream keyed by SHA-256(master key). The
// hashed key is retained so the keystream can be re-initialized at a new
// nonce without the caller having to re-supply the master key.
type streamCipher struct {
	hashedKey []byte
	inner     *chacha20.Cipher
}

// newStreamCipher hashes key with SHA-256 and initializes a ChaCha20
// keystream at nonce, position zero.
func newStreamCipher(key, nonce []byte) (*streamCipher, error) {
	hashedKey := sha256.Sum256(key)
	inner, err := chacha20.NewUnauthenticatedCipher(hashedKey[:], nonce)
	if err != nil {
		return nil, pswmerr.Wrap(pswmerr.EncryptionError, err)
	}
	return &streamCipher{hashedKey: hashedKey[:], inner: inner}, nil
}

// Apply XORs buf with the keystream in place, advancing the keystream
// position by len(buf).
func (s *streamCipher) Apply(buf []byte) error {
	s.inner.XORKeyStream(buf, buf)
	return nil
}

// ResetWithNonce re-initializes the keystream at position zero with the
// retained hashed key and the given nonce.
func (s *streamCipher) ResetWithNonce(nonce []byte) error {
	inner, err := chacha20.NewUnauthenticatedCipher(s.hashedKey, nonce)
	if err != nil {
		return pswmerr.Wrap(pswmerr.EncryptionError, err)
	}
	s.inner = inner
	return nil
}
