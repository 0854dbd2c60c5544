// Package container implements the encrypted-container engine: the
// on-disk header format, the ChaCha20 stream cipher wrapper, and the
// Locked/Unlocked/Writing/Appending state machine built on top of them.
package container

import (
	"crypto/rand"

	"github.com/hexlocker/pswm/internal/bytevec"
	"github.com/hexlocker/pswm/internal/pswmerr"
	"golang.org/x/crypto/sha3"
)

// Header field sizes, fixed by the container format.
const (
	hmacSize          = 64
	nonceSize         = 12
	saltSize          = 16
	saltedKeyHashSize = 64

	// HeaderSize is the fixed size of the on-disk header, in bytes.
	HeaderSize = hmacSize + nonceSize + saltSize + saltedKeyHashSize
)

// Header holds the fixed-size fields that precede every container's
// ciphertext body: an authentication digest over the plaintext body, the
// stream-cipher nonce, the per-container salt, and a pre-decryption
// password check digest.
//
// The HMAC field is historically named but is not a keyed MAC — it is an
// unkeyed SHA3-512 hash of the plaintext body. This matches the original
// implementation's behavior and is preserved rather than silently upgraded.
type Header struct {
	HMAC          []byte
	Nonce         []byte
	Salt          []byte
	SaltedKeyHash []byte
}

// newHeader generates a fresh salt and nonce and computes HMAC = hash(body)
// and SaltedKeyHash = hash(key ‖ salt).
func newHeader(body, key []byte) (*Header, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, pswmerr.Wrap(pswmerr.EncryptionError, err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, pswmerr.Wrap(pswmerr.EncryptionError, err)
	}

	hmac := sha3.Sum512(body)
	saltedKeyHash := sha3.Sum512(append(append([]byte(nil), key...), salt...))

	return &Header{
		HMAC:          hmac[:],
		Nonce:         nonce,
		Salt:          salt,
		SaltedKeyHash: saltedKeyHash[:],
	}, nil
}

// readHeader parses a header from the cursor in the order HMAC, Nonce,
// Salt, SaltedKeyHash. A short read at any field is reported as
// FileNotEncryptedProperly.
func readHeader(c *bytevec.Cursor) (*Header, error) {
	h := &Header{
		HMAC:          make([]byte, hmacSize),
		Nonce:         make([]byte, nonceSize),
		Salt:          make([]byte, saltSize),
		SaltedKeyHash: make([]byte, saltedKeyHashSize),
	}
	for _, field := range [][]byte{h.HMAC, h.Nonce, h.Salt, h.SaltedKeyHash} {
		if err := c.ReadExact(field); err != nil {
			return nil, pswmerr.New(pswmerr.FileNotEncryptedProperly)
		}
	}
	return h, nil
}

// writeTo appends the header's serialized form, in the same field order as
// readHeader, to buf and returns the result.
func (h *Header) writeTo(buf []byte) []byte {
	buf = append(buf, h.HMAC...)
	buf = append(buf, h.Nonce...)
	buf = append(buf, h.Salt...)
	buf = append(buf, h.SaltedKeyHash...)
	return buf
}
