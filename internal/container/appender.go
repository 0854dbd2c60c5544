package container

import (
	"crypto/rand"
	"io"
	"os"

	"github.com/hexlocker/pswm/internal/bytevec"
	"github.com/hexlocker/pswm/internal/pswmerr"
	"golang.org/x/crypto/sha3"
)

// Appender is the Appending sub-state: it accumulates plaintext to add
// after the existing body. Because the nonce changes on every mutation,
// Flush must also re-encrypt the original body under the new keystream —
// reusing the old keystream for the untouched prefix would reuse it
// across two on-disk states and leak plaintext.
type Appender struct {
	c   *Container
	buf []byte
}

// Appender opens an Appending sub-state over c, drawing a fresh nonce and
// resetting the cipher to it.
func (c *Container) Appender() (*Appender, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, pswmerr.Wrap(pswmerr.EncryptionError, err)
	}
	c.header.Nonce = nonce
	if err := c.cipher.ResetWithNonce(nonce); err != nil {
		return nil, err
	}
	return &Appender{c: c}, nil
}

// Write appends p to the pending buffer of bytes to add after the
// existing body.
func (a *Appender) Write(p []byte) (int, error) {
	a.buf = append(a.buf, p...)
	return len(p), nil
}

// WriteAll is Write, discarding the byte count.
func (a *Appender) WriteAll(p []byte) error {
	_, err := a.Write(p)
	return err
}

// Flush finalizes the append: it hashes the original body concatenated
// with the pending buffer into a fresh HMAC, rewrites HMAC and Nonce,
// re-encrypts the original body under the new keystream and writes it
// back, then encrypts and writes the appended buffer after it.
func (a *Appender) Flush() error {
	original := append([]byte(nil), a.c.body.Buffer()...)
	full := append(append([]byte(nil), original...), a.buf...)

	digest := sha3.Sum512(full)
	a.c.header.HMAC = digest[:]

	if _, err := a.c.file.Seek(0, io.SeekStart); err != nil {
		return pswmerr.Wrap(pswmerr.SeekFile, err)
	}
	if _, err := a.c.file.Write(a.c.header.HMAC); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}
	if _, err := a.c.file.Write(a.c.header.Nonce); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}

	if _, err := a.c.file.Seek(HeaderSize, io.SeekStart); err != nil {
		return pswmerr.Wrap(pswmerr.SeekFile, err)
	}

	reencryptedOriginal := append([]byte(nil), original...)
	if err := a.c.cipher.Apply(reencryptedOriginal); err != nil {
		return err
	}
	if _, err := a.c.file.Write(reencryptedOriginal); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}

	appended := append([]byte(nil), a.buf...)
	if err := a.c.cipher.Apply(appended); err != nil {
		return err
	}
	if _, err := a.c.file.Write(appended); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}

	a.c.body = bytevec.New(full)
	return nil
}

// InnerFile exposes the underlying file handle.
func (a *Appender) InnerFile() *os.File {
	return a.c.file
}

// InnerContainer exposes the container this Appender was opened over.
func (a *Appender) InnerContainer() *Container {
	return a.c
}
