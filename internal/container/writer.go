package container

import (
	"crypto/rand"
	"io"
	"os"

	"github.com/hexlocker/pswm/internal/bytevec"
	"github.com/hexlocker/pswm/internal/pswmerr"
	"golang.org/x/crypto/sha3"
)

// Writer is the Writing sub-state: it accumulates a replacement plaintext
// body and rewrites the container's header and ciphertext on Flush,
// replacing everything that was there before.
type Writer struct {
	c   *Container
	buf []byte
}

// Writer opens a Writing sub-state over c. It immediately draws a fresh
// nonce and resets the cipher to it, since every mutation must use a
// keystream the body has never been encrypted with before.
func (c *Container) Writer() (*Writer, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, pswmerr.Wrap(pswmerr.EncryptionError, err)
	}
	c.header.Nonce = nonce
	if err := c.cipher.ResetWithNonce(nonce); err != nil {
		return nil, err
	}
	return &Writer{c: c}, nil
}

// Write appends p to the pending plaintext buffer.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// WriteAll is Write, discarding the byte count, for callers that only
// care about the error.
func (w *Writer) WriteAll(p []byte) error {
	_, err := w.Write(p)
	return err
}

// Flush finalizes the pending buffer as the container's new body: it
// hashes the buffer into a fresh HMAC, rewrites HMAC and Nonce at the
// start of the file, encrypts the buffer and writes it after the header,
// and truncates the file if the new body is shorter than the old one.
func (w *Writer) Flush() error {
	digest := sha3.Sum512(w.buf)
	w.c.header.HMAC = digest[:]

	if err := w.rewriteHeaderFields(); err != nil {
		return err
	}

	if _, err := w.c.file.Seek(HeaderSize, io.SeekStart); err != nil {
		return pswmerr.Wrap(pswmerr.SeekFile, err)
	}
	ciphertext := append([]byte(nil), w.buf...)
	if err := w.c.cipher.Apply(ciphertext); err != nil {
		return err
	}
	if _, err := w.c.file.Write(ciphertext); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}

	if len(w.buf) < len(w.c.body.Buffer()) {
		if err := w.c.file.Truncate(int64(HeaderSize + len(w.buf))); err != nil {
			return pswmerr.Wrap(pswmerr.TruncateFile, err)
		}
	}

	w.c.body = bytevec.New(append([]byte(nil), w.buf...))
	return nil
}

// rewriteHeaderFields seeks to the start of the file and rewrites HMAC
// then Nonce. Salt and SaltedKeyHash never change across a re-write since
// the key is unchanged, so they are left untouched on disk.
func (w *Writer) rewriteHeaderFields() error {
	if _, err := w.c.file.Seek(0, io.SeekStart); err != nil {
		return pswmerr.Wrap(pswmerr.SeekFile, err)
	}
	if _, err := w.c.file.Write(w.c.header.HMAC); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}
	if _, err := w.c.file.Write(w.c.header.Nonce); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}
	return nil
}

// InnerFile exposes the underlying file handle.
func (w *Writer) InnerFile() *os.File {
	return w.c.file
}

// InnerContainer exposes the container this Writer was opened over.
func (w *Writer) InnerContainer() *Container {
	return w.c
}
