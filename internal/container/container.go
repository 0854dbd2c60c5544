package container

import (
	"io"
	"os"

	"github.com/hexlocker/pswm/internal/bytevec"
	"github.com/hexlocker/pswm/internal/pswmerr"
	"github.com/hexlocker/pswm/internal/unixflags"
)

// Container is an Unlocked container: its body buffer holds plaintext, its
// cipher retains the hashed master key for re-keying on every mutation,
// and it owns the underlying file handle exclusively for its lifetime.
type Container struct {
	file   *os.File
	header *Header
	key    []byte
	cipher *streamCipher
	body   *bytevec.Cursor
}

// Create opens a brand-new container at path, writing only the header
// over an empty plaintext body. Fails if a file already exists at path.
func Create(path string, key []byte) (*Container, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, pswmerr.Wrap(pswmerr.OpenFile, err)
	}

	header, err := newHeader(nil, key)
	if err != nil {
		f.Close()
		return nil, err
	}

	buf := make([]byte, 0, HeaderSize)
	buf = header.writeTo(buf)
	if _, err := f.Write(buf); err != nil {
		f.Close()
		return nil, pswmerr.Wrap(pswmerr.WriteFile, err)
	}

	cipher, err := newStreamCipher(key, header.Nonce)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Container{
		file:   f,
		header: header,
		key:    append([]byte(nil), key...),
		cipher: cipher,
		body:   bytevec.New(nil),
	}, nil
}

// EncryptFile ingests the existing file at path as the initial plaintext
// body: it reads the whole file, overwrites it with header‖ciphertext, and
// clears the immutable attribute first if it is set. If the ciphertext
// write fails partway through — after the header has already overwritten
// the file's first HeaderSize bytes — it attempts to restore those
// original bytes; if that restoration also fails, the error is
// RevertToBackup rather than WriteFile.
//
// Unlike the original Rust implementation, the returned Container's body
// holds the plaintext (not the ciphertext that was just written to disk):
// spec's Unlocked-state invariant requires the in-memory body to be
// plaintext, and callers may legitimately chain a Writer/Appender/Decrypt
// immediately after locking a file.
func EncryptFile(path string, key []byte) (*Container, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, pswmerr.Wrap(pswmerr.OpenFile, err)
	}

	if err := unixflags.MakeMutable(f); err != nil {
		f.Close()
		return nil, err
	}

	plaintext, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return nil, pswmerr.Wrap(pswmerr.ReadFile, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, pswmerr.Wrap(pswmerr.SeekFile, err)
	}

	header, err := newHeader(plaintext, key)
	if err != nil {
		f.Close()
		return nil, err
	}

	headerBuf := make([]byte, 0, HeaderSize)
	headerBuf = header.writeTo(headerBuf)
	if _, err := f.Write(headerBuf); err != nil {
		f.Close()
		return nil, pswmerr.Wrap(pswmerr.WriteFile, err)
	}

	cipher, err := newStreamCipher(key, header.Nonce)
	if err != nil {
		f.Close()
		return nil, err
	}

	ciphertext := append([]byte(nil), plaintext...)
	if err := cipher.Apply(ciphertext); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.Write(ciphertext); err != nil {
		restoreLen := len(plaintext)
		if restoreLen > HeaderSize {
			restoreLen = HeaderSize
		}
		if _, rerr := f.WriteAt(plaintext[:restoreLen], 0); rerr != nil {
			f.Close()
			return nil, pswmerr.Wrap(pswmerr.RevertToBackup, rerr)
		}
		f.Close()
		return nil, pswmerr.Wrap(pswmerr.WriteFile, err)
	}

	return &Container{
		file:   f,
		header: header,
		key:    append([]byte(nil), key...),
		cipher: cipher,
		body:   bytevec.New(plaintext),
	}, nil
}

// Decrypt is terminal: it seeks to the start of the file, writes the
// plaintext body, and truncates the file to the body's length. The file
// on disk is unencrypted after this call returns successfully.
func (c *Container) Decrypt() error {
	if _, err := c.file.Seek(0, io.SeekStart); err != nil {
		return pswmerr.Wrap(pswmerr.SeekFile, err)
	}
	body := c.body.Buffer()
	if _, err := c.file.Write(body); err != nil {
		return pswmerr.Wrap(pswmerr.WriteFile, err)
	}
	if err := c.file.Truncate(int64(len(body))); err != nil {
		return pswmerr.Wrap(pswmerr.TruncateFile, err)
	}
	return nil
}

// Close releases the underlying file handle.
func (c *Container) Close() error {
	return c.file.Close()
}

// InnerFile exposes the underlying file handle.
func (c *Container) InnerFile() *os.File {
	return c.file
}

// ReadExact reads len(dst) bytes from the current position in the
// plaintext body. A short read is reclassified from the cursor's generic
// short-read signal to CorruptedFile, per the record iterator's contract.
func (c *Container) ReadExact(dst []byte) error {
	if err := c.body.ReadExact(dst); err != nil {
		return pswmerr.New(pswmerr.CorruptedFile)
	}
	return nil
}

// ReadUntil consumes bytes up to and including the first occurrence of
// terminator, returning the bytes before it. If terminator does not occur
// before the end of the body, it consumes to the end and returns what it
// found.
func (c *Container) ReadUntil(terminator byte) []byte {
	rest := c.body.Rest()
	length := 0
	for length < len(rest) && rest[length] != terminator {
		length++
	}
	result := append([]byte(nil), rest[:length]...)
	c.body.Consume(length + 1)
	return result
}

// Eof reports whether the plaintext body has been fully consumed.
func (c *Container) Eof() bool {
	return c.body.Eof()
}
