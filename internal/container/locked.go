package container

import (
	"crypto/subtle"
	"io"
	"os"

	"github.com/hexlocker/pswm/internal/bytevec"
	"github.com/hexlocker/pswm/internal/pswmerr"
	"golang.org/x/crypto/sha3"
)

// Mode selects how a container file is opened.
type Mode int

const (
	// ReadOnly opens the container for reading only.
	ReadOnly Mode = iota
	// ReadWrite opens the container for reading and writing.
	ReadWrite
)

// Locked is a container whose header has been parsed but whose body is
// still ciphertext. No plaintext is materialized in this state.
type Locked struct {
	file   *os.File
	cursor *bytevec.Cursor
	header *Header
}

// Open opens the container file at path in the given mode, reads its
// entire contents, and parses the header. The body remains ciphertext
// until Unlock succeeds.
func Open(path string, mode Mode) (*Locked, error) {
	flag := os.O_RDONLY
	if mode == ReadWrite {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, pswmerr.Wrap(pswmerr.OpenFile, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return nil, pswmerr.Wrap(pswmerr.ReadFile, err)
	}

	cursor := bytevec.New(data)
	header, err := readHeader(cursor)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Locked{file: f, cursor: cursor, header: header}, nil
}

// OpenReadOnly opens path for reading only.
func OpenReadOnly(path string) (*Locked, error) {
	return Open(path, ReadOnly)
}

// OpenReadWrite opens path for reading and writing.
func OpenReadWrite(path string) (*Locked, error) {
	return Open(path, ReadWrite)
}

// TestKey reports whether key matches this container's stored
// SaltedKeyHash, without decrypting the body. Safe to call repeatedly.
func (l *Locked) TestKey(key []byte) bool {
	candidate := sha3.Sum512(append(append([]byte(nil), key...), l.header.Salt...))
	return subtle.ConstantTimeCompare(candidate[:], l.header.SaltedKeyHash) == 1
}

// Unlock decrypts the body in place with key and verifies the result
// against the stored HMAC. On a mismatch it returns a MacError and no
// plaintext is retained. On success it returns an Unlocked container
// holding the decrypted body, the retained key, and the re-keyable
// cipher.
func (l *Locked) Unlock(key []byte) (*Container, error) {
	cipher, err := newStreamCipher(key, l.header.Nonce)
	if err != nil {
		return nil, err
	}

	body := l.cursor.RestMut()
	if err := cipher.Apply(body); err != nil {
		return nil, err
	}

	digest := sha3.Sum512(l.cursor.Rest())
	if subtle.ConstantTimeCompare(digest[:], l.header.HMAC) != 1 {
		return nil, pswmerr.New(pswmerr.MacError)
	}

	plaintext := append([]byte(nil), l.cursor.Rest()...)
	return &Container{
		file:   l.file,
		header: l.header,
		key:    append([]byte(nil), key...),
		cipher: cipher,
		body:   bytevec.New(plaintext),
	}, nil
}

// Close releases the underlying file handle without decrypting anything.
func (l *Locked) Close() error {
	return l.file.Close()
}

// InnerFile exposes the underlying file handle, per the capability
// abstraction of the container engine's design notes.
func (l *Locked) InnerFile() *os.File {
	return l.file
}
