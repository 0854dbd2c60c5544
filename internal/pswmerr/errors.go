// Package pswmerr defines the error taxonomy shared by every layer of the
// container engine, the record layer, and the CLI glue. The container
// engine, the record layer, the generator and the prompts return *Error
// values carrying a Kind and, where one exists, an underlying cause; a few
// usage and dialog errors in the CLI glue are plain errors.
package pswmerr

import (
	"errors"
	"fmt"
)

// Kind identifies the category of failure. Its name is part of the error's
// message, which the CLI layer prints styled before exiting with status 1
// for every kind; callers test for a kind with Is, never by matching error
// strings.
type Kind int

// I/O on the container file.
const (
	OpenFile Kind = iota
	ReadFile
	WriteFile
	SeekFile
	TruncateFile
)

// OS attribute driver (Component D).
const (
	FileGetFlags Kind = iota + 100
	FileSetFlags
)

// Size discovery.
const (
	GetFileMetadata Kind = iota + 200
	FileTooBig
)

// Container format and cryptographic errors.
const (
	FileNotEncryptedProperly Kind = iota + 300
	CorruptedFile
	MacError
	WrongPassword
	EncryptionError
	EncodingError
	RevertToBackup
)

// Presentation-layer collaborator errors.
const (
	PromptPasswordIOError Kind = iota + 400
	HomeDir
	CopyToClipboard
)

// Password generator configuration errors.
const (
	EmptyPasswordDict Kind = iota + 500
	PasswordLengthZero
)

var kindNames = map[Kind]string{
	OpenFile:                 "open file",
	ReadFile:                 "read file",
	WriteFile:                "write file",
	SeekFile:                 "seek file",
	TruncateFile:             "truncate file",
	FileGetFlags:             "get file flags",
	FileSetFlags:             "set file flags",
	GetFileMetadata:          "get file metadata",
	FileTooBig:               "file too big",
	FileNotEncryptedProperly: "file not encrypted properly",
	CorruptedFile:            "corrupted file",
	MacError:                 "authentication failed",
	WrongPassword:            "wrong password",
	EncryptionError:          "encryption error",
	EncodingError:            "encoding error",
	RevertToBackup:           "failed to revert to backup after a failed write",
	PromptPasswordIOError:    "password prompt failed",
	HomeDir:                  "home directory unavailable",
	CopyToClipboard:          "failed to copy to clipboard",
	EmptyPasswordDict:        "password dictionary is empty",
	PasswordLengthZero:       "password length is zero",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// Error is the error type returned across package boundaries in this
// module. It always carries a Kind and optionally wraps an underlying OS
// or library cause.
type Error struct {
	Kind  Kind
	Cause error
}

// New returns an *Error of the given kind with no underlying cause.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap returns an *Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return e.Kind.String()
}

// Unwrap allows errors.Is/errors.As to reach the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether err, or any error it wraps, is a *Error of the given
// kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
