// Package genpass generates random passwords from a configurable set of
// character classes, sampled uniformly with a cryptographic RNG.
package genpass

import (
	"crypto/rand"
	"math/big"

	"github.com/hexlocker/pswm/internal/pswmerr"
)

// DefaultLength is the password length used when a caller has no
// preference of their own.
const DefaultLength = 20

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	// symbols is the canonical, bug-fixed alphabet: the original
	// implementation's literal string contained a stray ".chars())"
	// fragment in the middle of the symbol run.
	symbols = ` !"#$%&'()*+,-./:;<=>?@[\]^_` + "`" + `{|}~`
)

// Options configures which character classes a generated password draws
// from and how long it is.
type Options struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultOptions enables every class at DefaultLength.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Dictionary returns the concatenated alphabet for the enabled classes, in
// lowercase, uppercase, digits, symbols order. It fails with
// EmptyPasswordDict if every class is disabled.
func (o Options) Dictionary() (string, error) {
	if !o.Lowercase && !o.Uppercase && !o.Digits && !o.Symbols {
		return "", pswmerr.New(pswmerr.EmptyPasswordDict)
	}
	var dict string
	if o.Lowercase {
		dict += lowercase
	}
	if o.Uppercase {
		dict += uppercase
	}
	if o.Digits {
		dict += digits
	}
	if o.Symbols {
		dict += symbols
	}
	return dict, nil
}

// Generate draws a password of o.Length runes from o's dictionary, each
// position sampled independently and uniformly via crypto/rand. It fails
// with PasswordLengthZero if o.Length is 0, or with whatever Dictionary
// returns if no class is enabled.
func Generate(o Options) (string, error) {
	if o.Length == 0 {
		return "", pswmerr.New(pswmerr.PasswordLengthZero)
	}
	dict, err := o.Dictionary()
	if err != nil {
		return "", err
	}
	runes := []rune(dict)
	max := big.NewInt(int64(len(runes)))

	result := make([]rune, o.Length)
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", pswmerr.Wrap(pswmerr.EncryptionError, err)
		}
		result[i] = runes[n.Int64()]
	}
	return string(result), nil
}
