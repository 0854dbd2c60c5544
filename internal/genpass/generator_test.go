package genpass

import (
	"strings"
	"testing"

	"github.com/hexlocker/pswm/internal/pswmerr"
)

func TestDictionaryConcatenatesEnabledClasses(t *testing.T) {
	dict, err := Options{Lowercase: true, Digits: true}.Dictionary()
	if err != nil {
		t.Fatalf("Dictionary: %v", err)
	}
	if !strings.HasPrefix(dict, lowercase) {
		t.Errorf("dictionary %q does not start with lowercase alphabet", dict)
	}
	if !strings.HasSuffix(dict, digits) {
		t.Errorf("dictionary %q does not end with digits", dict)
	}
	if strings.ContainsAny(dict, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		t.Errorf("dictionary %q should not contain uppercase when disabled", dict)
	}
}

func TestDictionaryEmptyWhenAllClassesDisabled(t *testing.T) {
	_, err := Options{}.Dictionary()
	if !pswmerr.Is(err, pswmerr.EmptyPasswordDict) {
		t.Errorf("Dictionary() error = %v, want EmptyPasswordDict", err)
	}
}

func TestSymbolsAlphabetHasNoStrayFragment(t *testing.T) {
	if strings.Contains(symbols, "chars") {
		t.Errorf("symbols alphabet %q contains a stray literal fragment", symbols)
	}
	want := ` !"#$%&'()*+,-./:;<=>?@[\]^_` + "`" + `{|}~`
	if symbols != want {
		t.Errorf("symbols = %q, want %q", symbols, want)
	}
}

func TestGenerateProducesRequestedLength(t *testing.T) {
	pw, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := len([]rune(pw)); got != DefaultLength {
		t.Errorf("len(password) = %d, want %d", got, DefaultLength)
	}
}

func TestGenerateZeroLengthFails(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 0
	_, err := Generate(opts)
	if !pswmerr.Is(err, pswmerr.PasswordLengthZero) {
		t.Errorf("Generate() error = %v, want PasswordLengthZero", err)
	}
}

func TestGenerateEmptyDictFails(t *testing.T) {
	_, err := Generate(Options{Length: 10})
	if !pswmerr.Is(err, pswmerr.EmptyPasswordDict) {
		t.Errorf("Generate() error = %v, want EmptyPasswordDict", err)
	}
}

func TestGenerateOnlyUsesEnabledClasses(t *testing.T) {
	opts := Options{Length: 200, Digits: true}
	pw, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, r := range pw {
		if r < '0' || r > '9' {
			t.Fatalf("password %q contains non-digit rune %q", pw, r)
		}
	}
}

func TestGenerateIsNotConstant(t *testing.T) {
	a, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a == b {
		t.Errorf("two independently generated %d-char passwords collided: %q", DefaultLength, a)
	}
}
