// Package record implements the password-record codec, the lazy record
// iterator, and the filter/sort query pipeline layered on top of an
// unlocked container's plaintext body.
package record

// Record is one password-manager entry.
type Record struct {
	Password         string
	Domain           string
	Username         string
	AdditionalFields map[string]string
}
