// Package app implements the CLI-facing operations of pswm: locking and
// unlocking arbitrary files, and querying/appending records in the
// password-manager store at $HOME/.pswm. It is the external glue that
// wires the container engine and record layer to the Prompt, Clipboard,
// Styler, and Terminal collaborators.
package app

import (
	"github.com/hexlocker/pswm/internal/ui"
)

// MinMasterPasswordLength is the minimum length the interactive
// create-container dialog accepts for a new master password.
const MinMasterPasswordLength = 4

// UnlockRetryLimit caps how many wrong-password attempts the interactive
// unlock flow accepts before giving up, per the CLI layer's retry policy.
const UnlockRetryLimit = 3

// App bundles the collaborators every CLI operation needs.
type App struct {
	Prompt      *ui.Prompt
	Terminal    *ui.Terminal
	Styler      *ui.Styler
	ProgressBar func(size int64, label string) *ui.ProgressBar
}

// New builds an App with the standard collaborator set.
func New(prompt *ui.Prompt, terminal *ui.Terminal, styler *ui.Styler) *App {
	return &App{
		Prompt:      prompt,
		Terminal:    terminal,
		Styler:      styler,
		ProgressBar: ui.NewProgressBar,
	}
}
