package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hexlocker/pswm/internal/container"
	"github.com/hexlocker/pswm/internal/pswmerr"
)

// stateFileName is the basename of the persisted password-manager store
// under the user's home directory.
const stateFileName = ".pswm"

// statePath returns $HOME/.pswm, translating a missing home directory
// into HomeDir.
func statePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", pswmerr.Wrap(pswmerr.HomeDir, err)
	}
	return filepath.Join(home, stateFileName), nil
}

// openStore opens the persisted password-manager container, unlocking it
// interactively. If no store exists yet, it runs the create-dialog:
// prompting for a brand-new master password and initializing an empty
// container under it.
func (a *App) openStore() (*container.Container, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return a.createStore(path)
	}

	locked, err := container.OpenReadWrite(path)
	if err != nil {
		return nil, err
	}
	return a.unlockWithRetry(locked, "Enter master password:")
}

// createStore runs the create-container dialog at path: with the user's
// confirmation, a brand-new master password (minimum
// MinMasterPasswordLength characters) seals a freshly initialized, empty
// container.
func (a *App) createStore(path string) (*container.Container, error) {
	proceed, err := a.Prompt.Confirm(fmt.Sprintf("No store found at %s. Create one?", path))
	if err != nil {
		return nil, err
	}
	if !proceed {
		return nil, fmt.Errorf("store creation cancelled")
	}

	fmt.Println(a.Styler.Info(fmt.Sprintf("creating a new store at %s", path)))
	a.Terminal.Clear()
	password, err := a.Prompt.AskNewMasterPassword(MinMasterPasswordLength)
	if err != nil {
		return nil, err
	}
	return container.Create(path, []byte(password))
}
