package app

import (
	"fmt"
	"os"

	"github.com/hexlocker/pswm/internal/container"
	"github.com/hexlocker/pswm/internal/pswmerr"
	"github.com/hexlocker/pswm/internal/unixflags"
)

// Lock encrypts the file at path in place under key, mirroring the
// `lock <path> <key> [--immutable]` CLI command. If immutable is true,
// the OS-level immutable attribute is set once encryption succeeds.
func (a *App) Lock(path string, key []byte, immutable bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return pswmerr.Wrap(pswmerr.GetFileMetadata, err)
	}

	bar := a.ProgressBar(info.Size(), fmt.Sprintf("locking %s", path))

	c, err := container.EncryptFile(path, key)
	if err != nil {
		return err
	}
	defer c.Close()
	_ = bar.Add(info.Size())

	if immutable {
		if err := unixflags.MakeImmutable(c.InnerFile()); err != nil {
			return err
		}
	}

	fmt.Println(a.Styler.Success(fmt.Sprintf("locked %s", path)))
	return nil
}

// Unlock decrypts the file at path in place, prompting for the password
// interactively and giving up after UnlockRetryLimit wrong passwords in
// total, mirroring the `unlock <path>` CLI command.
func (a *App) Unlock(path string) error {
	locked, err := container.OpenReadWrite(path)
	if err != nil {
		return err
	}

	c, err := a.unlockWithRetry(locked, "Enter password to unlock:")
	if err != nil {
		return err
	}
	defer c.Close()

	if err := unixflags.MakeMutable(c.InnerFile()); err != nil {
		return err
	}
	if err := c.Decrypt(); err != nil {
		return err
	}

	fmt.Println(a.Styler.Success(fmt.Sprintf("unlocked %s", path)))
	return nil
}

// unlockWithRetry prompts for a password against locked up to
// UnlockRetryLimit times, returning the first successful Unlock. It
// closes locked itself on every failure path so callers never leak the
// file handle.
func (a *App) unlockWithRetry(locked *container.Locked, prompt string) (*container.Container, error) {
	for attempt := 0; attempt < UnlockRetryLimit; attempt++ {
		a.Terminal.Clear()
		password, err := a.Prompt.AskPassword(prompt)
		if err != nil {
			locked.Close()
			return nil, err
		}

		key := []byte(password)
		if !locked.TestKey(key) {
			fmt.Println(a.Styler.Failure("wrong password"))
			continue
		}

		c, err := locked.Unlock(key)
		if err != nil {
			locked.Close()
			return nil, err
		}
		return c, nil
	}

	locked.Close()
	return nil, pswmerr.New(pswmerr.WrongPassword)
}
