// Package ui provides interactive command-line prompts, terminal control,
// progress feedback, and styling for the pswm CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/hexlocker/pswm/internal/pswmerr"
)

// Prompt is the Prompt collaborator: a synchronous read of a hidden
// password (and related confirmations) from a terminal.
type Prompt struct{}

// NewPrompt creates a new Prompt instance.
func NewPrompt() *Prompt {
	return &Prompt{}
}

// AskPassword reads one hidden password with the given title.
func (p *Prompt) AskPassword(title string) (string, error) {
	var password string
	field := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&password)

	if err := field.Run(); err != nil {
		return "", pswmerr.Wrap(pswmerr.PromptPasswordIOError, err)
	}
	return password, nil
}

// AskNewMasterPassword reads and confirms a brand-new master password,
// rejecting it if the two entries don't match or the password is shorter
// than minLength.
func (p *Prompt) AskNewMasterPassword(minLength int) (string, error) {
	password, err := p.AskPassword("Enter a new master password:")
	if err != nil {
		return "", err
	}
	if len([]rune(password)) < minLength {
		return "", fmt.Errorf("master password must be at least %d characters", minLength)
	}

	confirm, err := p.AskPassword("Confirm master password:")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

// Confirm asks a yes/no question.
func (p *Prompt) Confirm(title string) (bool, error) {
	var result bool
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&result)

	if err := field.Run(); err != nil {
		return false, pswmerr.Wrap(pswmerr.PromptPasswordIOError, err)
	}
	return result, nil
}
