// Where: internal/interaction/interaction.go
// What: Interactive prompt helpers using the huh library.
// Why: Collect missing inputs and confirmations without flag ceremony.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// Prompter abstracts interactive input so commands stay testable.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
	Confirm(title string) (bool, error)
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

func (p HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
