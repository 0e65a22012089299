package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// LetterFunc asks for an assignment letter, pre-filled with current. An empty
// answer clears the cell.
type LetterFunc func(title, current string) (string, error)

// NewLetterFunc creates a LetterFunc using huh's input component, rejecting
// anything that does not sanitize to a single letter.
func NewLetterFunc() LetterFunc {
	return func(title, current string) (string, error) {
		result := current
		err := huh.NewInput().
			Title(title).
			Placeholder("A-Z, empty to clear").
			CharLimit(1).
			Validate(validateLetter).
			Value(&result).
			Run()
		return result, err
	}
}

func validateLetter(s string) error {
	if s != "" && ledger.Sanitize(s) == "" {
		return fmt.Errorf("enter a single letter A-Z")
	}
	return nil
}

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// NewSelectFunc creates a SelectFunc using huh's interactive select component.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string) (int, error) {
		var result int
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Confirm ConfirmFunc
	Letter  LetterFunc
	Select  SelectFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Confirm: NewConfirmFunc(),
		Letter:  NewLetterFunc(),
		Select:  NewSelectFunc(),
	}
}
