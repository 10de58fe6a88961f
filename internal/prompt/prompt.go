// Package prompt asks the operator yes/no questions and short free-text
// answers on the terminal
package prompt

import (
	"errors"
	"time"

	"github.com/charmbracelet/huh"
)

// Outcome is the result of a confirmation prompt.
type Outcome int

const (
	Declined Outcome = iota
	Confirmed
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case TimedOut:
		return "timed out"
	default:
		return "declined"
	}
}

// Prompter asks the operator for input.
type Prompter interface {
	Confirm(prompt string, def bool) (Outcome, error)
	Input(prompt string) (string, error)
}

// Huh prompts through charmbracelet/huh forms. A zero Timeout waits
// indefinitely.
type Huh struct {
	Timeout    time.Duration
	Accessible bool
}

func (h *Huh) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(h.Accessible).
		WithShowHelp(false)

	if h.Timeout > 0 {
		form = form.WithTimeout(h.Timeout)
	}

	return form.Run()
}

// Confirm asks a yes/no question. Aborting the prompt counts as declining.
func (h *Huh) Confirm(prompt string, def bool) (Outcome, error) {
	answer := def

	field := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)

	err := h.run(field)

	switch {
	case errors.Is(err, huh.ErrTimeout):
		return TimedOut, nil
	case errors.Is(err, huh.ErrUserAborted):
		return Declined, nil
	case err != nil:
		return Declined, err
	}

	if answer {
		return Confirmed, nil
	}

	return Declined, nil
}

// Input asks for a single line of text. An aborted or timed out prompt
// yields an empty answer.
func (h *Huh) Input(prompt string) (string, error) {
	var answer string

	field := huh.NewInput().
		Title(prompt).
		Value(&answer)

	err := h.run(field)
	if errors.Is(err, huh.ErrTimeout) || errors.Is(err, huh.ErrUserAborted) {
		return "", nil
	}

	return answer, err
}
