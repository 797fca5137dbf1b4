// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt (esc or ctrl-c).
var ErrCancelled = errors.New("cancelled by user")

// ChooseStrings prompts the user to select one of the options, presented in
// the given order. Returns ErrCancelled if the prompt was aborted.
func ChooseStrings(title string, options []string, config Config) (string, error) {
	var result string

	huhOpts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt, opt)
	}

	sel := huh.NewSelect[string]().
		Title(title).
		Options(huhOpts...).
		Value(&result)

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(getHuhTheme(config.Theme))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}

	return result, nil
}
