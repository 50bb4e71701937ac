// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for partconv init, collecting the
// source root, target root, and field delimiter.
func RunInitForm(source, target, delimiter *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Source root").
				Placeholder("e.g., /data/retail/raw").
				Value(source).
				Validate(requiredValidator("source root")),
			huh.NewInput().
				Title("Target root").
				Placeholder("e.g., /data/retail/json").
				Value(target).
				Validate(requiredValidator("target root")),
			huh.NewInput().
				Title("Field delimiter").
				Placeholder(",").
				Value(delimiter).
				Validate(func(s string) error {
					if s != "" && utf8.RuneCountInString(s) != 1 {
						return errors.New("delimiter must be a single character")
					}
					return nil
				}),
		),
	).WithTheme(Theme()).Run()
}
