// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunDatasetMultiSelect prompts for a subset of the discovered datasets.
func RunDatasetMultiSelect(discovered []string, selected *[]string) error {
	options := make([]huh.Option[string], len(discovered))
	for i, name := range discovered {
		options[i] = huh.NewOption(name, name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select datasets to convert").
				Options(options...).
				Value(selected).
				Height(10).
				Validate(func(picked []string) error {
					if len(picked) == 0 {
						return errors.New("select at least one dataset")
					}
					return nil
				}),
		),
	).WithTheme(Theme()).Run()
}

// RunDatasetSelect prompts for a single dataset name.
func RunDatasetSelect(title string, datasets []string, selected *string) error {
	options := make([]huh.Option[string], len(datasets))
	for i, name := range datasets {
		options[i] = huh.NewOption(name, name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Filtering(true).
				Value(selected).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}
