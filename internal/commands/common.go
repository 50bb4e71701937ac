// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"unicode/utf8"

	"github.com/dacolabs/partconv/internal/config"
	"github.com/dacolabs/partconv/internal/convert"
)

// loadProjectConfig reads partconv.yaml from the working directory when
// present and lets flag values override it. Roots left unset fall back to
// the environment during Resolve, which the caller runs for the roots it
// actually needs.
func loadProjectConfig(source, target string) (*config.Config, error) {
	cfg, err := config.LoadIfPresent(".")
	if err != nil {
		return nil, err
	}
	if source != "" {
		cfg.SourceRoot = source
	}
	if target != "" {
		cfg.TargetRoot = target
	}
	return cfg, nil
}

// delimiterRune converts a delimiter flag or config value to a rune,
// defaulting to a comma when unset.
func delimiterRune(s string) (rune, error) {
	if s == "" {
		return convert.DefaultDelimiter, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("delimiter must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
