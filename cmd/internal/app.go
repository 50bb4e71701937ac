// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"os"

	"github.com/dacolabs/partconv/internal/commands"
	"github.com/dacolabs/partconv/internal/logging"
	"github.com/joho/godotenv"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	// .env is optional; SRC_BASE_DIR and TGT_BASE_DIR may come from it.
	_ = godotenv.Load()

	log, closer, err := logging.New(os.Stderr, logging.Options{
		Level: getenv("LOG_LEVEL"),
		Dir:   logDir(getenv),
	})
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close() //nolint:errcheck
	}

	rootCmd := commands.NewRootCmd(log, getenv)
	return rootCmd.ExecuteContext(ctx)
}

func logDir(getenv func(string) string) string {
	if dir := getenv("LOG_DIR"); dir != "" {
		return dir
	}
	return "logs"
}
