// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config reads the default parameters
// of taxtree commands
// from the environment.
//
// Variables can be defined in the shell
// or in a .env file in the working directory.
// Variables already defined in the shell
// take precedence over the ones in the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/js-arias/taxtree/taxonomy"
)

// Environment variables.
const (
	LevelVar = "TAXTREE_LEVEL"
	TopVar   = "TAXTREE_TOP"
	LogVar   = "TAXTREE_LOG"
)

// Default values.
const (
	DefaultLevel = taxonomy.Genus
	DefaultTop   = 20
)

// Config stores the default parameters.
type Config struct {
	// Level is the reference level
	// used to select the most abundant taxa.
	Level taxonomy.Level

	// Top is the number of taxa kept
	// at the reference level.
	Top int

	// Log is the level of the log messages.
	Log zapcore.Level
}

// Default returns the configuration
// used when no variable is defined.
func Default() Config {
	return Config{
		Level: DefaultLevel,
		Top:   DefaultTop,
		Log:   zapcore.InfoLevel,
	}
}

var current = Default()

// Current returns the configuration
// of the last successful call to Load.
func Current() Config {
	return current
}

// Load reads the given .env files
// (by default, .env in the working directory)
// and returns the configuration
// defined in the environment.
// A missing file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Default(), fmt.Errorf("while reading .env file: %v", err)
	}
	cfg, err := FromEnv()
	if err != nil {
		return cfg, err
	}
	current = cfg
	return cfg, nil
}

// FromEnv returns the configuration
// defined in the environment variables.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(LevelVar)); v != "" {
		lv := taxonomy.ParseLevel(v)
		if !lv.IsRank() {
			return cfg, fmt.Errorf("variable %s: unknown level %q", LevelVar, v)
		}
		cfg.Level = lv
	}

	if v := strings.TrimSpace(os.Getenv(TopVar)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("variable %s: %v", TopVar, err)
		}
		cfg.Top = n
	}

	if v := strings.TrimSpace(os.Getenv(LogVar)); v != "" {
		lv, err := zapcore.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("variable %s: %v", LogVar, err)
		}
		cfg.Log = lv
	}

	return cfg, nil
}
