package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by all commands. Values come from the
// defaults, then an optional .env file, then the environment; command line
// flags are applied last by the CLI.
type Config struct {
	// IndentWidth is the number of spaces per indentation level of the
	// generated C; 0 means tabs.
	IndentWidth int
	LogLevel    slog.Level
	Color       bool
	EnvFile     string
	// CC is the C compiler the run command invokes.
	CC string
}

const maxIndentWidth = 16

func DefaultConfig() Config {
	return Config{
		IndentWidth: 4,
		LogLevel:    slog.LevelWarn,
		Color:       true,
		EnvFile:     ".env",
		CC:          "cc",
	}
}

// LoadConfig loads envFile (".env" when empty) into the process
// environment without overriding variables that are already set, then
// reads the PYTOC_* variables. A missing env file is not an error.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()
	if envFile != "" {
		cfg.EnvFile = envFile
	}
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading %s: %w", cfg.EnvFile, err)
	}

	if v := os.Getenv("PYTOC_INDENT"); v != "" {
		width, err := parseIndent(v)
		if err != nil {
			return cfg, fmt.Errorf("PYTOC_INDENT: %w", err)
		}
		cfg.IndentWidth = width
	}
	if v := os.Getenv("PYTOC_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("PYTOC_LOG_LEVEL: %w", err)
		}
	}
	if v := os.Getenv("PYTOC_COLOR"); v != "" {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("PYTOC_COLOR: %w", err)
		}
		cfg.Color = color
	}
	if v := os.Getenv("PYTOC_CC"); v != "" {
		cfg.CC = v
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	return cfg, nil
}

// parseIndent accepts a space count or "tab".
func parseIndent(v string) (int, error) {
	if strings.EqualFold(v, "tab") {
		return 0, nil
	}
	width, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid indent %q", v)
	}
	if width < 0 || width > maxIndentWidth {
		return 0, fmt.Errorf("indent %d out of range 0..%d", width, maxIndentWidth)
	}
	return width, nil
}

// TranslateOptions returns the translator options this configuration
// selects.
func (c Config) TranslateOptions(logger *slog.Logger) Options {
	return Options{IndentWidth: c.IndentWidth, Logger: logger}
}
