package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-changelog2html/internal/config"
)

// envPrefix namespaces the recognized environment variables.
const envPrefix = "CHANGELOG2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CHANGELOG2HTML_CONFIG: config file name or path
	Style      string        // CHANGELOG2HTML_STYLE: style name or path
	Timeout    time.Duration // CHANGELOG2HTML_TIMEOUT: conversion timeout
	Output     string        // CHANGELOG2HTML_OUTPUT: output file
	Title      string        // CHANGELOG2HTML_TITLE: page title
	DateFormat string        // CHANGELOG2HTML_DATE_FORMAT: release date format
}

// knownEnvVars lists valid CHANGELOG2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	envPrefix + "CONFIG":      true,
	envPrefix + "STYLE":       true,
	envPrefix + "TIMEOUT":     true,
	envPrefix + "OUTPUT":      true,
	envPrefix + "TITLE":       true,
	envPrefix + "DATE_FORMAT": true,
}

// loadEnvConfig reads configuration through getenv.
// An invalid or non-positive timeout is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv(envPrefix + "CONFIG"),
		Style:      getenv(envPrefix + "STYLE"),
		Output:     getenv(envPrefix + "OUTPUT"),
		Title:      getenv(envPrefix + "TITLE"),
		DateFormat: getenv(envPrefix + "DATE_FORMAT"),
	}

	if timeout := getenv(envPrefix + "TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars reports unrecognized CHANGELOG2HTML_* variables,
// which are usually typos.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config values that are still empty.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.Output != "" && cfg.Output.Path == "" {
		cfg.Output.Path = env.Output
	}
	if env.Title != "" && cfg.Page.Title == "" {
		cfg.Page.Title = env.Title
	}
	if env.DateFormat != "" && cfg.Release.DateFormat == "" {
		cfg.Release.DateFormat = env.DateFormat
	}
}
