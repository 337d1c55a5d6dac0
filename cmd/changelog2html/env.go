package main

import (
	"context"
	"io"
	"os"

	"github.com/alnah/go-changelog2html/internal/fileutil"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Context    context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Getenv     func(string) string
	Environ    func() []string
	FileExists func(string) bool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Context:    context.Background(),
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		Environ:    os.Environ,
		FileExists: fileutil.FileExists,
	}
}
