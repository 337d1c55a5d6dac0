package main

// Notes:
// - runMain: exit codes and output for the main scenarios, driven through an
//   injected Environment so tests stay parallel. The default ./changelog.md
//   lookup needs t.Chdir and runs serially.
// - newLogger: level selection only; encoding is zap's.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

const sampleChangelog = "# Acme\n\n## 1.0.0 - 2024-01-01\n\n### Added\n\nLogin - Support for \"Google\" login [regression]\n"

// testEnv returns an Environment with captured output and an optional
// set of environment variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Context: context.Background(),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		FileExists: func(string) bool { return false },
	}
	return env, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestRunMain - End-to-end CLI behavior
// ---------------------------------------------------------------------------

func TestRunMain_Stdout(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "changelog.md", sampleChangelog)
	env, stdout, stderr := testEnv(nil)

	code := runMain([]string{"changelog2html", input}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	html := stdout.String()
	for _, want := range []string{
		"<title>Acme</title>",
		`<span class="changelog__release__date">2024-01-01</span>`,
		`<h3 class="changelog__change-title">Login</h3>`,
		"<span class='changelog__quote'>Google</span>",
		"<span class='changelog__regress'>Regression</span>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunMain_OutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "changelog.md", sampleChangelog)
	css := writeFile(t, dir, "brand.css", ".brand-marker{}")
	output := filepath.Join(dir, "out.html")
	env, stdout, stderr := testEnv(nil)

	code := runMain([]string{"changelog2html", "-o", output, "-s", css, "--title", "Release Notes", "--date-format", "long", input}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when writing a file, got %q", stdout.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	html := string(data)
	for _, want := range []string{".brand-marker{}", "<title>Release Notes</title>", ">January 1, 2024</span>"} {
		if !strings.Contains(html, want) {
			t.Errorf("output file missing %q", want)
		}
	}
}

func TestRunMain_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "notes.md", sampleChangelog)
	cfgPath := writeFile(t, dir, "cfg.yaml", "input:\n  path: "+input+"\npage:\n  title: From Config\n")
	env, stdout, stderr := testEnv(nil)

	code := runMain([]string{"changelog2html", "--config", cfgPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "<title>From Config</title>") {
		t.Error("config title should be used")
	}
}

func TestRunMain_EnvOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "changelog.md", sampleChangelog)
	env, stdout, stderr := testEnv(map[string]string{
		envPrefix + "TITLE":   "From Env",
		envPrefix + "TIMEUOT": "1m",
	})

	code := runMain([]string{"changelog2html", input}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "<title>From Env</title>") {
		t.Error("environment title should be used")
	}
	if !strings.Contains(stderr.String(), "unknown environment variable CHANGELOG2HTML_TIMEUOT") {
		t.Errorf("typo should be reported, stderr: %q", stderr.String())
	}

	// Flags win over the environment.
	env, stdout, _ = testEnv(map[string]string{envPrefix + "TITLE": "From Env"})
	if code := runMain([]string{"changelog2html", "--title", "From Flag", input}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "<title>From Flag</title>") {
		t.Error("flag title should win over environment")
	}
}

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "changelog.md", sampleChangelog)
	empty := writeFile(t, dir, "empty.md", "")
	badCfg := writeFile(t, dir, "bad.yaml", "nope: true\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"unknown flag", []string{"--bogus"}, ExitUsage, "unknown flag"},
		{"too many args", []string{input, input}, ExitUsage, "too many arguments"},
		{"missing input", []string{filepath.Join(dir, "missing.md")}, ExitIO, "hint:"},
		{"empty input", []string{empty}, ExitUsage, "cannot be empty"},
		{"unknown style", []string{"-s", "nope", input}, ExitUsage, "available: changelog"},
		{"bad date format", []string{"--date-format", "[YYYY", input}, ExitUsage, "tokens:"},
		{"bad timeout", []string{"-t", "soon", input}, ExitUsage, "invalid timeout"},
		{"bad config", []string{"-c", badCfg, input}, ExitUsage, "failed to parse config"},
		{"missing config name", []string{"-c", "no-such-config-xyz", input}, ExitUsage, "hint: use --config"},
		{"unwritable output", []string{"-o", filepath.Join(dir, "no", "such", "dir", "out.html"), input}, ExitIO, "failed to write HTML file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(nil)
			code := runMain(append([]string{"changelog2html"}, tt.args...), env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRunMain_HelpAndVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)
	if code := runMain([]string{"changelog2html", "--help"}, env); code != ExitSuccess {
		t.Errorf("--help exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "Usage: changelog2html") {
		t.Error("--help should print usage")
	}

	env, stdout, _ = testEnv(nil)
	if code := runMain([]string{"changelog2html", "--version"}, env); code != ExitSuccess {
		t.Errorf("--version exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("--version output = %q", stdout.String())
	}
}

// Uses t.Chdir, so not parallel.
func TestRunMain_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "changelog.md", sampleChangelog)
	writeFile(t, dir, "style.css", ".local-style{}")
	t.Chdir(dir)

	env, stdout, stderr := testEnv(nil)
	env.FileExists = func(p string) bool { return p == "style.css" }

	code := runMain([]string{"changelog2html"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), ".local-style{}") {
		t.Error("./style.css should be used when present")
	}
}

// ---------------------------------------------------------------------------
// TestNewLogger - Level selection
// ---------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		quiet     bool
		verbose   bool
		infoOn    bool
		warnOn    bool
		debugOnly bool
	}{
		{"default", false, false, false, true, false},
		{"verbose", false, true, true, true, false},
		{"quiet", true, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := newLogger(&bytes.Buffer{}, tt.quiet, tt.verbose)
			if got := log.Core().Enabled(zapcore.InfoLevel); got != tt.infoOn {
				t.Errorf("Info enabled = %v, want %v", got, tt.infoOn)
			}
			if got := log.Core().Enabled(zapcore.WarnLevel); got != tt.warnOn {
				t.Errorf("Warn enabled = %v, want %v", got, tt.warnOn)
			}
			if log.Core().Enabled(zapcore.DebugLevel) {
				t.Error("Debug should never be enabled")
			}
		})
	}
}

func TestNewLogger_WritesConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, false, true)
	log.Info("converting")
	_ = log.Sync()

	if !strings.Contains(buf.String(), "INFO") || !strings.Contains(buf.String(), "converting") {
		t.Errorf("console output = %q", buf.String())
	}
}
