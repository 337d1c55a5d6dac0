package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	changelog2html "github.com/alnah/go-changelog2html"
	"github.com/alnah/go-changelog2html/internal/config"
	"github.com/alnah/go-changelog2html/internal/dateutil"
	"github.com/alnah/go-changelog2html/internal/fileutil"
	"github.com/alnah/go-changelog2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput      = errors.New("failed to read changelog")
	ErrWriteOutput    = errors.New("failed to write HTML file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrTooManyArgs    = errors.New("too many arguments: expected at most one input file")
)

// filePermissions for the written report.
const filePermissions = 0o644

// run resolves configuration, converts the changelog and writes the page.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment, log *zap.Logger) error {
	if len(args) > 1 {
		return ErrTooManyArgs
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadConfig(flags.config, envCfg)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, args, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}

	conv, err := changelog2html.NewConverter(
		changelog2html.WithTimeout(timeout),
		changelog2html.WithStyle(resolveStyle(cfg, env)),
		changelog2html.WithAssetPath(cfg.Assets.BasePath),
		changelog2html.WithTitle(cfg.Page.Title),
		changelog2html.WithFontURL(cfg.Page.FontURL),
		changelog2html.WithDateFormat(cfg.Release.DateFormat),
		changelog2html.WithLogger(log),
	)
	if err != nil {
		return err
	}

	content, err := fileutil.ReadTextFile(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	log.Info("converting", zap.String("input", cfg.Input.Path), zap.Duration("timeout", timeout))

	if cfg.Output.Path == "" {
		_, err := conv.Convert(ctx, env.Stdout, changelog2html.Input{Markdown: content})
		return err
	}

	var page bytes.Buffer
	if _, err := conv.Convert(ctx, &page, changelog2html.Input{Markdown: content}); err != nil {
		return err
	}
	// #nosec G306 -- HTML reports are meant to be readable
	if err := os.WriteFile(cfg.Output.Path, page.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	log.Info("report written", zap.String("output", cfg.Output.Path))
	return nil
}

// loadConfig loads the config named by the flag, else by the environment,
// else returns the defaults.
func loadConfig(flagValue string, envCfg *envConfig) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, args []string, cfg *config.Config) {
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.title != "" {
		cfg.Page.Title = flags.title
	}
	if flags.fontURL != "" {
		cfg.Page.FontURL = flags.fontURL
	}
	if flags.dateFormat != "" {
		cfg.Release.DateFormat = flags.dateFormat
	}
}

// resolveStyle returns the configured style, else ./style.css when it
// exists, else "" for the embedded default.
func resolveStyle(cfg *config.Config, env *Environment) string {
	if cfg.Style.Name != "" {
		return cfg.Style.Name
	}
	if env.FileExists(config.DefaultStyleFile) {
		return config.DefaultStyleFile
	}
	return ""
}

// defaultTimeout matches the library default.
const defaultTimeout = 30 * time.Second

// resolveTimeout picks the flag value, else the environment value, else
// the default.
func resolveTimeout(flagValue string, envCfg *envConfig) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envCfg.Timeout > 0 {
		return envCfg.Timeout, nil
	}
	return defaultTimeout, nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var nf *config.NotFoundError
	if errors.As(err, &nf) {
		return hints.ForConfigNotFound(nf.Tried)
	}

	var pathErr *fs.PathError
	if errors.Is(err, ErrReadInput) && errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr) {
		return hints.ForInputNotFound(pathErr.Path)
	}

	switch {
	case errors.Is(err, changelog2html.ErrStyleNotFound):
		return hints.ForStyleNotFound(changelog2html.StyleNames())
	case errors.Is(err, changelog2html.ErrInvalidDateFormat),
		errors.Is(err, dateutil.ErrInvalidDateFormat):
		return hints.ForDateFormat()
	}
	return ""
}
