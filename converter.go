package changelog2html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/alnah/go-changelog2html/internal/assets"
	"github.com/alnah/go-changelog2html/internal/changelog"
	"github.com/alnah/go-changelog2html/internal/config"
	"github.com/alnah/go-changelog2html/internal/dateutil"
	"github.com/alnah/go-changelog2html/internal/event"
	"github.com/alnah/go-changelog2html/internal/fileutil"
	"github.com/alnah/go-changelog2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.EventParser          = (*pipeline.GoldmarkParser)(nil)
	_ pipeline.PageAssembler        = (*pipeline.PageInjection)(nil)
)

// Converter turns a changelog into a styled HTML report.
// Create with NewConverter and reuse it; Convert is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	assetLoader  assets.AssetLoader
	preprocessor pipeline.MarkdownPreprocessor
	parser       pipeline.EventParser
	page         pipeline.PageAssembler
	formatter    *dateutil.Formatter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithTitle, WithLogger).
// Returns error if asset loading, template parsing or option validation fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			fontURL: config.DefaultFontURL,
			log:     zap.NewNop(),
		},
		assetLoader:  assets.Default(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		parser:       pipeline.NewGoldmarkParser(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
		c.cfg.log.Debug("custom assets enabled",
			zap.String("path", c.cfg.assetPath),
			zap.Bool("custom", resolver.HasCustomLoader()),
		)
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.cfg.dateFormat != "" {
		f, err := dateutil.NewFormatter(c.cfg.dateFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
		}
		c.formatter = f
	}

	// Tests may inject the assembler.
	if c.page == nil {
		tmpl, err := c.assetLoader.LoadTemplate(assets.PageTemplateName)
		if err != nil {
			return nil, fmt.Errorf("%w: loading page template: %v", ErrTemplate, err)
		}
		page, err := pipeline.NewPageInjection(tmpl)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
		}
		c.page = page
	}

	return c, nil
}

// Convert parses input.Markdown and writes the complete HTML page to w.
// Nothing is written to w unless the whole page rendered.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, w io.Writer, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	events, err := c.parser.Parse(ctx, mdContent)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	driver := changelog.NewDriver(c.cfg.log)
	if c.formatter != nil {
		driver.FormatDate = c.formatter.Format
	}

	var body bytes.Buffer
	sum, err := driver.Run(event.NewCursor(events), &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	title := c.pageTitle(input.Title, sum.Title)

	css := c.cfg.style
	if input.CSS != "" {
		css += "\n" + input.CSS
	}

	err = c.page.Assemble(ctx, w, &pipeline.PageData{
		Title:   title,
		FontURL: c.cfg.fontURL,
		CSS:     css,
		Body:    body.String(),
	})
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case errors.Is(err, pipeline.ErrPageRender):
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	c.cfg.log.Info("changelog converted",
		zap.String("title", title),
		zap.Int("rendered", sum.Rendered),
		zap.Int("dropped", sum.Dropped),
	)

	return &Result{Title: title, Rendered: sum.Rendered, Dropped: sum.Dropped}, nil
}

// pageTitle picks the first non-empty of the per-call title, the
// configured title and the document's level-1 heading.
func (c *Converter) pageTitle(inputTitle, docTitle string) string {
	for _, t := range []string{inputTitle, c.cfg.title, docTitle} {
		if t != "" {
			return t
		}
	}
	return defaultTitle
}

// resolveStyle resolves the style input (name or path) to CSS content.
// Called during NewConverter after options are applied and the asset
// loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains a separator or an extension)
	if fileutil.IsFilePath(input) {
		content, err := fileutil.ReadTextFile(input)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrStyleNotFound, input, err)
		}
		c.cfg.style = content
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrStyleNotFound, input, err)
	}
	c.cfg.style = css
	return nil
}

// StyleNames lists the embedded styles usable with WithStyle.
func StyleNames() []string {
	return assets.StyleNames()
}
