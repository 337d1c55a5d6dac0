package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

const testPageTemplate = `<html><head><link rel="stylesheet" href="{{.FontURL}}"><style>{{.CSS}}</style><title>{{.Title}}</title></head>` +
	`<body><h1>{{.Title}}</h1>{{.Body}}</body></html>`

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no escape needed", "body { color: red; }", "body { color: red; }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"multiple occurrences", "</a></b>", `<\/a><\/b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPageInjection_Assemble(t *testing.T) {
	t.Parallel()

	page, err := NewPageInjection(testPageTemplate)
	if err != nil {
		t.Fatalf("NewPageInjection() error: %v", err)
	}

	body := `<h2 class="changelog__release">1.0.0</h2>` + "\n"
	var buf bytes.Buffer
	err = page.Assemble(context.Background(), &buf, &PageData{
		Title:   "Acme & Co",
		FontURL: "https://fonts.example.com/css",
		CSS:     ".changelog { color: #333; }",
		Body:    body,
	})
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		body,
		"<style>.changelog { color: #333; }</style>",
		"<h1>Acme &amp; Co</h1>",
		`href="https://fonts.example.com/css"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q:\n%s", want, got)
		}
	}
}

func TestPageInjection_SanitizesCSS(t *testing.T) {
	t.Parallel()

	page, err := NewPageInjection(testPageTemplate)
	if err != nil {
		t.Fatalf("NewPageInjection() error: %v", err)
	}

	var buf bytes.Buffer
	if err := page.Assemble(context.Background(), &buf, &PageData{CSS: "a{}</style><script>"}); err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if strings.Contains(buf.String(), "</style><script>") {
		t.Error("stylesheet escaped its <style> block")
	}
}

func TestNewPageInjection_InvalidTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewPageInjection("{{.Title")
	if !errors.Is(err, ErrPageRender) {
		t.Errorf("NewPageInjection() error = %v, want %v", err, ErrPageRender)
	}
}

func TestPageInjection_ExecuteErrorWritesNothing(t *testing.T) {
	t.Parallel()

	page, err := NewPageInjection("<p>{{.Missing}}</p>")
	if err != nil {
		t.Fatalf("NewPageInjection() error: %v", err)
	}

	var buf bytes.Buffer
	err = page.Assemble(context.Background(), &buf, &PageData{})
	if !errors.Is(err, ErrPageRender) {
		t.Errorf("Assemble() error = %v, want %v", err, ErrPageRender)
	}
	if buf.Len() != 0 {
		t.Errorf("failed execution wrote %q", buf.String())
	}
}
