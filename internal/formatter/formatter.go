// Package formatter renders a portfolio for non-interactive output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/folio/internal/content"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(p *content.Portfolio) ([]byte, error)
}

// Names lists the accepted --format values.
var Names = []string{"text", "json", "markdown", "html", "csv"}

// Options tune the formatters that care about presentation.
type Options struct {
	Color bool // text only
	Dark  bool // html only
}

// New returns the formatter registered under name.
func New(name string, opts Options) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "terminal":
		return NewTerminal(opts.Color), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "html":
		return NewHTML(opts.Dark), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Names, ", "))
	}
}
