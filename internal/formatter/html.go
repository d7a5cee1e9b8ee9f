package formatter

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/yildizm/folio/internal/content"
)

// htmlFormatter renders the Markdown output as a standalone page
type htmlFormatter struct {
	markdown Formatter
	md       goldmark.Markdown
	tmpl     *template.Template
	dark     bool
}

// NewHTML creates a new HTML formatter. dark selects the initial palette.
func NewHTML(dark bool) Formatter {
	return &htmlFormatter{
		markdown: NewMarkdown(),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
		dark: dark,
	}
}

func (f *htmlFormatter) Format(p *content.Portfolio) ([]byte, error) {
	source, err := f.markdown.Format(p)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := f.md.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	theme := "light"
	if f.dark {
		theme = "dark"
	}

	var page bytes.Buffer
	err = f.tmpl.Execute(&page, struct {
		Title string
		Theme string
		Body  template.HTML
	}{
		Title: p.Name,
		Theme: theme,
		// #nosec G203 - goldmark escapes raw HTML unless WithUnsafe is set
		Body: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return page.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { --bg: #ffffff; --fg: #1f2937; --accent: #2563eb; --muted: #6b7280; }
[data-theme="dark"] { --bg: #111827; --fg: #e5e7eb; --accent: #60a5fa; --muted: #9ca3af; }
body { background: var(--bg); color: var(--fg); font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
a { color: var(--accent); }
blockquote { color: var(--muted); border-left: 3px solid var(--accent); margin-left: 0; padding-left: 1rem; }
table { border-collapse: collapse; }
td, th { padding: 0.25rem 0.75rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`
