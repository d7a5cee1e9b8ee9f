package formatter

import (
	"encoding/json"

	"github.com/yildizm/folio/internal/content"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the portfolio plus the values the page derives from it.
type JSONOutput struct {
	*content.Portfolio
	Phrases    []string `json:"phrases"`
	Categories []string `json:"categories"`
}

func (f *jsonFormatter) Format(p *content.Portfolio) ([]byte, error) {
	output := &JSONOutput{
		Portfolio:  p,
		Phrases:    p.Phrases(),
		Categories: p.Categories(),
	}
	return json.MarshalIndent(output, "", "  ")
}
