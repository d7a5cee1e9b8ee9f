package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/folio/internal/content"
	"github.com/yildizm/folio/internal/emoji"
)

// terminalFormatter formats the portfolio as go-termfmt tree views
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(p *content.Portfolio) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, p)
	f.writeTagline(&b, p)

	if about := strings.TrimSpace(p.About); about != "" {
		b.WriteString(heading("about", "About"))
		b.WriteString(about + "\n\n")
	}
	if len(p.Projects) > 0 {
		f.writeProjects(&b, p)
	}
	if len(p.Skills) > 0 {
		f.writeSkills(&b, p)
	}
	if len(p.Links) > 0 {
		f.writeLinks(&b, p)
	}

	return []byte(b.String()), nil
}

func heading(key, title string) string {
	return emoji.GetEmoji(key) + " " + title + "\n"
}

func (f *terminalFormatter) writeHeader(b *strings.Builder, p *content.Portfolio) {
	b.WriteString(heading("about", p.Name))
	if p.Role != "" {
		b.WriteString(p.Role + "\n")
	}
	b.WriteString("\n")
}

func (f *terminalFormatter) writeTagline(b *strings.Builder, p *content.Portfolio) {
	phrases := p.Phrases()
	b.WriteString(heading("keyboard", "Tagline"))

	items := make([]termfmt.TreeItem, 0, len(phrases))
	for i, phrase := range phrases {
		items = append(items, termfmt.TreeItem{Label: phrase, Last: i == len(phrases)-1})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

func (f *terminalFormatter) writeProjects(b *strings.Builder, p *content.Portfolio) {
	b.WriteString(heading("project", "Projects"))

	groups := groupProjects(p)
	items := make([]termfmt.TreeItem, 0, len(groups))
	for i, group := range groups {
		children := make([]termfmt.TreeItem, 0, len(group.Projects))
		for j, project := range group.Projects {
			children = append(children, termfmt.TreeItem{
				Label: project.Title,
				Value: project.Description,
				Last:  j == len(group.Projects)-1,
			})
		}
		items = append(items, termfmt.TreeItem{
			Label:    group.Category,
			Value:    fmt.Sprintf("(%d)", len(children)),
			Children: children,
			Last:     i == len(groups)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

func (f *terminalFormatter) writeSkills(b *strings.Builder, p *content.Portfolio) {
	b.WriteString(heading("skill", "Skills"))

	items := make([]termfmt.TreeItem, 0, len(p.Skills))
	for i, skill := range p.Skills {
		bar := termfmt.CreateConfidenceBar(proficiency(skill), f.opts)
		items = append(items, termfmt.TreeItem{
			Label: skill.Name,
			Value: fmt.Sprintf("%s %d%%", bar, skill.Proficiency),
			Last:  i == len(p.Skills)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

func (f *terminalFormatter) writeLinks(b *strings.Builder, p *content.Portfolio) {
	b.WriteString(heading("link", "Links"))

	items := make([]termfmt.TreeItem, 0, len(p.Links))
	for i, link := range p.Links {
		items = append(items, termfmt.TreeItem{Label: link.Label, Value: link.URL, Last: i == len(p.Links)-1})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}
