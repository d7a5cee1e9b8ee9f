package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/folio/internal/content"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(p *content.Portfolio) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Role != "" {
		fmt.Fprintf(&b, "**%s**\n\n", p.Role)
	}
	if phrases := p.Phrases(); len(phrases) > 0 {
		fmt.Fprintf(&b, "> %s\n\n", strings.Join(phrases, " · "))
	}

	f.writeTableOfContents(&b, p)

	if about := strings.TrimSpace(p.About); about != "" {
		b.WriteString("## About\n\n")
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

func (f *markdownFormatter) writeTableOfContents(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Contents\n")
	if strings.TrimSpace(p.About) != "" {
		b.WriteString("- [About](#about)\n")
	}
	if len(p.Projects) > 0 {
		b.WriteString("- [Projects](#projects)\n")
	}
	if len(p.Skills) > 0 {
		b.WriteString("- [Skills](#skills)\n")
	}
	if len(p.Links) > 0 {
		b.WriteString("- [Links](#links)\n")
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeProjects(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Projects\n\n")

	for _, group := range groupProjects(p) {
		fmt.Fprintf(b, "### %s\n\n", group.Category)
		for _, project := range group.Projects {
			title := project.Title
			if project.URL != "" {
				title = fmt.Sprintf("[%s](%s)", project.Title, project.URL)
			}
			fmt.Fprintf(b, "- **%s**", title)
			if project.Description != "" {
				fmt.Fprintf(b, ": %s", project.Description)
			}
			if len(project.Tags) > 0 {
				fmt.Fprintf(b, " `%s`", strings.Join(project.Tags, "` `"))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func (f *markdownFormatter) writeSkills(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Skills\n\n")
	b.WriteString("| Skill | Proficiency | |\n")
	b.WriteString("|-------|-------------|--|\n")
	for _, skill := range p.Skills {
		fmt.Fprintf(b, "| %s | %d%% | `%s` |\n", skill.Name, skill.Proficiency, textBar(proficiency(skill), 20))
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeLinks(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Links\n\n")
	for _, link := range p.Links {
		fmt.Fprintf(b, "- [%s](%s)\n", link.Label, link.URL)
	}
}
