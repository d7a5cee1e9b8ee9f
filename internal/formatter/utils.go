package formatter

import (
	"strings"

	"github.com/yildizm/folio/internal/content"
)

// projectGroup is one category and its projects, in content order.
type projectGroup struct {
	Category string
	Projects []content.Project
}

// groupProjects groups projects by category. The "all" pseudo-category is skipped.
func groupProjects(p *content.Portfolio) []projectGroup {
	categories := p.Categories()[1:]
	groups := make([]projectGroup, 0, len(categories))
	for _, category := range categories {
		group := projectGroup{Category: category}
		for _, project := range p.Projects {
			if project.Category == category {
				group.Projects = append(group.Projects, project)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// proficiency converts a skill percentage to the 0..1 range termfmt bars expect.
func proficiency(skill content.Skill) float64 {
	return float64(skill.Proficiency) / 100
}

// textBar draws a fixed-width block bar for outputs that cannot carry color.
func textBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
