// Package content holds the portfolio shown by folio: profile text, projects,
// skills and links, loaded from YAML or taken from the built-in sample.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yildizm/folio/internal/typewriter"
)

// CategoryAll is the filter value that shows every project.
const CategoryAll = "all"

// Portfolio is the whole page content.
type Portfolio struct {
	Name     string    `yaml:"name" json:"name"`
	Role     string    `yaml:"role" json:"role"`
	Tagline  string    `yaml:"tagline" json:"tagline"` // comma-separated typewriter phrases
	About    string    `yaml:"about" json:"about"`
	Projects []Project `yaml:"projects" json:"projects"`
	Skills   []Skill   `yaml:"skills" json:"skills"`
	Links    []Link    `yaml:"links" json:"links"`
}

// Project is one portfolio card.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category"`
	Tags        []string `yaml:"tags" json:"tags"`
	URL         string   `yaml:"url" json:"url"`
}

// Skill is one progress bar. Proficiency is a percentage.
type Skill struct {
	Name        string `yaml:"name" json:"name"`
	Proficiency int    `yaml:"proficiency" json:"proficiency"`
}

// Link is a contact or social link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Load reads and validates a portfolio YAML file.
func Load(path string) (*Portfolio, error) {
	// #nosec G304 - path comes from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates portfolio YAML.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the page relies on.
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(typewriter.ParsePhrases(p.Tagline)) == 0 {
		errs = append(errs, errors.New("tagline must contain at least one phrase"))
	}
	for i, project := range p.Projects {
		if strings.TrimSpace(project.Title) == "" {
			errs = append(errs, fmt.Errorf("project %d: title is required", i+1))
		}
		if strings.TrimSpace(project.Category) == "" {
			errs = append(errs, fmt.Errorf("project %d: category is required", i+1))
		} else if strings.EqualFold(project.Category, CategoryAll) {
			errs = append(errs, fmt.Errorf("project %d: category %q is reserved", i+1, CategoryAll))
		}
	}
	for _, skill := range p.Skills {
		if skill.Proficiency < 0 || skill.Proficiency > 100 {
			errs = append(errs, fmt.Errorf("skill %s: proficiency %d out of range 0-100", skill.Name, skill.Proficiency))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid portfolio: %w", errors.Join(errs...))
	}
	return nil
}

// Phrases returns the tagline split into typewriter phrases.
func (p *Portfolio) Phrases() []string {
	return typewriter.ParsePhrases(p.Tagline)
}

// Categories returns "all" followed by the distinct project categories in
// the order they first appear.
func (p *Portfolio) Categories() []string {
	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, project := range p.Projects {
		if seen[project.Category] {
			continue
		}
		seen[project.Category] = true
		categories = append(categories, project.Category)
	}
	return categories
}

// Default returns the built-in sample portfolio.
func Default() *Portfolio {
	return &Portfolio{
		Name:    "Alex Morgan",
		Role:    "Software Engineer",
		Tagline: "Full-Stack Developer,Go Enthusiast,Open Source Contributor,Problem Solver",
		About: "I build tools that are useful and fun to use, and I like knowing how things work " +
			"behind the scenes. Most of my projects start as a small idea and turn into a chance " +
			"to learn a new language, try a new tool, or work through a tricky problem.",
		Projects: []Project{
			{
				Title:       "Terminal Mail",
				Description: "A keyboard-driven email client for the terminal with fuzzy search.",
				Category:    "cli",
				Tags:        []string{"go", "imap", "tui"},
				URL:         "https://example.com/terminal-mail",
			},
			{
				Title:       "Log Lens",
				Description: "Pattern detection and summaries for large application logs.",
				Category:    "cli",
				Tags:        []string{"go", "parsing"},
			},
			{
				Title:       "Game Recommender",
				Description: "Content-based recommendations using TF-IDF and cosine similarity.",
				Category:    "data",
				Tags:        []string{"python", "ml"},
			},
			{
				Title:       "Portfolio",
				Description: "This site, rebuilt as a terminal application.",
				Category:    "web",
				Tags:        []string{"go", "bubbletea"},
			},
		},
		Skills: []Skill{
			{Name: "Go", Proficiency: 90},
			{Name: "Python", Proficiency: 75},
			{Name: "SQL", Proficiency: 70},
			{Name: "JavaScript", Proficiency: 60},
		},
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/example"},
			{Label: "Email", URL: "mailto:alex@example.com"},
		},
	}
}
