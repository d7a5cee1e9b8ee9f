package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/folio/internal/content"
	"github.com/yildizm/folio/internal/emoji"
	"github.com/yildizm/folio/internal/ui/components"
)

const (
	navbarHeight = 2
	footerHeight = 1
	maxTextWidth = 80
	pageMargin   = 2
)

// sectionSpan is the line range [start, end) a section occupies in the page.
type sectionSpan struct {
	section Section
	start   int
	end     int
}

// dimTheme is the style set for sections not yet revealed.
func dimTheme(t Theme) Theme {
	d := t
	d.Primary = t.Muted
	d.Secondary = t.Muted
	d.Accent = t.Muted
	d.Success = t.Muted
	d.Error = t.Muted
	d.Foreground = t.Muted
	d.Progress = t.Muted
	return d
}

func (m *Model) contentWidth() int {
	return max(20, min(m.width-2*pageMargin, maxTextWidth))
}

// View renders the navbar, the page viewport and the footer.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavbar(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m *Model) renderNavbar() string {
	st := m.styles

	brand := st.Title.Render(m.portfolio.Name)
	links := make([]string, 0, len(Sections))
	for _, s := range Sections {
		style := st.NavLink
		if s == m.active {
			style = st.NavLinkActive
		}
		links = append(links, style.Render(s.String()))
	}
	icon := emoji.GetEmoji("light")
	if m.theme.IsDark() {
		icon = emoji.GetEmoji("dark")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", strings.Join(links, ""), "  ", icon)

	if m.navbarScrolled {
		return st.NavbarScrolled.Width(m.width).Render(row)
	}
	// keep the same height as the scrolled navbar and its border
	return st.Navbar.Width(m.width).Render(row) + "\n"
}

func (m *Model) renderFooter() string {
	bindings := m.keys.PageHelp()
	if m.form.editing {
		bindings = m.keys.FormHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	footer := m.styles.Help.Render(strings.Join(parts, " • "))

	if m.status != "" {
		footer = m.styles.Muted.Render(m.status) + "  " + footer
	}
	if m.showBackToTop {
		footer = m.styles.Hint.Render(emoji.GetEmoji("top")+" top (t)") + " " + footer
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(footer)
}

// renderPage renders every section and records where each one starts.
func (m *Model) renderPage() (string, []sectionSpan) {
	blocks := make([]string, 0, len(Sections))
	spans := make([]sectionSpan, 0, len(Sections))
	line := 0

	for _, s := range Sections {
		st := m.dimStyles
		if m.revealed[s] {
			st = m.styles
		}
		block := lipgloss.NewStyle().PaddingLeft(pageMargin).Render(m.renderSection(s, st))
		h := lipgloss.Height(block)
		spans = append(spans, sectionSpan{section: s, start: line, end: line + h})
		blocks = append(blocks, block)
		line += h
	}
	return strings.Join(blocks, "\n"), spans
}

func (m *Model) renderSection(s Section, st *Styles) string {
	switch s {
	case SectionHome:
		return m.renderHome()
	case SectionAbout:
		return m.renderAbout(st)
	case SectionProjects:
		return m.renderProjects(st)
	case SectionSkills:
		return m.renderSkills(st)
	case SectionContact:
		return m.renderContact(st)
	}
	return ""
}

// renderHome fills the first screen so the rest of the page starts below the fold.
func (m *Model) renderHome() string {
	st := m.styles
	hero := st.Hero.Render(m.hero) + st.Cursor.Render("▌")

	block := lipgloss.JoinVertical(lipgloss.Left,
		"",
		st.Muted.Render("Hi, I'm"),
		st.Title.Render(m.portfolio.Name),
		st.Body.Render(m.portfolio.Role),
		"",
		hero,
		"",
		st.Muted.Render(emoji.GetEmoji("keyboard")+" press tab to explore"),
	)
	return lipgloss.NewStyle().Height(max(1, m.viewport.Height)).Render(block)
}

func (m *Model) renderAbout(st *Styles) string {
	width := m.contentWidth()
	rows := []string{
		st.Header.Render(emoji.GetEmoji("about") + " About"),
		st.Body.Width(width).Render(m.portfolio.About),
	}
	if len(m.portfolio.Links) > 0 {
		rows = append(rows, "")
		for _, l := range m.portfolio.Links {
			rows = append(rows, st.Muted.Render(emoji.GetEmoji("link")+" "+l.Label+": ")+st.Body.Render(l.URL))
		}
	}
	rows = append(rows, "")
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderProjects(st *Styles) string {
	width := m.contentWidth()

	buttons := make([]string, 0, len(m.portfolio.Categories()))
	for i, c := range m.portfolio.Categories() {
		style := st.FilterButton
		if c == m.filter.Active() {
			style = st.FilterActive
		}
		buttons = append(buttons, style.Render(fmt.Sprintf("%d %s", i+1, c)))
	}

	rows := []string{
		st.Header.Render(emoji.GetEmoji("project") + " Projects"),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	}

	visible := m.filter.VisibleIndexes()
	if len(visible) == 0 {
		rows = append(rows, st.Muted.Render("No projects in this category."))
	}
	for _, i := range visible {
		rows = append(rows, m.renderCard(m.filter.Projects()[i], m.filter.Visibility(i), i == m.focusedCard, st, width))
	}
	rows = append(rows, "")
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCard(p content.Project, vis content.Visibility, focused bool, st *Styles, width int) string {
	style := st.Card
	switch {
	case vis == content.Appearing || vis == content.Fading:
		style = st.CardFaded
	case focused:
		style = st.CardRaised
	}

	lines := []string{st.Title.Render(p.Title)}
	if p.Description != "" {
		lines = append(lines, st.Body.Width(width-4).Render(p.Description))
	}
	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, "#"+t)
		}
		lines = append(lines, st.Tag.Render(strings.Join(tags, " ")))
	}
	if p.URL != "" {
		lines = append(lines, st.Muted.Render(emoji.GetEmoji("link")+" "+p.URL))
	}
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderSkills(st *Styles) string {
	labelWidth := 0
	for _, s := range m.portfolio.Skills {
		labelWidth = max(labelWidth, lipgloss.Width(s.Name))
	}
	barWidth := max(10, m.contentWidth()-labelWidth-10)

	rows := []string{st.Header.Render(emoji.GetEmoji("skill") + " Skills")}
	for _, s := range m.portfolio.Skills {
		bar := components.NewSkillBar(s.Name, s.Proficiency, barWidth)
		bar.LabelWidth = labelWidth
		bar.Fraction = m.skillFraction
		bar.FillStyle = st.Progress
		bar.TrackStyle = st.Track
		rows = append(rows, bar.Render())
	}
	rows = append(rows, "")
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderContact(st *Styles) string {
	rows := []string{
		st.Header.Render(emoji.GetEmoji("contact") + " Contact"),
		st.Muted.Render("Have a project in mind? Press c to write a message."),
		"",
		m.form.View(st, m.contentWidth()),
		"",
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
