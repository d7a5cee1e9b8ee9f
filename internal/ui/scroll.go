package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// refresh re-renders the page and updates everything that depends on the
// scroll position.
func (m *Model) refresh() tea.Cmd {
	if !m.ready {
		return nil
	}
	m.render()
	return m.syncScroll()
}

func (m *Model) render() {
	page, spans := m.renderPage()
	m.spans = spans
	offset := m.viewport.YOffset
	m.viewport.SetContent(page)
	m.viewport.SetYOffset(offset)
}

// syncScroll applies the navbar and back-to-top thresholds, picks the active
// section and reveals sections that entered the viewport.
func (m *Model) syncScroll() tea.Cmd {
	offset := m.viewport.YOffset
	m.navbarScrolled = offset > m.cfg.Page.NavbarThreshold
	m.showBackToTop = offset > m.cfg.Page.BackToTopThreshold
	m.active = m.sectionAt(offset)

	var cmd tea.Cmd
	bottom := offset + m.viewport.Height
	revealed := false
	for _, sp := range m.spans {
		if m.revealed[sp.section] || sp.start >= bottom || sp.end <= offset {
			continue
		}
		m.revealed[sp.section] = true
		revealed = true
		if sp.section == SectionSkills && !m.skills.Started() {
			m.skills.Start(m.now())
			m.skillFraction = 0
			cmd = skillTick(m.cfg.Page.ScrollFrame)
		}
	}
	if revealed {
		m.render()
	}
	return cmd
}

// sectionAt returns the section under the top of the viewport. The last
// section wins once the page is scrolled to the bottom.
func (m *Model) sectionAt(offset int) Section {
	if len(m.spans) == 0 {
		return SectionHome
	}
	if offset > 0 && m.viewport.AtBottom() {
		return m.spans[len(m.spans)-1].section
	}
	active := m.spans[0].section
	for _, sp := range m.spans {
		if sp.start <= offset {
			active = sp.section
		}
	}
	return active
}

func (m *Model) sectionStart(s Section) int {
	for _, sp := range m.spans {
		if sp.section == s {
			return sp.start
		}
	}
	return 0
}

// scrollBy moves the viewport immediately and cancels any smooth scroll.
func (m *Model) scrollBy(lines int) tea.Cmd {
	if !m.ready {
		return nil
	}
	m.scrollGen++
	m.viewport.SetYOffset(m.viewport.YOffset + lines)
	m.scrollTarget = m.viewport.YOffset
	return m.syncScroll()
}

// jumpSection smooth-scrolls to the next or previous section.
func (m *Model) jumpSection(delta int) tea.Cmd {
	idx := int(m.active) + delta
	if idx < 0 || idx >= len(Sections) {
		return nil
	}
	return m.scrollTo(m.sectionStart(Sections[idx]))
}

func (m *Model) maxOffset() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

// scrollTo starts a smooth scroll towards line.
func (m *Model) scrollTo(line int) tea.Cmd {
	if !m.ready {
		return nil
	}
	m.scrollTarget = max(0, min(line, m.maxOffset()))
	m.scrollGen++
	if m.scrollTarget == m.viewport.YOffset {
		return nil
	}
	return scrollTick(m.scrollGen, m.cfg.Page.ScrollFrame)
}

// handleScrollTick covers a quarter of the remaining distance per frame, at
// least one line.
func (m *Model) handleScrollTick(msg scrollTickMsg) tea.Cmd {
	if msg.generation != m.scrollGen {
		return nil
	}

	offset := m.viewport.YOffset
	dist := m.scrollTarget - offset
	if dist == 0 {
		return nil
	}
	step := dist / 4
	if step == 0 {
		step = 1
		if dist < 0 {
			step = -1
		}
	}
	m.viewport.SetYOffset(offset + step)
	cmd := m.syncScroll()

	if m.viewport.YOffset == m.scrollTarget || m.viewport.YOffset == offset {
		return cmd
	}
	return tea.Batch(cmd, scrollTick(m.scrollGen, m.cfg.Page.ScrollFrame))
}

// Scrolling reports whether a smooth scroll is in progress.
func (m *Model) Scrolling() bool {
	return m.ready && m.viewport.YOffset != m.scrollTarget
}
