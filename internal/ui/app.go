// Package ui is the terminal rendition of the portfolio page: one scrolling
// viewport with a fixed navbar, the typewriter hero and the page sections.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/folio/internal/config"
	"github.com/yildizm/folio/internal/contact"
	"github.com/yildizm/folio/internal/content"
	"github.com/yildizm/folio/internal/logger"
	"github.com/yildizm/folio/internal/theme"
	"github.com/yildizm/folio/internal/typewriter"
	"github.com/yildizm/folio/internal/ui/components"
)

// Section identifies one part of the page.
type Section int

const (
	SectionHome Section = iota
	SectionAbout
	SectionProjects
	SectionSkills
	SectionContact
)

// Sections lists the page sections top to bottom.
var Sections = []Section{SectionHome, SectionAbout, SectionProjects, SectionSkills, SectionContact}

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About"
	case SectionProjects:
		return "Projects"
	case SectionSkills:
		return "Skills"
	case SectionContact:
		return "Contact"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// Options configures a Model. Nil fields fall back to defaults.
type Options struct {
	Config     *config.Config
	Portfolio  *content.Portfolio
	Theme      theme.Theme
	ThemeStore theme.Store
	Contact    *contact.Handler
	Logger     *logger.Logger
	Now        func() time.Time
}

// Model is the page.
type Model struct {
	cfg       *config.Config
	portfolio *content.Portfolio
	log       *logger.Logger
	keys      KeyMap
	now       func() time.Time

	width    int
	height   int
	ready    bool
	quitting bool
	status   string

	theme      theme.Theme
	themeStore theme.Store
	styles     *Styles
	dimStyles  *Styles

	// hero
	engine    *typewriter.Engine
	engineGen int
	hero      string

	// page
	viewport       viewport.Model
	spans          []sectionSpan
	revealed       map[Section]bool
	active         Section
	navbarScrolled bool
	showBackToTop  bool
	scrollTarget   int
	scrollGen      int

	// projects
	filter      *content.ProjectFilter
	focusedCard int

	// skills
	skills        components.SkillAnimation
	skillFraction float64

	// contact
	contact *contact.Handler
	form    *contactForm
}

// New builds the page model. It fails when there is nothing to type.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	portfolio := opts.Portfolio
	if portfolio == nil {
		portfolio = content.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.New("folio", nil)
		log.SetOutput(nil)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	handler := opts.Contact
	if handler == nil {
		handler = contact.NewHandler(contact.SimulatedSubmitter{Delay: cfg.Contact.SubmitDelay}, log)
	}
	current := opts.Theme
	if _, err := theme.Parse(string(current)); err != nil {
		current = theme.Light
	}

	m := &Model{
		cfg:        cfg,
		portfolio:  portfolio,
		log:        log.WithComponent("ui"),
		keys:       DefaultKeyMap(),
		now:        now,
		themeStore: opts.ThemeStore,
		revealed:   map[Section]bool{},
		contact:    handler,
		form:       newContactForm(),
		skills: components.SkillAnimation{
			Delay:    cfg.Page.SkillBarDelay,
			Duration: cfg.Page.SkillBarDuration,
		},
	}
	m.setTheme(current)

	if err := m.loadPortfolio(portfolio); err != nil {
		return nil, err
	}
	return m, nil
}

// loadPortfolio swaps content and restarts the typewriter on the new phrases.
func (m *Model) loadPortfolio(p *content.Portfolio) error {
	raw := m.cfg.Typewriter.Phrases
	if raw == "" {
		raw = p.Tagline
	}

	surface := typewriter.SurfaceFunc(func(text string) { m.hero = text })
	engine, err := typewriter.NewFromString(raw, surface, m.cfg.Typewriter.Timing())
	if err != nil {
		return fmt.Errorf("failed to start typewriter: %w", err)
	}

	if m.engine != nil {
		m.engine.Stop()
	}
	m.engine = engine
	m.engineGen++
	m.hero = ""

	m.portfolio = p
	m.filter = content.NewProjectFilter(p.Projects, m.cfg.Page.FilterShowDelay, m.cfg.Page.FilterHideDelay)
	m.focusedCard = -1
	return nil
}

func (m *Model) setTheme(t theme.Theme) {
	m.theme = t
	palette := ThemeFor(t)
	m.styles = NewStyles(palette)
	m.dimStyles = NewStyles(dimTheme(palette))
}

// Theme returns the active theme.
func (m *Model) Theme() theme.Theme {
	return m.theme
}

// Hero returns the text the typewriter currently shows.
func (m *Model) Hero() string {
	return m.hero
}

// Init starts the typewriter with an immediate first tick.
func (m *Model) Init() tea.Cmd {
	gen := m.engineGen
	return func() tea.Msg { return typewriterTickMsg{generation: gen} }
}

// Update handles messages and navigation
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.scrollGen++
		m.scrollTarget = m.viewport.YOffset
		return m, tea.Batch(cmd, m.syncScroll())
	case typewriterTickMsg:
		return m, m.handleTypewriterTick(msg)
	case filterSettleMsg:
		if m.filter.Settle(msg.transition) {
			return m, m.refresh()
		}
		return m, nil
	case skillTickMsg:
		return m, m.handleSkillTick(msg)
	case scrollTickMsg:
		return m, m.handleScrollTick(msg)
	case spinnerTickMsg:
		if !m.form.sending {
			return m, nil
		}
		m.form.spinner.Tick()
		return m, tea.Batch(m.refresh(), spinnerTick())
	case contactResultMsg:
		return m, m.handleContactResult(msg.result)
	case contactClearMsg:
		if msg.seq == m.form.seq && m.form.success != "" {
			m.form.success = ""
			return m, m.refresh()
		}
		return m, nil
	case ContentMsg:
		return m, m.handleContent(msg)
	}

	return m, nil
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := max(1, msg.Height-navbarHeight-footerHeight)
	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.form.SetWidth(m.contentWidth())
	return m.refresh()
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.form.editing {
		return m, m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		return m, m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		return m, m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		return m, m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.NextSection):
		return m, m.jumpSection(1)
	case key.Matches(msg, m.keys.PrevSection):
		return m, m.jumpSection(-1)
	case key.Matches(msg, m.keys.Top):
		return m, m.scrollTo(0)
	case key.Matches(msg, m.keys.ToggleTheme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.NextFilter):
		return m, m.cycleFilter()
	case key.Matches(msg, m.keys.Filter):
		n, _ := strconv.Atoi(msg.String())
		return m, m.selectFilter(n - 1)
	case key.Matches(msg, m.keys.NextCard):
		m.moveCardFocus(1)
		return m, m.refresh()
	case key.Matches(msg, m.keys.PrevCard):
		m.moveCardFocus(-1)
		return m, m.refresh()
	case key.Matches(msg, m.keys.Contact):
		focus := m.form.Focus(0)
		return m, tea.Batch(focus, m.scrollTo(m.sectionStart(SectionContact)), m.refresh())
	}

	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.form.sending {
		if key.Matches(msg, m.keys.Escape) {
			m.form.Blur()
			return m.refresh()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.Blur()
		return m.refresh()
	case key.Matches(msg, m.keys.Submit):
		return m.submitContact()
	case msg.Type == tea.KeyEnter:
		if m.form.OnLastField() {
			return m.submitContact()
		}
		cmd, _ := m.form.Next()
		return tea.Batch(cmd, m.refresh())
	case key.Matches(msg, m.keys.NextField):
		cmd, _ := m.form.Next()
		return tea.Batch(cmd, m.refresh())
	case key.Matches(msg, m.keys.PrevField):
		return tea.Batch(m.form.Prev(), m.refresh())
	}

	cmd := m.form.Update(msg)
	return tea.Batch(cmd, m.refresh())
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.engine.Stop()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) handleTypewriterTick(msg typewriterTickMsg) tea.Cmd {
	if msg.generation != m.engineGen || m.engine.Stopped() {
		return nil
	}

	delay := m.engine.Step()
	cmd := m.refresh()

	if m.engine.Stopped() {
		return cmd
	}
	return tea.Batch(cmd, typewriterTick(m.engineGen, delay))
}

// toggleTheme saves inside Update so the stored value always follows the
// last keypress.
func (m *Model) toggleTheme() tea.Cmd {
	next, err := theme.Toggle(m.themeStore, m.theme)
	m.setTheme(next)
	m.status = ""
	if err != nil {
		m.log.WarnWithFields("theme not saved", []logger.Field{logger.Error(err)})
		m.status = "theme not saved: " + err.Error()
	}
	return m.refresh()
}

func (m *Model) cycleFilter() tea.Cmd {
	categories := m.portfolio.Categories()
	idx := 0
	for i, c := range categories {
		if c == m.filter.Active() {
			idx = i
		}
	}
	return m.selectFilter((idx + 1) % len(categories))
}

func (m *Model) selectFilter(i int) tea.Cmd {
	categories := m.portfolio.Categories()
	if i < 0 || i >= len(categories) {
		return nil
	}

	cmds := []tea.Cmd{}
	for _, t := range m.filter.Apply(categories[i]) {
		cmds = append(cmds, filterSettle(t))
	}
	m.focusedCard = -1
	cmds = append(cmds, m.refresh())
	return tea.Batch(cmds...)
}

// moveCardFocus raises the next or previous visible card.
func (m *Model) moveCardFocus(delta int) {
	visible := m.filter.VisibleIndexes()
	if len(visible) == 0 {
		m.focusedCard = -1
		return
	}

	pos := -1
	for i, idx := range visible {
		if idx == m.focusedCard {
			pos = i
		}
	}
	switch {
	case pos == -1 && delta > 0:
		pos = 0
	case pos == -1:
		pos = len(visible) - 1
	default:
		pos = (pos + delta + len(visible)) % len(visible)
	}
	m.focusedCard = visible[pos]
}

func (m *Model) handleSkillTick(msg skillTickMsg) tea.Cmd {
	m.skillFraction = m.skills.Fraction(msg.at)
	cmd := m.refresh()
	if m.skills.Done(msg.at) {
		return cmd
	}
	return tea.Batch(cmd, skillTick(m.cfg.Page.ScrollFrame))
}

func (m *Model) submitContact() tea.Cmd {
	if m.form.sending {
		return nil
	}

	form := m.form.Form()
	m.form.success = ""
	if errs := form.Validate(); len(errs) > 0 {
		m.form.errors = errs
		return m.refresh()
	}

	m.form.errors = nil
	m.form.sending = true
	handler := m.contact
	send := func() tea.Msg {
		return contactResultMsg{result: handler.Send(context.Background(), form)}
	}
	return tea.Batch(send, spinnerTick(), m.refresh())
}

func (m *Model) handleContactResult(res contact.Result) tea.Cmd {
	m.form.sending = false

	if len(res.Errors) > 0 {
		m.form.errors = res.Errors
		return m.refresh()
	}
	if !res.OK {
		m.form.errors = []string{res.Message}
		return m.refresh()
	}

	m.form.Reset()
	m.form.Blur()
	m.form.errors = nil
	m.form.success = res.Message
	m.form.seq++
	return tea.Batch(m.refresh(), contactClear(m.form.seq, m.cfg.Contact.SuccessTimeout))
}

func (m *Model) handleContent(msg ContentMsg) tea.Cmd {
	if msg.Err != nil {
		m.status = "reload failed: " + msg.Err.Error()
		return m.refresh()
	}
	if err := m.loadPortfolio(msg.Portfolio); err != nil {
		m.log.WarnWithFields("content reload rejected", []logger.Field{logger.Error(err)})
		m.status = err.Error()
		return m.refresh()
	}

	m.status = "content reloaded"
	gen := m.engineGen
	return tea.Batch(m.refresh(), func() tea.Msg { return typewriterTickMsg{generation: gen} })
}
