package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/folio/internal/config"
	"github.com/yildizm/folio/internal/contact"
	"github.com/yildizm/folio/internal/content"
	"github.com/yildizm/folio/internal/theme"
)

var testNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Typewriter.TypeDelay = time.Millisecond
	cfg.Typewriter.DeleteDelay = time.Millisecond
	cfg.Typewriter.Pause = time.Millisecond
	cfg.Page.SkillBarDelay = time.Millisecond
	cfg.Page.SkillBarDuration = 10 * time.Millisecond
	cfg.Page.FilterShowDelay = time.Millisecond
	cfg.Page.FilterHideDelay = time.Millisecond
	cfg.Page.ScrollFrame = time.Millisecond
	cfg.Contact.SubmitDelay = time.Millisecond
	cfg.Contact.SuccessTimeout = time.Millisecond
	return cfg
}

func testPortfolio() *content.Portfolio {
	p := content.Default()
	p.Tagline = "Engineer,Builder"
	return p
}

func newTestModel(t *testing.T) (*Model, *theme.MemoryStore) {
	t.Helper()
	store := theme.NewMemoryStore()
	m, err := New(Options{
		Config:     testConfig(),
		Portfolio:  testPortfolio(),
		Theme:      theme.Light,
		ThemeStore: store,
		Contact:    contact.NewHandler(contact.SimulatedSubmitter{Delay: time.Millisecond}, nil),
		Now:        func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	return m, store
}

// collect runs cmd and any batched commands, returning their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m *Model) {
	m.Update(typewriterTickMsg{generation: m.engineGen})
}

func TestNewRejectsEmptyTagline(t *testing.T) {
	p := testPortfolio()
	p.Tagline = " , "
	if _, err := New(Options{Config: testConfig(), Portfolio: p}); err == nil {
		t.Error("expected error for empty tagline")
	}
}

func TestInitTypesFirstCharacter(t *testing.T) {
	m, _ := newTestModel(t)

	msgs := collect(m.Init())
	if len(msgs) != 1 {
		t.Fatalf("Init() produced %d messages", len(msgs))
	}
	m.Update(msgs[0])
	if m.Hero() != "E" {
		t.Errorf("Hero() = %q, want %q", m.Hero(), "E")
	}

	tick(m)
	tick(m)
	if m.Hero() != "Eng" {
		t.Errorf("Hero() = %q, want %q", m.Hero(), "Eng")
	}
	if !strings.Contains(m.View(), "Eng") {
		t.Error("View() does not show the typed text")
	}
}

func TestConfiguredPhrasesOverrideTagline(t *testing.T) {
	cfg := testConfig()
	cfg.Typewriter.Phrases = "Zed"
	m, err := New(Options{Config: cfg, Portfolio: testPortfolio()})
	if err != nil {
		t.Fatal(err)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	tick(m)
	if m.Hero() != "Z" {
		t.Errorf("Hero() = %q, want Z", m.Hero())
	}
}

func TestQuitStopsTypewriter(t *testing.T) {
	m, _ := newTestModel(t)
	tick(m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}

	_, cmd = m.Update(typewriterTickMsg{generation: m.engineGen})
	if cmd != nil || m.Hero() != "E" {
		t.Errorf("tick after quit advanced the typewriter to %q", m.Hero())
	}
}

func TestReloadDropsStaleTicks(t *testing.T) {
	m, _ := newTestModel(t)
	tick(m)
	oldGen := m.engineGen

	next := testPortfolio()
	next.Tagline = "Alpha"
	m.Update(ContentMsg{Portfolio: next})

	if m.engineGen == oldGen {
		t.Fatal("reload did not start a new engine")
	}
	if m.Hero() != "" {
		t.Errorf("Hero() after reload = %q, want empty", m.Hero())
	}

	m.Update(typewriterTickMsg{generation: oldGen})
	if m.Hero() != "" {
		t.Errorf("stale tick rendered %q", m.Hero())
	}

	tick(m)
	if m.Hero() != "A" {
		t.Errorf("Hero() = %q, want A", m.Hero())
	}
}

func TestReloadErrorKeepsContent(t *testing.T) {
	m, _ := newTestModel(t)
	gen := m.engineGen

	m.Update(ContentMsg{Err: errors.New("bad yaml")})
	if m.engineGen != gen {
		t.Error("failed reload replaced the engine")
	}
	if !strings.Contains(m.status, "bad yaml") {
		t.Errorf("status = %q", m.status)
	}
}

func TestThemeToggleSaves(t *testing.T) {
	m, store := newTestModel(t)

	_, cmd := m.Update(runes("d"))
	if m.Theme() != theme.Dark {
		t.Fatalf("Theme() = %s, want dark", m.Theme())
	}
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
	if got := theme.Load(store, theme.Light); got != theme.Dark {
		t.Errorf("saved theme = %s, want dark", got)
	}

	m.Update(runes("d"))
	if m.Theme() != theme.Light {
		t.Errorf("Theme() = %s, want light", m.Theme())
	}
}

// recordingStore keeps every value written, in order.
type recordingStore struct {
	*theme.MemoryStore
	writes []string
}

func (s *recordingStore) Set(key, value string) error {
	s.writes = append(s.writes, value)
	return s.MemoryStore.Set(key, value)
}

func TestRapidThemeTogglesPersistLastChoice(t *testing.T) {
	m, _ := newTestModel(t)
	store := &recordingStore{MemoryStore: theme.NewMemoryStore()}
	m.themeStore = store

	for i := 0; i < 3; i++ {
		m.Update(runes("d"))
		if got := theme.Load(store, theme.Light); got != m.Theme() {
			t.Fatalf("after toggle %d: displayed %s, saved %s", i+1, m.Theme(), got)
		}
	}

	want := []string{"dark", "light", "dark"}
	if strings.Join(store.writes, ",") != strings.Join(want, ",") {
		t.Errorf("writes = %v, want %v", store.writes, want)
	}
}

func TestThemeToggleSaveFailure(t *testing.T) {
	m, store := newTestModel(t)
	store.Err = errors.New("disk full")

	m.Update(runes("d"))
	if m.Theme() != theme.Dark {
		t.Errorf("Theme() = %s, want dark even when saving fails", m.Theme())
	}
	if !strings.Contains(m.status, "disk full") {
		t.Errorf("status = %q, want save error", m.status)
	}
}

func TestNavbarAndBackToTopThresholds(t *testing.T) {
	m, _ := newTestModel(t)
	if m.navbarScrolled || m.showBackToTop {
		t.Fatal("flags set at the top of the page")
	}

	m.scrollBy(m.cfg.Page.NavbarThreshold + 1)
	if !m.navbarScrolled {
		t.Error("navbar not scrolled past threshold")
	}
	if m.showBackToTop {
		t.Error("back-to-top shown before its threshold")
	}

	m.scrollBy(m.cfg.Page.BackToTopThreshold)
	if !m.showBackToTop {
		t.Error("back-to-top hidden past its threshold")
	}
	if !strings.Contains(m.View(), "top (t)") {
		t.Error("View() does not show the back-to-top hint")
	}

	m.scrollBy(-1000)
	if m.navbarScrolled || m.showBackToTop {
		t.Error("flags still set back at the top")
	}
}

func TestBackToTopScrollsSmoothly(t *testing.T) {
	m, _ := newTestModel(t)
	m.scrollBy(30)
	start := m.viewport.YOffset
	if start == 0 {
		t.Fatal("page too short to scroll")
	}

	_, cmd := m.Update(runes("t"))
	if cmd == nil {
		t.Fatal("expected a scroll tick")
	}

	frames := 0
	for m.viewport.YOffset != 0 && frames < 100 {
		before := m.viewport.YOffset
		m.Update(scrollTickMsg{generation: m.scrollGen})
		if m.viewport.YOffset >= before {
			t.Fatalf("frame %d did not move up: %d -> %d", frames, before, m.viewport.YOffset)
		}
		frames++
	}
	if m.viewport.YOffset != 0 {
		t.Fatalf("did not reach the top, offset %d", m.viewport.YOffset)
	}
	if frames < 2 {
		t.Errorf("scroll finished in %d frame(s), want a gradual scroll", frames)
	}
}

func TestManualScrollCancelsSmoothScroll(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	gen := m.scrollGen

	m.Update(runes("j"))
	offset := m.viewport.YOffset
	m.Update(scrollTickMsg{generation: gen})
	if m.viewport.YOffset != offset {
		t.Error("stale scroll tick moved the page")
	}
}

func TestRevealIsSticky(t *testing.T) {
	m, _ := newTestModel(t)
	if !m.revealed[SectionHome] {
		t.Error("home not revealed on load")
	}
	if m.revealed[SectionAbout] {
		t.Fatal("about revealed before scrolling")
	}

	m.scrollBy(m.sectionStart(SectionAbout))
	if !m.revealed[SectionAbout] {
		t.Fatal("about not revealed after scrolling to it")
	}
	if m.active != SectionAbout {
		t.Errorf("active section = %s, want About", m.active)
	}

	m.scrollBy(-1000)
	if !m.revealed[SectionAbout] {
		t.Error("about hidden again after scrolling away")
	}
	if m.active != SectionHome {
		t.Errorf("active section = %s, want Home", m.active)
	}
}

func TestSkillBarsAnimateOnceOnReveal(t *testing.T) {
	m, _ := newTestModel(t)
	if m.skills.Started() {
		t.Fatal("skill animation started before reveal")
	}

	cmd := m.scrollBy(m.sectionStart(SectionSkills))
	if !m.skills.Started() || cmd == nil {
		t.Fatal("skill animation not started on reveal")
	}
	if m.skillFraction != 0 {
		t.Errorf("bars start at %v, want 0", m.skillFraction)
	}

	half := testNow.Add(m.cfg.Page.SkillBarDelay + m.cfg.Page.SkillBarDuration/2)
	if _, cmd := m.Update(skillTickMsg{at: half}); cmd == nil {
		t.Error("animation stopped halfway")
	}
	if m.skillFraction <= 0 || m.skillFraction >= 1 {
		t.Errorf("halfway fraction = %v", m.skillFraction)
	}

	end := testNow.Add(m.cfg.Page.SkillBarDelay + m.cfg.Page.SkillBarDuration)
	m.Update(skillTickMsg{at: end})
	if m.skillFraction != 1 {
		t.Errorf("final fraction = %v, want 1", m.skillFraction)
	}
	if !strings.Contains(m.View(), "90%") {
		t.Error("full Go bar not rendered")
	}

	m.scrollBy(-1000)
	if cmd := m.scrollBy(m.sectionStart(SectionSkills)); cmd != nil {
		t.Error("skill animation restarted on second reveal")
	}
}

func TestFilterCyclesAndSettles(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("f"))
	if m.filter.Active() != "cli" {
		t.Fatalf("active filter = %s, want cli", m.filter.Active())
	}
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
	if got := len(m.filter.VisibleIndexes()); got != 2 {
		t.Errorf("visible projects = %d, want 2", got)
	}

	m.Update(runes("1"))
	if m.filter.Active() != content.CategoryAll {
		t.Errorf("active filter = %s, want all", m.filter.Active())
	}
	if got := len(m.filter.VisibleIndexes()); got != 4 {
		t.Errorf("visible projects = %d, want 4", got)
	}

	m.Update(runes("9"))
	if m.filter.Active() != content.CategoryAll {
		t.Error("out of range filter key changed the filter")
	}
}

func TestCardFocusSkipsHiddenCards(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("3")) // data
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}

	m.Update(runes("l"))
	if m.focusedCard != 2 {
		t.Errorf("focused card = %d, want 2", m.focusedCard)
	}
	m.Update(runes("l"))
	if m.focusedCard != 2 {
		t.Errorf("focus left the only visible card: %d", m.focusedCard)
	}
}

func typeInto(m *Model, s string) {
	m.Update(runes(s))
}

func TestContactFormValidationErrors(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(runes("c"))
	if !m.form.editing {
		t.Fatal("c did not focus the form")
	}
	typeInto(m, "Sam")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeInto(m, "not-an-email")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.form.sending {
		t.Fatal("invalid form was sent")
	}
	want := []string{contact.MsgInvalidEmail, "subject is required", "message is required"}
	if strings.Join(m.form.errors, "|") != strings.Join(want, "|") {
		t.Errorf("errors = %v, want %v", m.form.errors, want)
	}
}

func TestContactFormSendsAndClears(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(runes("c"))
	for i, value := range []string{"Sam", "sam@example.com", "Hello", "Nice page"} {
		typeInto(m, value)
		if i < 3 {
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		}
	}
	if got := m.form.Form(); got.Message != "Nice page" || got.Email != "sam@example.com" {
		t.Fatalf("form = %+v", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.form.sending {
		t.Fatal("enter on the last field did not send")
	}
	if !strings.Contains(m.View(), "Sending...") {
		t.Error("button does not show Sending...")
	}

	var result tea.Msg
	for _, msg := range collect(cmd) {
		if _, ok := msg.(contactResultMsg); ok {
			result = msg
		}
	}
	if result == nil {
		t.Fatal("no submit result")
	}

	_, cmd = m.Update(result)
	if m.form.sending || m.form.success != contact.MsgSuccess {
		t.Fatalf("after result: sending=%v success=%q", m.form.sending, m.form.success)
	}
	if m.form.Form() != (contact.Form{}) {
		t.Error("form not reset after success")
	}

	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
	if m.form.success != "" {
		t.Error("success banner not cleared")
	}
}

func TestStaleContactClearIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m.form.success = contact.MsgSuccess
	m.form.seq = 2

	m.Update(contactClearMsg{seq: 1})
	if m.form.success == "" {
		t.Error("clear from an older send removed the banner")
	}
}

func TestFormKeysDoNotTriggerPageActions(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("c"))

	typeInto(m, "d")
	if m.Theme() != theme.Light {
		t.Error("typing d in the form toggled the theme")
	}
	m.Update(runes("q"))
	if m.quitting {
		t.Error("typing q in the form quit")
	}
	if got := m.form.Form().Name; got != "dq" {
		t.Errorf("name = %q, want %q", got, "dq")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.form.editing {
		t.Error("esc did not leave the form")
	}
}

func TestSectionString(t *testing.T) {
	if SectionSkills.String() != "Skills" || Section(42).String() != "section(42)" {
		t.Error("unexpected section names")
	}
}
