package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/folio/internal/contact"
	"github.com/yildizm/folio/internal/content"
)

// ContentMsg delivers a reloaded portfolio, or the error that prevented
// loading it, into a running program.
type ContentMsg struct {
	Portfolio *content.Portfolio
	Err       error
}

// typewriterTickMsg carries the engine generation so ticks scheduled for a
// replaced engine are dropped.
type typewriterTickMsg struct {
	generation int
}

type filterSettleMsg struct {
	transition content.Transition
}

type skillTickMsg struct {
	at time.Time
}

type scrollTickMsg struct {
	generation int
}

type spinnerTickMsg struct{}

type contactResultMsg struct {
	result contact.Result
}

type contactClearMsg struct {
	seq int
}

func typewriterTick(generation int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return typewriterTickMsg{generation: generation}
	})
}

func filterSettle(t content.Transition) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return filterSettleMsg{transition: t}
	})
}

func skillTick(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(at time.Time) tea.Msg {
		return skillTickMsg{at: at}
	})
}

func scrollTick(generation int, frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(time.Time) tea.Msg {
		return scrollTickMsg{generation: generation}
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func contactClear(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return contactClearMsg{seq: seq}
	})
}
