package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/riichi/mahjong"
)

func newTestModel() *Model {
	m := New(mahjong.NewEvaluator(), log.New(io.Discard))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func enter(m *Model, line string) tea.Cmd {
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func lastEntry(m *Model) string {
	return m.entries[len(m.entries)-1]
}

func TestEvaluateHand(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	enter(m, "riichi on")
	enter(m, "234m456p678s22255m")

	entry := lastEntry(m)
	assert.Contains(t, entry, "complete (Standard), 2 han")
	assert.Contains(t, entry, "Riichi (1)")
	assert.Contains(t, entry, "All Simples (1)")
	assert.Empty(t, m.input.Value())
}

func TestIncompleteAndInvalidHands(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	enter(m, "1359m2468p1357s12z")
	assert.Contains(t, lastEntry(m), "incomplete")

	enter(m, "19m19p19s1234567z")
	assert.Contains(t, lastEntry(m), "invalid hand shape")

	enter(m, "12x")
	assert.Contains(t, lastEntry(m), "invalid tile")
}

func TestContextCommands(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	enter(m, "seat south")
	assert.Equal(t, mahjong.SeatSouth, m.player.Seat)

	enter(m, "wind s")
	require.NotNil(t, m.roundWind)
	assert.Equal(t, mahjong.SeatSouth, *m.roundWind)

	enter(m, "123m456p111222z55m")
	assert.Contains(t, lastEntry(m), "Seat Wind (1)")
	assert.Contains(t, lastEntry(m), "Round Wind (1)")

	enter(m, "wind off")
	assert.Nil(t, m.roundWind)

	enter(m, "riichi on")
	assert.True(t, m.player.CalledRiichi)
	assert.True(t, m.player.IsHandClosed)

	enter(m, "closed off")
	assert.False(t, m.player.IsHandClosed)
	assert.False(t, m.player.CalledRiichi)

	enter(m, "closed maybe")
	assert.Contains(t, lastEntry(m), "usage: closed on|off")

	enter(m, "seat centre")
	assert.Contains(t, lastEntry(m), "invalid seat")
	assert.Equal(t, mahjong.SeatSouth, m.player.Seat)

	enter(m, "clear")
	assert.Empty(t, m.entries)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	cmd := enter(m, "quit")
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())

	m = newTestModel()
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestView(t *testing.T) {
	t.Parallel()

	m := New(mahjong.NewEvaluator(), log.New(io.Discard))
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	enter(m, "111m555p777s999m22p")
	view := m.View()
	assert.Contains(t, view, "Context")
	assert.Contains(t, view, "Seat:   east")
	assert.Contains(t, view, "yaku enabled")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneLog, m.focusedPane)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneInput, m.focusedPane)
	assert.True(t, strings.Contains(m.View(), "Enter to submit"))
}
