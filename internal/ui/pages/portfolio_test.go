package pages_test

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()

	os.Exit(m.Run())
}

func newPage(t *testing.T) *pages.Portfolio {
	t.Helper()

	portfolio, err := content.Default()
	require.NoError(t, err)

	mock, errMock := backend.NewMock(portfolio.ContactResponses, backend.Resume{},
		backend.WithLatency(0), backend.WithResumeLatency(0), backend.WithStats(contact.Stats{TotalProjects: 42}))
	require.NoError(t, errMock)

	page := pages.NewPortfolio(t.Context(), config.Config{FPS: 120, ScrollLookahead: 3, ScrollThreshold: 2}, portfolio, mock, mock)
	_, _ = page.Update(model.ViewState{Width: 100, Height: 40, Upper: 2, Lower: 1, KeyZone: model.KZpage})

	return page
}

func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, inner := range batch {
			msgs = append(msgs, run(t, inner)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

func TestPortfolioJump(t *testing.T) {
	page := newPage(t)

	top, found := page.Tracker().SectionTop("projects")
	require.True(t, found)
	require.Positive(t, top)

	_, cmd := page.Update(command.JumpMsg{Section: "projects"})
	require.Equal(t, top, page.Offset())

	msgs := run(t, cmd)
	require.Equal(t, []tea.Msg{command.FrameMsg{}}, msgs)

	_, cmd = page.Update(command.FrameMsg{})
	require.Equal(t, []tea.Msg{command.ActiveSectionMsg{Section: "projects", Scrolled: true}}, run(t, cmd))

	// Nothing changed since the last frame.
	_, cmd = page.Update(command.FrameMsg{})
	require.Nil(t, cmd)
}

func TestPortfolioJumpUnknown(t *testing.T) {
	page := newPage(t)

	_, cmd := page.Update(command.JumpMsg{Section: "blog"})
	require.Nil(t, cmd)
	require.Zero(t, page.Offset())
}

func TestPortfolioFrameCoalescing(t *testing.T) {
	page := newPage(t)
	down := tea.KeyMsg{Type: tea.KeyDown}

	_, first := page.Update(down)
	require.NotNil(t, first)

	for range 2 {
		_, cmd := page.Update(down)
		require.Nil(t, cmd)
	}

	require.Equal(t, 3, page.Offset())

	_, cmd := page.Update(command.FrameMsg{})
	require.Equal(t, []tea.Msg{command.ActiveSectionMsg{Section: "home", Scrolled: true}}, run(t, cmd))
	require.Equal(t, 3, page.Tracker().Offset())

	// With the frame consumed the next scroll schedules a new one.
	_, cmd = page.Update(down)
	require.NotNil(t, cmd)
}

func TestPortfolioLastSectionReachesTop(t *testing.T) {
	page := newPage(t)

	top, found := page.Tracker().SectionTop("contact")
	require.True(t, found)

	_, _ = page.Update(command.JumpMsg{Section: "contact"})
	require.Equal(t, top, page.Offset())
}

func TestPortfolioContactKey(t *testing.T) {
	page := newPage(t)

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	msgs := run(t, cmd)
	require.Contains(t, msgs, command.JumpMsg{Section: "contact"})

	var zoned bool
	for _, msg := range msgs {
		if state, ok := msg.(model.ViewState); ok {
			zoned = state.KeyZone == model.KZcontactForm
		}
	}

	require.True(t, zoned)
}

func TestPortfolioIgnoresKeysOutsidePage(t *testing.T) {
	page := newPage(t)
	_, _ = page.Update(model.ViewState{Width: 100, Height: 40, Upper: 2, Lower: 1, KeyZone: model.KZmenu})

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)
	require.Zero(t, page.Offset())
}

func TestPortfolioStats(t *testing.T) {
	page := newPage(t)

	msgs := run(t, page.Init())
	require.Len(t, msgs, 1)

	stats, ok := msgs[0].(command.StatsMsg)
	require.True(t, ok)
	require.NoError(t, stats.Err)

	_, _ = page.Update(stats)
	require.Contains(t, page.View(), "42+")
}

func TestPortfolioConfigReload(t *testing.T) {
	page := newPage(t)
	down := tea.KeyMsg{Type: tea.KeyDown}

	aboutTop, found := page.Tracker().SectionTop("about")
	require.True(t, found)
	require.Greater(t, aboutTop, 5)

	for range aboutTop - 5 {
		_, _ = page.Update(down)
	}

	// A lookahead of 3 does not reach the next section yet.
	_, cmd := page.Update(command.FrameMsg{})
	require.Equal(t, []tea.Msg{command.ActiveSectionMsg{Section: "home", Scrolled: true}}, run(t, cmd))

	_, cmd = page.Update(config.Config{ScrollLookahead: 10, ScrollThreshold: 1000})
	require.Nil(t, cmd)

	_, cmd = page.Update(down)
	require.NotNil(t, cmd)
	require.Equal(t, aboutTop-4, page.Offset())

	_, cmd = page.Update(command.FrameMsg{})
	require.Equal(t, []tea.Msg{command.ActiveSectionMsg{Section: "about", Scrolled: false}}, run(t, cmd))
}
