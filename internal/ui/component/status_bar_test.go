package component_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, bar tea.Model, msg tea.Msg) (component.StatusBarModel, tea.Cmd) {
	t.Helper()

	next, cmd := bar.Update(msg)
	status, ok := next.(component.StatusBarModel)
	require.True(t, ok)

	return status, cmd
}

func TestStatusBarOlderTimerKeepsNewer(t *testing.T) {
	bar, cmd := update(t, component.NewStatusBarModel("v1.0.0", time.Second), command.NotifyMsg{Title: "First"})
	require.NotNil(t, cmd)

	bar, _ = update(t, bar, command.NotifyMsg{Title: "Second", Description: "details", Err: true})

	// The timer of the first notification fires after the second was shown.
	bar, _ = update(t, bar, command.ClearNotificationMsg{ID: 1})
	title, desc, isErr := bar.Notification()
	require.Equal(t, "Second", title)
	require.Equal(t, "details", desc)
	require.True(t, isErr)
	require.Contains(t, bar.View(), "Second")

	bar, _ = update(t, bar, command.ClearNotificationMsg{ID: 2})
	title, _, _ = bar.Notification()
	require.Empty(t, title)
}

func TestStatusBarDismiss(t *testing.T) {
	bar, _ := update(t, component.NewStatusBarModel("v1.0.0", time.Second), model.ViewState{Width: 80, KeyZone: model.KZcontactForm})
	bar, _ = update(t, bar, command.NotifyMsg{Title: "Hello"})

	// Typing an x into the form does not dismiss anything.
	bar, _ = update(t, bar, runes("x"))
	title, _, _ := bar.Notification()
	require.Equal(t, "Hello", title)

	bar, _ = update(t, bar, model.ViewState{Width: 80, KeyZone: model.KZpage})
	bar, _ = update(t, bar, runes("x"))
	title, _, _ = bar.Notification()
	require.Empty(t, title)
}

func TestStatusBarSection(t *testing.T) {
	bar, _ := update(t, component.NewStatusBarModel("v1.0.0", 0), model.ViewState{Width: 80})
	bar, _ = update(t, bar, command.ActiveSectionMsg{Section: "skills"})
	require.Contains(t, bar.View(), "skills")
}

func TestStatusBarConfigTimeout(t *testing.T) {
	bar, _ := update(t, component.NewStatusBarModel("v1.0.0", time.Hour), config.Config{NotificationTimeoutMs: 10})
	bar, cmd := update(t, bar, command.NotifyMsg{Title: "Saved"})
	require.NotNil(t, cmd)

	start := time.Now()
	msg := cmd()
	require.Less(t, time.Since(start), time.Minute)
	require.Equal(t, command.ClearNotificationMsg{ID: 1}, msg)

	// A zero timeout leaves the current one in place.
	bar, _ = update(t, bar, config.Config{})
	_, cmd = update(t, bar, command.NotifyMsg{Title: "Again"})
	start = time.Now()
	require.Equal(t, command.ClearNotificationMsg{ID: 2}, cmd())
	require.Less(t, time.Since(start), time.Minute)
}
