package ui

import (
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()

	os.Exit(m.Run())
}

func newTestRoot(t *testing.T, opts ...backend.MockOption) rootModel {
	t.Helper()

	portfolio, err := content.Default()
	require.NoError(t, err)

	mock, errMock := backend.NewMock(portfolio.ContactResponses,
		backend.Resume{DownloadURL: "/assets/resume.pdf", Filename: portfolio.ResumeFilename()},
		append([]backend.MockOption{backend.WithLatency(0), backend.WithResumeLatency(0)}, opts...)...)
	require.NoError(t, errMock)

	root := *newRootModel(t.Context(), config.Config{FPS: 60}, portfolio, mock, mock, "v0.0.1", "today", "abcdef0123", "/tmp/folio.yaml", "/tmp/cache")

	next, cmd := root.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	root = next.(rootModel) //nolint:forcetypeassert

	return apply(t, root, cmd)
}

// apply feeds the messages produced by cmd back into the model, one level deep.
func apply(t *testing.T, root rootModel, cmd tea.Cmd) rootModel {
	t.Helper()

	for _, msg := range messages(cmd) {
		next, _ := root.Update(msg)
		root = next.(rootModel) //nolint:forcetypeassert
	}

	return root
}

func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, inner := range batch {
			msgs = append(msgs, messages(inner)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

func keyPress(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestRootWindowSize(t *testing.T) {
	root := newTestRoot(t)

	require.Equal(t, 100, root.viewState.Width)
	require.Equal(t, 40, root.viewState.Height)
	require.Equal(t, 37, root.viewState.ContentHeight())
	require.NotEmpty(t, root.View())
}

func TestRootIgnoresKeysBeforeSize(t *testing.T) {
	portfolio, err := content.Default()
	require.NoError(t, err)

	mock, errMock := backend.NewMock(portfolio.ContactResponses, backend.Resume{})
	require.NoError(t, errMock)

	root := newRootModel(t.Context(), config.Config{}, portfolio, mock, nil, "", "", "", "", "")
	_, cmd := root.Update(keyPress("q"))
	require.Nil(t, cmd)
}

func TestRootQuit(t *testing.T) {
	root := newTestRoot(t)

	_, cmd := root.Update(keyPress("q"))
	require.Equal(t, []tea.Msg{tea.QuitMsg{}}, messages(cmd))
}

func TestRootFormZoneKeys(t *testing.T) {
	root := newTestRoot(t)
	state := root.viewState
	state.KeyZone = model.KZcontactForm

	root = apply(t, root, command.SetViewState(state))
	require.Equal(t, model.KZcontactForm, root.viewState.KeyZone)

	// q is typed into the form rather than quitting.
	next, _ := root.Update(keyPress("q"))
	root = next.(rootModel) //nolint:forcetypeassert
	require.Equal(t, model.KZcontactForm, root.viewState.KeyZone)

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Equal(t, []tea.Msg{tea.QuitMsg{}}, messages(cmd))

	_, cmd = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msgs := messages(cmd)
	require.Len(t, msgs, 1)

	left, ok := msgs[0].(model.ViewState)
	require.True(t, ok)
	require.Equal(t, model.KZpage, left.KeyZone)
}

func TestRootHelpToggle(t *testing.T) {
	root := newTestRoot(t)

	_, cmd := root.Update(keyPress("?"))
	root = apply(t, root, cmd)
	require.Equal(t, model.PageHelp, root.viewState.Page)
	require.Contains(t, root.View(), "abcdef01")

	_, cmd = root.Update(keyPress("?"))
	root = apply(t, root, cmd)
	require.Equal(t, model.PageMain, root.viewState.Page)
}

func TestRootResumeDownload(t *testing.T) {
	root := newTestRoot(t)

	next, cmd := root.Update(keyPress("r"))
	root = next.(rootModel) //nolint:forcetypeassert
	require.True(t, root.downloading)

	// Pressing again while a download is pending does nothing.
	_, again := root.Update(keyPress("r"))
	require.Nil(t, again)

	var result command.ResumeResultMsg
	for _, msg := range messages(cmd) {
		if found, ok := msg.(command.ResumeResultMsg); ok {
			result = found
		}
	}

	require.NoError(t, result.Err)
	require.Equal(t, "Jordan_Avery_Resume.pdf", result.Resume.Filename)

	next, cmd = root.Update(result)
	root = next.(rootModel) //nolint:forcetypeassert
	require.False(t, root.downloading)

	notify, ok := messages(cmd)[0].(command.NotifyMsg)
	require.True(t, ok)
	require.False(t, notify.Err)
	require.Contains(t, notify.Description, "/assets/resume.pdf")
}

func TestRootResumeFailure(t *testing.T) {
	root := newTestRoot(t, backend.WithFailure(errors.New("offline")))

	_, cmd := root.Update(keyPress("r"))

	for _, msg := range messages(cmd) {
		if result, ok := msg.(command.ResumeResultMsg); ok {
			_, notifyCmd := root.Update(result)
			notify, isNotify := messages(notifyCmd)[0].(command.NotifyMsg)
			require.True(t, isNotify)
			require.True(t, notify.Err)
			require.Equal(t, backend.ReasonResume, notify.Description)

			return
		}
	}

	t.Fatal("no resume result")
}
