package component_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func updateNav(t *testing.T, nav tea.Model, msg tea.Msg) (component.NavModel, tea.Cmd) {
	t.Helper()

	next, cmd := nav.Update(msg)
	navModel, ok := next.(component.NavModel)
	require.True(t, ok)

	return navModel, cmd
}

func TestNavJumpKeys(t *testing.T) {
	nav, _ := updateNav(t, component.NewNavModel("Jordan Avery"), model.ViewState{Width: 120, KeyZone: model.KZpage})

	_, cmd := updateNav(t, nav, runes("3"))
	msgs := collect(t, cmd)

	jump, found := find[command.JumpMsg](msgs)
	require.True(t, found)
	require.Equal(t, "skills", jump.Section)

	state, found := find[model.ViewState](msgs)
	require.True(t, found)
	require.Equal(t, model.KZpage, state.KeyZone)

	_, cmd = updateNav(t, nav, runes("9"))
	require.Nil(t, cmd)
}

func TestNavMenuToggle(t *testing.T) {
	nav, _ := updateNav(t, component.NewNavModel("Jordan Avery"), model.ViewState{Width: 120, Height: 40, Upper: 2, Lower: 1})
	require.False(t, nav.MenuOpen())

	_, cmd := updateNav(t, nav, runes("m"))
	state, found := find[model.ViewState](collect(t, cmd))
	require.True(t, found)
	require.Equal(t, model.KZmenu, state.KeyZone)

	nav, _ = updateNav(t, nav, state)
	require.True(t, nav.MenuOpen())
	require.Contains(t, nav.MenuView(), "Experience")

	_, cmd = updateNav(t, nav, tea.KeyMsg{Type: tea.KeyEsc})
	state, found = find[model.ViewState](collect(t, cmd))
	require.True(t, found)
	require.Equal(t, model.KZpage, state.KeyZone)
}

func TestNavActiveSection(t *testing.T) {
	nav, _ := updateNav(t, component.NewNavModel("Jordan Avery"), model.ViewState{Width: 120})
	require.Equal(t, "home", nav.Active())

	nav, _ = updateNav(t, nav, command.ActiveSectionMsg{Section: "about", Scrolled: true})
	require.Equal(t, "about", nav.Active())
	require.Contains(t, nav.View(), "About")
}

func TestNavIgnoresKeysInForm(t *testing.T) {
	nav, _ := updateNav(t, component.NewNavModel("Jordan Avery"), model.ViewState{Width: 120, KeyZone: model.KZcontactForm})

	_, cmd := updateNav(t, nav, runes("2"))
	require.Nil(t, cmd)
}
