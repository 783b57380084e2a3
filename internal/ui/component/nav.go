package component

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/scroll"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type navItem struct {
	label  string
	anchor string
}

// NavModel is the header bar. It highlights the section in view and offers a menu to jump
// between sections.
type NavModel struct {
	brand     string
	items     []navItem
	active    string
	scrolled  bool
	menuOpen  bool
	viewState model.ViewState
	id        string
}

func NewNavModel(brand string) *NavModel {
	title := cases.Title(language.English)
	items := make([]navItem, len(scroll.Anchors))

	for idx, anchor := range scroll.Anchors {
		items[idx] = navItem{label: title.String(anchor), anchor: anchor}
	}

	return &NavModel{
		brand:  brand,
		items:  items,
		active: scroll.DefaultSection,
		id:     zone.NewPrefix(),
	}
}

func (m NavModel) Init() tea.Cmd {
	return nil
}

func (m NavModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case command.ActiveSectionMsg:
		m.active = msg.Section
		m.scrolled = msg.Scrolled
	case model.ViewState:
		m.viewState = msg
		m.menuOpen = msg.KeyZone == model.KZmenu
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if zone.Get(m.id + "menu").InBounds(msg) {
			return m, m.toggleMenu()
		}

		for _, item := range m.items {
			if zone.Get(m.id+item.anchor).InBounds(msg) || zone.Get(m.id+"menu-"+item.anchor).InBounds(msg) {
				return m, m.jump(item.anchor)
			}
		}
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain || m.viewState.KeyZone == model.KZcontactForm {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Menu):
			return m, m.toggleMenu()
		case key.Matches(msg, input.Default.Back):
			if m.menuOpen {
				return m, m.toggleMenu()
			}
		case key.Matches(msg, input.Default.Jump):
			index, err := strconv.Atoi(msg.String())
			if err != nil || index < 1 || index > len(m.items) {
				return m, nil
			}

			return m, m.jump(m.items[index-1].anchor)
		}
	}

	return m, nil
}

// jump closes the menu, if open, and scrolls to the section.
func (m NavModel) jump(anchor string) tea.Cmd {
	state := m.viewState
	state.KeyZone = model.KZpage

	return tea.Batch(command.SetViewState(state), command.JumpTo(anchor))
}

func (m NavModel) toggleMenu() tea.Cmd {
	state := m.viewState
	if m.menuOpen {
		state.KeyZone = model.KZpage
	} else {
		state.KeyZone = model.KZmenu
	}

	return command.SetViewState(state)
}

func (m NavModel) MenuOpen() bool {
	return m.menuOpen
}

func (m NavModel) Active() string {
	return m.active
}

func (m NavModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	items := []string{zone.Mark(m.id+"brand", styles.NavBrand.Render(m.brand))}

	for idx, item := range m.items {
		label := fmt.Sprintf("%d %s", idx+1, item.label)
		if item.anchor == m.active {
			items = append(items, zone.Mark(m.id+item.anchor, styles.NavItemActive.Render(label)))
		} else {
			items = append(items, zone.Mark(m.id+item.anchor, styles.NavItem.Render(label)))
		}
	}

	items = append(items, zone.Mark(m.id+"menu", styles.NavItem.Render("[m] Menu")))

	style := styles.NavBar
	if m.scrolled {
		style = styles.NavBarScrolled
	}

	bar := style.Width(m.viewState.Width).MaxHeight(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
	rule := styles.NavRule.Render(styles.WrapX(m.viewState.Width, "", "─"))

	return lipgloss.JoinVertical(lipgloss.Left, bar, rule)
}

// MenuView renders the open section menu.
func (m NavModel) MenuView() string {
	rows := make([]string, 0, len(m.items)+2)
	rows = append(rows, styles.Heading.Render("Sections"), "")

	for idx, item := range m.items {
		label := fmt.Sprintf("%d  %s", idx+1, item.label)
		if item.anchor == m.active {
			rows = append(rows, zone.Mark(m.id+"menu-"+item.anchor, styles.MenuItemActive.Render("> "+label)))
		} else {
			rows = append(rows, zone.Mark(m.id+"menu-"+item.anchor, styles.MenuItem.Render("  "+label)))
		}
	}

	menu := styles.MenuBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.Place(m.viewState.Width, m.viewState.ContentHeight(), lipgloss.Center, lipgloss.Center, menu)
}
