package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/pages"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const (
	navHeight    = 2
	statusHeight = 1
)

type menuViewer interface {
	MenuView() string
}

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	ctx         context.Context //nolint:containedctx
	backend     backend.Backend
	title       string
	viewState   model.ViewState
	navModel    tea.Model
	pageModel   tea.Model
	helpModel   tea.Model
	statusModel tea.Model
	downloading bool
}

func newRootModel(ctx context.Context, conf config.Config, portfolio content.Portfolio, client backend.Backend,
	source backend.StatsSource, buildVersion string, buildDate string, buildCommit string, configPath string, cachePath string,
) *rootModel {
	return &rootModel{
		ctx:         ctx,
		backend:     client,
		title:       portfolio.Profile.Name,
		navModel:    component.NewNavModel(portfolio.Profile.Name),
		pageModel:   pages.NewPortfolio(ctx, conf, portfolio, client, source),
		helpModel:   pages.NewHelp(buildVersion, buildDate, buildCommit, configPath, cachePath),
		statusModel: component.NewStatusBarModel(buildVersion, conf.NotificationTimeout()),
		viewState: model.ViewState{
			Page:    model.PageMain,
			KeyZone: model.KZpage,
			Upper:   navHeight,
			Lower:   statusHeight,
		},
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.title),
		m.navModel.Init(),
		m.pageModel.Init(),
		m.helpModel.Init(),
		m.statusModel.Init(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width

		return m, command.SetViewState(m.viewState)
	case model.ViewState:
		m.viewState = msg
	case command.ResumeResultMsg:
		m.downloading = false

		return m, onResume(msg)
	case tea.KeyMsg:
		if !m.isInitialized() {
			return m, nil
		}

		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.viewState.KeyZone == model.KZcontactForm {
			// All other keys go to the form.
			if key.Matches(msg, input.Default.Back) {
				state := m.viewState
				state.KeyZone = model.KZpage

				return m, command.SetViewState(state)
			}

			break
		}

		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			state := m.viewState
			state.KeyZone = model.KZpage

			if state.Page == model.PageHelp {
				state.Page = model.PageMain
			} else {
				state.Page = model.PageHelp
			}

			return m, command.SetViewState(state)
		case key.Matches(msg, input.Default.Resume):
			if m.viewState.Page != model.PageMain || m.downloading {
				return m, nil
			}

			m.downloading = true

			return m, tea.Batch(
				command.Notify("Downloading", "Fetching resume...", false),
				command.DownloadResume(m.ctx, m.backend))
		}
	}

	return m.propagate(inMsg)
}

func onResume(msg command.ResumeResultMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Error("Failed to download resume", slog.String("error", msg.Err.Error()))

		return command.Notify("Error", backend.ReasonResume, true)
	}

	description := msg.Resume.Filename
	switch {
	case msg.Resume.Path != "":
		description = "Saved to " + msg.Resume.Path
	case msg.Resume.DownloadURL != "":
		description = msg.Resume.Filename + " available at " + msg.Resume.DownloadURL
	}

	return command.Notify("Resume downloaded", description, false)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	header := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(m.navModel.View())
	footer := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.statusModel.View())

	var content string

	switch {
	case m.viewState.Page == model.PageHelp:
		content = m.helpModel.View()
	case m.viewState.KeyZone == model.KZmenu:
		if menu, ok := m.navModel.(menuViewer); ok {
			content = menu.MenuView()
		}
	default:
		content = m.pageModel.View()
	}

	height := m.viewState.ContentHeight()
	ctr := styles.ContentContainerStyle.Height(height).MaxHeight(height).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, ctr, footer))
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

func (m rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 4)

	m.navModel, cmds[0] = m.navModel.Update(msg)
	m.pageModel, cmds[1] = m.pageModel.Update(msg)
	m.helpModel, cmds[2] = m.helpModel.Update(msg)
	m.statusModel, cmds[3] = m.statusModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/folio/folio.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case command.FrameMsg:
	case spinner.TickMsg:
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
