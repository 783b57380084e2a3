package component

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

type notification struct {
	id          int
	title       string
	description string
	err         bool
}

type StatusBarModel struct {
	viewState    model.ViewState
	notification notification
	nextID       int
	timeout      time.Duration
	section      string
	version      string
}

func NewStatusBarModel(version string, timeout time.Duration) *StatusBarModel {
	if timeout <= 0 {
		timeout = command.DefaultNotificationTimeout
	}

	return &StatusBarModel{version: version, timeout: timeout}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case command.NotifyMsg:
		m.nextID++
		m.notification = notification{
			id:          m.nextID,
			title:       msg.Title,
			description: msg.Description,
			err:         msg.Err,
		}

		return m, command.ClearNotificationAfter(m.timeout, m.nextID)
	case command.ClearNotificationMsg:
		if msg.ID == m.notification.id {
			m.notification = notification{}
		}
	case command.ActiveSectionMsg:
		m.section = msg.Section
	case config.Config:
		if timeout := msg.NotificationTimeout(); timeout > 0 {
			m.timeout = timeout
		}
	case model.ViewState:
		m.viewState = msg
	case tea.KeyMsg:
		if m.viewState.KeyZone == model.KZcontactForm {
			break
		}

		if key.Matches(msg, input.Default.Dismiss) {
			m.notification = notification{}
		}
	}

	return m, nil
}

// Notification returns the currently displayed title and description.
func (m StatusBarModel) Notification() (string, string, bool) {
	return m.notification.title, m.notification.description, m.notification.err
}

func (m StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
	}

	if m.section != "" {
		args = append(args, styles.StatusSection.Render(m.section))
	}

	args = append(args, m.status())

	return lipgloss.NewStyle().Width(m.viewState.Width).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) status() string {
	if m.notification.title == "" {
		return ""
	}

	title := styles.StatusMessage.Render(m.notification.title)
	if m.notification.err {
		title = styles.StatusError.Render(m.notification.title)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title,
		styles.StatusDetail.Render(m.notification.description),
		styles.StatusHelp.Render(input.Default.Dismiss.Help().Key))
}
