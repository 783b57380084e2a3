package command

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/ui/model"
)

const DefaultNotificationTimeout = time.Second * 5

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}

// NotifyMsg shows a transient notification in the status bar.
type NotifyMsg struct {
	Title       string
	Description string
	Err         bool
}

func Notify(title string, description string, err bool) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Title: title, Description: description, Err: err}
	}
}

// ClearNotificationMsg expires the notification with the matching ID. Newer notifications have
// a different ID and are left alone.
type ClearNotificationMsg struct {
	ID int
}

func ClearNotificationAfter(t time.Duration, id int) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearNotificationMsg{ID: id}
	})
}

// FrameMsg triggers the single pending section scan.
type FrameMsg struct{}

// NextFrame schedules a FrameMsg on the next frame boundary.
func NextFrame(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(1, fps)), func(_ time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// ActiveSectionMsg is sent when the section in view, or the scrolled state, changes.
type ActiveSectionMsg struct {
	Section  string
	Scrolled bool
}

func SetActiveSection(section string, scrolled bool) tea.Cmd {
	return func() tea.Msg { return ActiveSectionMsg{Section: section, Scrolled: scrolled} }
}

// JumpMsg scrolls the page so the named section starts at the top of the viewport.
type JumpMsg struct {
	Section string
}

func JumpTo(section string) tea.Cmd {
	return func() tea.Msg { return JumpMsg{Section: section} }
}

type SubmitResultMsg struct {
	Receipt contact.Receipt
	Err     error
}

// SubmitContact performs the submission off of the update loop. The result always comes back
// as a SubmitResultMsg, success or not.
func SubmitContact(ctx context.Context, client backend.Backend, submission contact.Submission) tea.Cmd {
	return func() tea.Msg {
		receipt, err := client.Submit(ctx, submission)

		return SubmitResultMsg{Receipt: receipt, Err: err}
	}
}

type ResumeResultMsg struct {
	Resume backend.Resume
	Err    error
}

func DownloadResume(ctx context.Context, client backend.Backend) tea.Cmd {
	return func() tea.Msg {
		resume, err := client.DownloadResume(ctx)

		return ResumeResultMsg{Resume: resume, Err: err}
	}
}

type StatsMsg struct {
	Stats contact.Stats
	Err   error
}

func FetchStats(ctx context.Context, source backend.StatsSource) tea.Cmd {
	if source == nil {
		return nil
	}

	return func() tea.Msg {
		stats, err := source.Stats(ctx)

		return StatsMsg{Stats: stats, Err: err}
	}
}
