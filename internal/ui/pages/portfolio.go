package pages

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/scroll"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
)

const defaultFPS = 60

// Portfolio is the single scrolling page holding every section. Scroll offsets are fed to the
// tracker as they happen and the active section is resolved once per frame.
type Portfolio struct {
	ctx       context.Context //nolint:containedctx
	viewport  viewport.Model
	tracker   *scroll.Tracker
	form      *component.ContactForm
	renderer  *component.SectionRenderer
	source    backend.StatsSource
	viewState model.ViewState
	stats     contact.Stats
	statsAt   time.Time
	fps       int
	now       func() time.Time
}

func NewPortfolio(ctx context.Context, conf config.Config, portfolio content.Portfolio, client backend.Backend, source backend.StatsSource) *Portfolio {
	fps := conf.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	return &Portfolio{
		ctx:      ctx,
		viewport: viewport.New(0, 0),
		tracker:  scroll.NewTracker(conf.ScrollLookahead, conf.ScrollThreshold),
		form:     component.NewContactForm(ctx, client),
		renderer: component.NewSectionRenderer(portfolio),
		source:   source,
		stats:    portfolio.Stats(0),
		fps:      fps,
		now:      time.Now,
	}
}

func (m *Portfolio) Init() tea.Cmd {
	return command.FetchStats(m.ctx, m.source)
}

func (m *Portfolio) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.ContentHeight()
		m.form, cmd = m.form.Update(msg)
		m.render()

		return m, cmd
	case config.Config:
		m.tracker.Configure(msg.ScrollLookahead, msg.ScrollThreshold)
		if msg.FPS > 0 {
			m.fps = msg.FPS
		}

		return m, nil
	case command.StatsMsg:
		if msg.Err != nil {
			slog.Error("Failed to fetch stats", slog.String("error", msg.Err.Error()))

			return m, nil
		}

		m.stats = msg.Stats
		m.statsAt = m.now()
		m.render()

		return m, nil
	case command.SubmitResultMsg:
		m.form, cmd = m.form.Update(msg)
		m.render()

		if msg.Err == nil {
			return m, tea.Batch(cmd, command.FetchStats(m.ctx, m.source))
		}

		return m, cmd
	case command.JumpMsg:
		top, found := m.tracker.SectionTop(msg.Section)
		if !found {
			return m, nil
		}

		m.viewport.SetYOffset(top)

		return m, m.observe()
	case command.FrameMsg:
		active, scrolled, changed := m.tracker.Frame()
		if !changed {
			return m, nil
		}

		m.render()

		return m, command.SetActiveSection(active, scrolled)
	case tea.MouseMsg:
		m.form, cmd = m.form.Update(msg)
		if m.viewState.Page != model.PageMain || m.viewState.KeyZone == model.KZmenu || !tea.MouseEvent(msg).IsWheel() {
			return m, cmd
		}

		m.viewport, _ = m.viewport.Update(msg)

		return m, tea.Batch(cmd, m.observe())
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}

		if m.viewState.KeyZone == model.KZcontactForm {
			m.form, cmd = m.form.Update(msg)
			m.render()

			return m, cmd
		}

		if m.viewState.KeyZone != model.KZpage {
			return m, nil
		}

		return m, m.onKey(msg)
	}

	// Anything else, spinner ticks and cursor blinks, belongs to the form.
	m.form, cmd = m.form.Update(msg)
	if cmd != nil {
		m.render()
	}

	return m, cmd
}

func (m *Portfolio) onKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, input.Default.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, input.Default.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, input.Default.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, input.Default.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, input.Default.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, input.Default.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, input.Default.Contact):
		return tea.Batch(command.JumpTo("contact"), m.enterForm())
	case key.Matches(msg, input.Default.Accept), key.Matches(msg, input.Default.NextField):
		if m.tracker.Active() == "contact" {
			return m.enterForm()
		}

		return nil
	default:
		return nil
	}

	return m.observe()
}

func (m *Portfolio) enterForm() tea.Cmd {
	state := m.viewState
	state.KeyZone = model.KZcontactForm

	return command.SetViewState(state)
}

// observe hands the current offset to the tracker, scheduling a frame only when none is
// already pending.
func (m *Portfolio) observe() tea.Cmd {
	if !m.tracker.Observe(m.viewport.YOffset) {
		return nil
	}

	return command.NextFrame(m.fps)
}

// render rebuilds the page content and the section layout from the current state.
func (m *Portfolio) render() {
	if m.viewState.Width == 0 {
		return
	}

	data := component.PageData{
		Stats:   m.stats,
		StatsAt: m.statsAt,
		Active:  m.tracker.Active(),
		Form:    m.form.View(),
		Now:     m.now(),
	}

	blocks := make([]string, len(scroll.Anchors))
	heights := make([]int, len(scroll.Anchors))

	for idx, anchor := range scroll.Anchors {
		blocks[idx] = m.renderer.Render(anchor, m.viewState.Width, data)
		heights[idx] = lipgloss.Height(blocks[idx])
	}

	m.tracker.SetSections(scroll.Stack(scroll.Anchors, heights))

	// Pad by a full viewport so the last section can still be scrolled to the top.
	m.viewport.SetContent(strings.Join(blocks, "\n") + strings.Repeat("\n", m.viewport.Height))
}

func (m *Portfolio) Form() *component.ContactForm {
	return m.form
}

func (m *Portfolio) Offset() int {
	return m.viewport.YOffset
}

func (m *Portfolio) Tracker() *scroll.Tracker {
	return m.tracker
}

func (m *Portfolio) View() string {
	return m.viewport.View()
}
