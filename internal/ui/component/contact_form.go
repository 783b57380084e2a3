package component

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldSubmit
)

const (
	maxEmailLength = 254
	minFormWidth   = 20
	maxFormWidth   = 80
)

// ContactForm collects a contact.Submission and sends it through a backend.Backend. Only one
// submission can be in flight at a time.
type ContactForm struct {
	ctx        context.Context //nolint:containedctx
	backend    backend.Backend
	fields     []*ValidatingTextInputModel
	message    textarea.Model
	spinner    spinner.Model
	focusIndex formField
	submitting bool
	invalid    []string
	viewState  model.ViewState
	zoneID     string
}

func NewContactForm(ctx context.Context, client backend.Backend) *ContactForm {
	message := textarea.New()
	message.Placeholder = "Tell me about your project or just say hello..."
	message.CharLimit = contact.MaxMessageLength
	message.ShowLineNumbers = false
	message.SetHeight(5)
	message.SetWidth(maxFormWidth - 12)
	message.Blur()

	return &ContactForm{
		ctx:     ctx,
		backend: client,
		fields: []*ValidatingTextInputModel{
			NewValidatingTextInputModel("Name", "Your full name", contact.MaxNameLength,
				LengthValidator{Max: contact.MaxNameLength}),
			NewValidatingTextInputModel("Email", "your.email@example.com", maxEmailLength,
				EmailValidator{}),
			NewValidatingTextInputModel("Subject", "What's this about?", contact.MaxSubjectLength,
				LengthValidator{Max: contact.MaxSubjectLength}),
		},
		message:    message,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.FocusedStyle)),
		focusIndex: fieldName,
		zoneID:     zone.NewPrefix(),
	}
}

func (m *ContactForm) Init() tea.Cmd {
	return nil
}

func (m *ContactForm) Update(msg tea.Msg) (*ContactForm, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		previous := m.viewState.KeyZone
		m.viewState = msg
		m.message.SetWidth(max(minFormWidth, min(msg.Width-16, maxFormWidth)))

		if previous == msg.KeyZone {
			return m, nil
		}

		if msg.KeyZone == model.KZcontactForm {
			return m, m.focus()
		}

		m.blurAll()

		return m, nil
	case command.SubmitResultMsg:
		return m, m.onResult(msg)
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if m.viewState.KeyZone != model.KZcontactForm && zone.Get(m.zoneID).InBounds(msg) {
			state := m.viewState
			state.KeyZone = model.KZcontactForm

			return m, command.SetViewState(state)
		}

		return m, nil
	case tea.KeyMsg:
		if m.viewState.KeyZone != model.KZcontactForm {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Submit):
			return m, m.Submit()
		case key.Matches(msg, input.Default.NextField):
			return m, m.changeInput(input.Down)
		case key.Matches(msg, input.Default.PrevField):
			return m, m.changeInput(input.Up)
		case key.Matches(msg, input.Default.Accept):
			switch m.focusIndex {
			case fieldSubmit:
				return m, m.Submit()
			case fieldName, fieldEmail, fieldSubject:
				return m, m.changeInput(input.Down)
			case fieldMessage:
			}
		}
	}

	return m, m.updateFocused(msg)
}

// Submit validates the entered values and starts the submission. It returns nil while a
// submission is already pending.
func (m *ContactForm) Submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	submission := m.Submission()
	if err := submission.Validate(); err != nil {
		m.invalid = nil

		var validationErr contact.ValidationError
		if errors.As(err, &validationErr) {
			for _, field := range validationErr.Fields {
				m.invalid = append(m.invalid, field.Field)
			}
		}

		return command.Notify("Missing information", "Please fill in all fields.", true)
	}

	m.invalid = nil

	for _, field := range m.fields {
		if err := field.Err(); err != nil {
			return command.Notify("Invalid information", field.Label+": "+err.Error(), true)
		}
	}

	m.submitting = true

	return tea.Batch(m.spinner.Tick, command.SubmitContact(m.ctx, m.backend, submission))
}

func (m *ContactForm) onResult(msg command.SubmitResultMsg) tea.Cmd {
	m.submitting = false

	if msg.Err != nil {
		slog.Error("Failed to submit contact form", slog.String("error", msg.Err.Error()))

		return command.Notify("Error", backend.ReasonSubmit, true)
	}

	m.reset()

	return command.Notify("Message sent!", msg.Receipt.Message, false)
}

func (m *ContactForm) Submitting() bool {
	return m.submitting
}

func (m *ContactForm) Submission() contact.Submission {
	return contact.Submission{
		Name:    m.fields[fieldName].Input.Value(),
		Email:   m.fields[fieldEmail].Input.Value(),
		Subject: m.fields[fieldSubject].Input.Value(),
		Message: m.message.Value(),
	}
}

// SetSubmission fills every field.
func (m *ContactForm) SetSubmission(submission contact.Submission) {
	m.fields[fieldName].SetValue(submission.Name)
	m.fields[fieldEmail].SetValue(submission.Email)
	m.fields[fieldSubject].SetValue(submission.Subject)
	m.message.SetValue(submission.Message)
}

func (m *ContactForm) reset() {
	m.SetSubmission(contact.Submission{})
	m.invalid = nil
}

func (m *ContactForm) changeInput(dir input.Direction) tea.Cmd {
	switch dir {
	case input.Up:
		if m.focusIndex == fieldName {
			m.focusIndex = fieldSubmit
		} else {
			m.focusIndex--
		}
	case input.Down:
		if m.focusIndex == fieldSubmit {
			m.focusIndex = fieldName
		} else {
			m.focusIndex++
		}
	}

	return m.focus()
}

// focus gives the keyboard to the field at focusIndex, blurring the rest.
func (m *ContactForm) focus() tea.Cmd {
	m.blurAll()

	switch m.focusIndex {
	case fieldName, fieldEmail, fieldSubject:
		return m.fields[m.focusIndex].Focus()
	case fieldMessage:
		return m.message.Focus()
	case fieldSubmit:
	}

	return nil
}

func (m *ContactForm) blurAll() {
	for _, field := range m.fields {
		field.Blur()
	}

	m.message.Blur()
}

func (m *ContactForm) updateFocused(msg tea.Msg) tea.Cmd {
	if m.viewState.KeyZone != model.KZcontactForm {
		return nil
	}

	var cmd tea.Cmd

	switch m.focusIndex {
	case fieldName, fieldEmail, fieldSubject:
		_, cmd = m.fields[m.focusIndex].Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	case fieldSubmit:
	}

	return cmd
}

func (m *ContactForm) View() string {
	rows := make([]string, 0, 8)
	for _, field := range m.fields {
		rows = append(rows, field.View())
	}

	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, styles.InputLabel.Render("Message"), m.message.View()))

	if len(m.invalid) > 0 {
		rows = append(rows, styles.FieldNotice.Render("Required: "+strings.Join(m.invalid, ", ")))
	}

	var button string

	switch {
	case m.submitting:
		button = m.spinner.View() + " " + styles.SubmittingSubmitButton
	case m.focusIndex == fieldSubmit && m.viewState.KeyZone == model.KZcontactForm:
		button = styles.FocusedSubmitButton
	default:
		button = styles.BlurredSubmitButton
	}

	rows = append(rows, "", styles.InputLabel.Render("")+button)

	if m.viewState.KeyZone != model.KZcontactForm {
		rows = append(rows, styles.Faint.Render("Press c or click the form to start typing. esc leaves the form."))
	} else {
		rows = append(rows, styles.Faint.Render("tab next field, ctrl+s send, esc leave form"))
	}

	return zone.Mark(m.zoneID, lipgloss.JoinVertical(lipgloss.Left, rows...))
}
