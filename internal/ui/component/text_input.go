package component

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

var (
	errEmailInvalid = errors.New("invalid email address")
	errTooLong      = errors.New("value too long")
)

type InputValidator interface {
	Validate(string) error
}

func NewTextInputModel(value string, placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = limit
	input.Placeholder = placeholder
	input.Prompt = ""
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func NewValidatingTextInputModel(label string, placeholder string, limit int, validators ...InputValidator) *ValidatingTextInputModel {
	input := NewTextInputModel("", placeholder, limit)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &ValidatingTextInputModel{Input: input, Label: label}
}

type ValidatingTextInputModel struct {
	Label string
	Input textinput.Model
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *ValidatingTextInputModel) View() string {
	var errRow string
	if m.Input.Err != nil && m.Input.Value() != "" {
		errRow = styles.ErrorStyle.Render(m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.InputLabel.Render(m.Label),
		lipgloss.JoinVertical(lipgloss.Top, m.Input.View(), errRow))
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

// SetValue replaces the value, running the validators again.
func (m *ValidatingTextInputModel) SetValue(value string) {
	m.Input.SetValue(value)

	if m.Input.Validate != nil {
		m.Input.Err = m.Input.Validate(m.Input.Value())
	}
}

// Err is the current validation error, if any.
func (m *ValidatingTextInputModel) Err() error {
	return m.Input.Err
}

// EmailValidator accepts an empty value so a blank form does not start out in an error state.
type EmailValidator struct{}

func (v EmailValidator) Validate(value string) error {
	if value == "" || contact.ValidEmail(value) {
		return nil
	}

	return errEmailInvalid
}

type LengthValidator struct {
	Max int
}

func (v LengthValidator) Validate(value string) error {
	if len([]rune(value)) > v.Max {
		return fmt.Errorf("%w: max %d characters", errTooLong, v.Max)
	}

	return nil
}
