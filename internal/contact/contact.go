// Package contact defines contact form submissions and the rules they must satisfy.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength    = 100
	MaxSubjectLength = 200
	MaxMessageLength = 2000
)

var (
	ErrValidation = errors.New("validation error")
	ErrSpam       = errors.New("message looks like spam")
	ErrStatus     = errors.New("invalid message status")
)

// Field names, matching the json keys of a Submission.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Submission is the transient value collected by the contact form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Receipt is returned once a submission has been accepted.
type Receipt struct {
	Success   bool      `json:"success"`
	ID        string    `json:"id,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError collects every field problem of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for idx, field := range e.Fields {
		parts[idx] = field.Field + ": " + field.Reason
	}

	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e ValidationError) Unwrap() error {
	return ErrValidation
}

// Has reports if the named field was rejected.
func (e ValidationError) Has(field string) bool {
	for _, fieldErr := range e.Fields {
		if fieldErr.Field == field {
			return true
		}
	}

	return false
}

func (s Submission) fields() []FieldError {
	var fields []FieldError
	for _, field := range []struct {
		name  string
		value string
	}{
		{FieldName, s.Name},
		{FieldEmail, s.Email},
		{FieldSubject, s.Subject},
		{FieldMessage, s.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			fields = append(fields, FieldError{Field: field.name, Reason: "cannot be empty"})
		}
	}

	return fields
}

// Validate requires all four fields to be non-blank.
func (s Submission) Validate() error {
	if fields := s.fields(); len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

// ValidateStrict applies ValidateFields and then rejects spam.
func (s Submission) ValidateStrict() error {
	if err := s.ValidateFields(); err != nil {
		return err
	}

	return s.CheckSpam()
}

// ValidateFields applies Validate along with the length and email format rules.
func (s Submission) ValidateFields() error {
	norm := s.Normalize()
	fields := norm.fields()

	if utf8.RuneCountInString(norm.Name) > MaxNameLength {
		fields = append(fields, FieldError{Field: FieldName, Reason: fmt.Sprintf("must be at most %d characters", MaxNameLength)})
	}

	if norm.Email != "" && !ValidEmail(norm.Email) {
		fields = append(fields, FieldError{Field: FieldEmail, Reason: "is not a valid email address"})
	}

	if utf8.RuneCountInString(norm.Subject) > MaxSubjectLength {
		fields = append(fields, FieldError{Field: FieldSubject, Reason: fmt.Sprintf("must be at most %d characters", MaxSubjectLength)})
	}

	if utf8.RuneCountInString(norm.Message) > MaxMessageLength {
		fields = append(fields, FieldError{Field: FieldMessage, Reason: fmt.Sprintf("must be at most %d characters", MaxMessageLength)})
	}

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

// CheckSpam rejects a message body matching the spam heuristics.
func (s Submission) CheckSpam() error {
	if IsSpam(strings.TrimSpace(s.Message)) {
		return errors.Join(ErrSpam, ValidationError{Fields: []FieldError{{Field: FieldMessage, Reason: "rejected"}}})
	}

	return nil
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Sanitized returns a copy safe for storage and display.
func (s Submission) Sanitized() Submission {
	return Submission{
		Name:    Sanitize(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: Sanitize(s.Subject),
		Message: Sanitize(s.Message),
	}
}
