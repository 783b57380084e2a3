// Package backend implements the contract used by the contact form to reach its server. The
// simulated Mock and the real http Client are interchangeable behind the Backend interface.
package backend

import (
	"context"
	"errors"

	"github.com/leighmacdonald/folio/internal/contact"
)

var (
	// ErrValidation means the submission was rejected before any request was made.
	ErrValidation = contact.ErrValidation
	// ErrTransport means the server could not be reached or did not answer in time.
	ErrTransport = errors.New("transport failure")
	// ErrServer means the server answered with a non-success status.
	ErrServer = errors.New("server error")
	// ErrForced is returned by a Mock configured to fail.
	ErrForced = errors.New("simulated failure")
)

// Human readable notification texts. Every failure is surfaced the same way.
const (
	ReasonSubmit = "Failed to send message. Please try again."
	ReasonResume = "Failed to download resume. Please try again."
	ReasonStats  = "Failed to get portfolio statistics."
)

// Resume describes where the resume can be fetched from.
type Resume struct {
	DownloadURL string
	Filename    string
	// Path is set when a local copy was stored.
	Path string
}

type Backend interface {
	// Submit sends a contact form submission. Validation happens before any I/O so an invalid
	// submission fails immediately with ErrValidation.
	Submit(ctx context.Context, submission contact.Submission) (contact.Receipt, error)
	DownloadResume(ctx context.Context) (Resume, error)
}

// StatsSource is implemented by backends able to report the portfolio statistics.
type StatsSource interface {
	Stats(ctx context.Context) (contact.Stats, error)
}

// ServerError carries the detail message of a failed response.
type ServerError struct {
	Status int
	Detail string
}

func (e ServerError) Error() string {
	if e.Detail == "" {
		return ErrServer.Error()
	}

	return ErrServer.Error() + ": " + e.Detail
}

func (e ServerError) Unwrap() error {
	return ErrServer
}
