package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/network/encoding"
	"github.com/leighmacdonald/folio/internal/store"
	"golang.org/x/exp/constraints"
)

const (
	// Acknowledgement is returned for every accepted contact message.
	Acknowledgement   = "Thank you for reaching out! I'll get back to you within 24 hours."
	detailRateLimited = "Too many requests. Please try again later."
	defaultListLimit  = 50
	maxListLimit      = 100
)

type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusUpdate is the body accepted when triaging a stored message.
type StatusUpdate struct {
	Status string `json:"status"`
}

type ContactsResponse struct {
	Messages []contact.Message `json:"messages"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

func (s *Server) onHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Message: "Portfolio API is running", Status: "healthy"})
}

func (s *Server) onSubmitContact(w http.ResponseWriter, r *http.Request) {
	submission, errDecode := encoding.UnmarshalJSON[contact.Submission](http.MaxBytesReader(w, r.Body, encoding.MaxBodySize))
	if errDecode != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")

		return
	}

	if err := submission.ValidateFields(); err != nil {
		writeValidationError(w, err)

		return
	}

	address := clientIP(r)

	if s.rateLimited(r.Context(), address) {
		writeError(w, http.StatusTooManyRequests, detailRateLimited)

		return
	}

	if err := submission.CheckSpam(); err != nil {
		writeValidationError(w, err)

		return
	}

	clean := submission.Normalize().Sanitized()
	msg := contact.Message{
		ID:        uuid.NewString(),
		Name:      clean.Name,
		Email:     clean.Email,
		Subject:   clean.Subject,
		Message:   clean.Message,
		Timestamp: s.now().UTC(),
		Status:    contact.StatusNew,
		IPAddress: address,
		UserAgent: r.UserAgent(),
	}

	if s.geo != nil {
		msg.Country = s.geo.Country(address)
	}

	if err := s.contacts.Insert(r.Context(), msg); err != nil {
		slog.Error("Failed to save contact message", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to save contact message")

		return
	}

	slog.Info("Contact message saved", slog.String("id", msg.ID), slog.String("country", msg.Country))

	writeJSON(w, http.StatusOK, contact.Receipt{
		Success:   true,
		ID:        msg.ID,
		Message:   Acknowledgement,
		Timestamp: msg.Timestamp,
	})
}

// rateLimited reports if address has used up its submissions for the current window. A failed
// lookup lets the request through.
func (s *Server) rateLimited(ctx context.Context, address string) bool {
	if s.conf.RateLimit <= 0 {
		return false
	}

	recent, err := s.contacts.CountSince(ctx, address, s.now().Add(-s.conf.RateWindow()))
	if err != nil {
		slog.Error("Failed to check rate limit", slog.String("error", err.Error()),
			slog.String("address", address))

		return false
	}

	return recent >= s.conf.RateLimit
}

func (s *Server) onSetContactStatus(w http.ResponseWriter, r *http.Request) {
	update, errDecode := encoding.UnmarshalStrictJSON[StatusUpdate](http.MaxBytesReader(w, r.Body, encoding.MaxBodySize))
	if errDecode != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")

		return
	}

	status, errStatus := contact.ParseStatus(update.Status)
	if errStatus != nil {
		writeError(w, http.StatusUnprocessableEntity, errStatus.Error())

		return
	}

	messageID := chi.URLParam(r, "id")

	if err := s.contacts.SetStatus(r.Context(), messageID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact message not found")

			return
		}

		slog.Error("Failed to update contact message", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to update contact message")

		return
	}

	slog.Info("Contact message updated", slog.String("id", messageID), slog.String("status", string(status)))

	writeJSON(w, http.StatusOK, update)
}

func (s *Server) onStats(w http.ResponseWriter, r *http.Request) {
	total, err := s.contacts.Count(r.Context())
	if err != nil {
		slog.Error("Failed to count contact messages", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to get portfolio statistics")

		return
	}

	writeJSON(w, http.StatusOK, s.portfolio.Stats(total))
}

func (s *Server) onListContacts(w http.ResponseWriter, r *http.Request) {
	skip := max(queryInt(r, "skip", 0), 0)
	limit := clamp(queryInt(r, "limit", defaultListLimit), 1, maxListLimit)

	total, errCount := s.contacts.Count(r.Context())
	if errCount != nil {
		slog.Error("Failed to count contact messages", slog.String("error", errCount.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to get contact messages")

		return
	}

	messages, errList := s.contacts.List(r.Context(), skip, limit)
	if errList != nil {
		slog.Error("Failed to list contact messages", slog.String("error", errList.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to get contact messages")

		return
	}

	if messages == nil {
		messages = []contact.Message{}
	}

	writeJSON(w, http.StatusOK, ContactsResponse{Messages: messages, Total: total, Skip: skip, Limit: limit})
}

// clientIP returns the address set by the RealIP middleware, stripping any port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func queryInt(r *http.Request, key string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}

	return value
}

func clamp[T constraints.Ordered](value T, lower T, upper T) T {
	return min(max(value, lower), upper)
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := encoding.MarshalJSON(w, value); err != nil {
		slog.Error("Failed to write response", slog.String("error", err.Error()))
	}
}

// writeValidationError reports field problems by name. Spam is rejected with a generic detail.
func writeValidationError(w http.ResponseWriter, err error) {
	detail := "Invalid contact message data"

	var validationErr contact.ValidationError
	if !errors.Is(err, contact.ErrSpam) && errors.As(err, &validationErr) {
		detail = validationErr.Error()
	}

	writeError(w, http.StatusUnprocessableEntity, detail)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
