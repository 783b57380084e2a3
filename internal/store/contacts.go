package store

import (
	"context"
	"errors"
	"time"

	"github.com/leighmacdonald/folio/internal/contact"
)

var (
	ErrQuery    = errors.New("failed to execute query")
	ErrNotFound = errors.New("no matching record")
)

// Contacts persists contact form messages received by the server.
type Contacts struct {
	queries *Queries
}

func NewContacts(db DBTX) *Contacts {
	return &Contacts{queries: New(db)}
}

func (c *Contacts) Insert(ctx context.Context, msg contact.Message) error {
	status := msg.Status
	if status == "" {
		status = contact.StatusNew
	}

	if err := c.queries.InsertContactMessage(ctx, InsertContactMessageParams{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    string(status),
		IpAddress: msg.IPAddress,
		UserAgent: msg.UserAgent,
		Country:   msg.Country,
		CreatedOn: msg.Timestamp.Unix(),
	}); err != nil {
		return errors.Join(err, ErrQuery)
	}

	return nil
}

// CountSince returns how many messages the address has sent since the given time.
func (c *Contacts) CountSince(ctx context.Context, ipAddress string, since time.Time) (int, error) {
	count, err := c.queries.CountContactMessagesSince(ctx, CountContactMessagesSinceParams{
		IpAddress: ipAddress,
		CreatedOn: since.Unix(),
	})
	if err != nil {
		return 0, errors.Join(err, ErrQuery)
	}

	return int(count), nil
}

func (c *Contacts) Count(ctx context.Context) (int, error) {
	count, err := c.queries.CountContactMessages(ctx)
	if err != nil {
		return 0, errors.Join(err, ErrQuery)
	}

	return int(count), nil
}

// List returns messages newest first.
func (c *Contacts) List(ctx context.Context, skip int, limit int) ([]contact.Message, error) {
	rows, err := c.queries.ListContactMessages(ctx, ListContactMessagesParams{
		Limit:  int64(limit),
		Offset: int64(skip),
	})
	if err != nil {
		return nil, errors.Join(err, ErrQuery)
	}

	messages := make([]contact.Message, len(rows))
	for idx, row := range rows {
		messages[idx] = contact.Message{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Subject:   row.Subject,
			Message:   row.Message,
			Timestamp: time.Unix(row.CreatedOn, 0).UTC(),
			Status:    contact.Status(row.Status),
			IPAddress: row.IpAddress,
			UserAgent: row.UserAgent,
			Country:   row.Country,
		}
	}

	return messages, nil
}

// DeleteBefore removes every message older than cutoff and returns the amount deleted.
func (c *Contacts) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	deleted, err := c.queries.DeleteContactMessagesBefore(ctx, cutoff.Unix())
	if err != nil {
		return 0, errors.Join(err, ErrQuery)
	}

	return deleted, nil
}

func (c *Contacts) SetStatus(ctx context.Context, messageID string, status contact.Status) error {
	if _, err := contact.ParseStatus(string(status)); err != nil {
		return err
	}

	updated, err := c.queries.UpdateContactMessageStatus(ctx, UpdateContactMessageStatusParams{
		Status: string(status),
		ID:     messageID,
	})
	if err != nil {
		return errors.Join(err, ErrQuery)
	}

	if updated == 0 {
		return ErrNotFound
	}

	return nil
}
