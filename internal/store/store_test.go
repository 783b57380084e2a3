package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/store"
	"github.com/stretchr/testify/require"
)

func newContacts(t *testing.T) *store.Contacts {
	t.Helper()

	database, err := store.Open(t.Context(), filepath.Join(t.TempDir(), "test.db"), true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return store.NewContacts(database)
}

func message(id string, ip string, ts time.Time) contact.Message {
	return contact.Message{
		ID:        id,
		Name:      "Name " + id,
		Email:     id + "@example.com",
		Subject:   "Subject",
		Message:   "Body",
		Timestamp: ts,
		IPAddress: ip,
		UserAgent: "test",
	}
}

func TestOpenMemory(t *testing.T) {
	database, err := store.Open(t.Context(), "", true)
	require.NoError(t, err)
	defer database.Close()

	contacts := store.NewContacts(database)
	require.NoError(t, contacts.Insert(t.Context(), message("a", "1.1.1.1", time.Now())))

	count, errCount := contacts.Count(t.Context())
	require.NoError(t, errCount)
	require.Equal(t, 1, count)
}

func TestMigrateDownUp(t *testing.T) {
	database, err := store.Open(t.Context(), filepath.Join(t.TempDir(), "migrate.db"), true)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, store.Migrate(database, store.MigrateDn))
	require.NoError(t, store.Migrate(database, store.MigrateUp))
	require.NoError(t, store.Migrate(database, store.MigrateUp))
}

func TestContactsInsertList(t *testing.T) {
	contacts := newContacts(t)
	now := time.Now().UTC().Truncate(time.Second)

	for idx, id := range []string{"a", "b", "c"} {
		require.NoError(t, contacts.Insert(t.Context(), message(id, "10.0.0.1", now.Add(time.Duration(idx)*time.Minute))))
	}

	total, errCount := contacts.Count(t.Context())
	require.NoError(t, errCount)
	require.Equal(t, 3, total)

	messages, errList := contacts.List(t.Context(), 0, 2)
	require.NoError(t, errList)
	require.Len(t, messages, 2)
	require.Equal(t, "c", messages[0].ID)
	require.Equal(t, "b", messages[1].ID)
	require.Equal(t, contact.StatusNew, messages[0].Status)
	require.Equal(t, now.Add(2*time.Minute), messages[0].Timestamp)

	rest, errRest := contacts.List(t.Context(), 2, 10)
	require.NoError(t, errRest)
	require.Len(t, rest, 1)
	require.Equal(t, "a", rest[0].ID)
}

func TestContactsCountSince(t *testing.T) {
	contacts := newContacts(t)
	now := time.Now()

	require.NoError(t, contacts.Insert(t.Context(), message("old", "10.0.0.1", now.Add(-2*time.Hour))))
	require.NoError(t, contacts.Insert(t.Context(), message("new1", "10.0.0.1", now.Add(-time.Minute))))
	require.NoError(t, contacts.Insert(t.Context(), message("new2", "10.0.0.1", now)))
	require.NoError(t, contacts.Insert(t.Context(), message("other", "10.0.0.2", now)))

	count, err := contacts.CountSince(t.Context(), "10.0.0.1", now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestContactsDeleteBefore(t *testing.T) {
	contacts := newContacts(t)
	now := time.Now()

	require.NoError(t, contacts.Insert(t.Context(), message("old", "10.0.0.1", now.Add(-48*time.Hour))))
	require.NoError(t, contacts.Insert(t.Context(), message("new", "10.0.0.1", now)))

	deleted, err := contacts.DeleteBefore(t.Context(), now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	count, errCount := contacts.Count(t.Context())
	require.NoError(t, errCount)
	require.Equal(t, 1, count)
}

func TestContactsSetStatus(t *testing.T) {
	contacts := newContacts(t)
	require.NoError(t, contacts.Insert(t.Context(), message("a", "10.0.0.1", time.Now())))

	require.NoError(t, contacts.SetStatus(t.Context(), "a", contact.StatusReplied))
	require.ErrorIs(t, contacts.SetStatus(t.Context(), "missing", contact.StatusRead), store.ErrNotFound)
	require.ErrorIs(t, contacts.SetStatus(t.Context(), "a", "bogus"), contact.ErrStatus)

	messages, err := contacts.List(t.Context(), 0, 10)
	require.NoError(t, err)
	require.Equal(t, contact.StatusReplied, messages[0].Status)
}
