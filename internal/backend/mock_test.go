package backend_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/stretchr/testify/require"
)

var responses = []string{ //nolint:gochecknoglobals
	"Thank you for reaching out!",
	"Thanks for your message!",
	"I appreciate your interest!",
	"Thank you for contacting me!",
}

func validSubmission() contact.Submission {
	return contact.Submission{Name: "A", Email: "a@b.com", Subject: "Hi", Message: "Hello"}
}

func TestMockRequiresResponses(t *testing.T) {
	_, err := backend.NewMock(nil, backend.Resume{})
	require.Error(t, err)
}

func TestMockSubmitMembership(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock, err := backend.NewMock(responses, backend.Resume{}, backend.WithLatency(0), backend.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	seen := map[string]bool{}
	for range 100 {
		receipt, errSubmit := mock.Submit(t.Context(), validSubmission())
		require.NoError(t, errSubmit)
		require.True(t, receipt.Success)
		require.True(t, slices.Contains(responses, receipt.Message), receipt.Message)
		require.Equal(t, now, receipt.Timestamp)
		seen[receipt.Message] = true
	}

	require.Greater(t, len(seen), 1)
}

func TestMockSeedIsDeterministic(t *testing.T) {
	pick := func() []string {
		mock, err := backend.NewMock(responses, backend.Resume{}, backend.WithLatency(0), backend.WithSeed(42))
		require.NoError(t, err)

		var picked []string
		for range 10 {
			receipt, errSubmit := mock.Submit(t.Context(), validSubmission())
			require.NoError(t, errSubmit)
			picked = append(picked, receipt.Message)
		}

		return picked
	}

	require.Equal(t, pick(), pick())
}

func TestMockValidationIsImmediate(t *testing.T) {
	// An hour of latency would time the test out if any waiting happened.
	mock, err := backend.NewMock(responses, backend.Resume{}, backend.WithLatency(time.Hour))
	require.NoError(t, err)

	for _, sub := range []contact.Submission{
		{},
		{Name: "A", Email: "a@b.com", Subject: "Hi"},
		{Name: "", Email: "a@b.com", Subject: "Hi", Message: "Hello"},
	} {
		start := time.Now()
		_, errSubmit := mock.Submit(t.Context(), sub)
		require.ErrorIs(t, errSubmit, backend.ErrValidation)
		require.Less(t, time.Since(start), time.Second)
	}
}

func TestMockLatency(t *testing.T) {
	mock, err := backend.NewMock(responses, backend.Resume{}, backend.WithLatency(30*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	_, errSubmit := mock.Submit(t.Context(), validSubmission())
	require.NoError(t, errSubmit)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMockForcedFailure(t *testing.T) {
	reason := errors.New("boom")
	mock, err := backend.NewMock(responses, backend.Resume{}, backend.WithLatency(0), backend.WithResumeLatency(0), backend.WithFailure(reason))
	require.NoError(t, err)

	_, errSubmit := mock.Submit(t.Context(), validSubmission())
	require.ErrorIs(t, errSubmit, backend.ErrForced)
	require.ErrorIs(t, errSubmit, reason)

	_, errResume := mock.DownloadResume(t.Context())
	require.ErrorIs(t, errResume, backend.ErrForced)
}

func TestMockContextDone(t *testing.T) {
	mock, err := backend.NewMock(responses, backend.Resume{}, backend.WithLatency(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, errSubmit := mock.Submit(ctx, validSubmission())
	require.ErrorIs(t, errSubmit, backend.ErrTransport)
}

func TestMockDownloadResume(t *testing.T) {
	expected := backend.Resume{DownloadURL: "/assets/resume/resume.pdf", Filename: "resume.pdf"}
	mock, err := backend.NewMock(responses, expected, backend.WithResumeLatency(0),
		backend.WithStats(contact.Stats{TotalProjects: 3}))
	require.NoError(t, err)

	resume, errResume := mock.DownloadResume(t.Context())
	require.NoError(t, errResume)
	require.Equal(t, expected, resume)

	stats, errStats := mock.Stats(t.Context())
	require.NoError(t, errStats)
	require.Equal(t, 3, stats.TotalProjects)
}
