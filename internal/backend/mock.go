package backend

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/leighmacdonald/folio/internal/contact"
)

const (
	DefaultSubmitLatency = 1500 * time.Millisecond
	DefaultResumeLatency = 1000 * time.Millisecond
)

var errNoResponses = errors.New("mock requires at least one response")

// Mock simulates a server with a fixed latency and a pool of canned acknowledgements.
type Mock struct {
	responses     []string
	resume        Resume
	stats         contact.Stats
	latency       time.Duration
	resumeLatency time.Duration
	failure       error
	now           func() time.Time
	mu            sync.Mutex
	rng           *rand.Rand
}

type MockOption func(m *Mock)

func WithLatency(latency time.Duration) MockOption {
	return func(m *Mock) { m.latency = latency }
}

func WithResumeLatency(latency time.Duration) MockOption {
	return func(m *Mock) { m.resumeLatency = latency }
}

// WithSeed makes the response selection deterministic.
func WithSeed(seed uint64) MockOption {
	return func(m *Mock) { m.rng = rand.New(rand.NewPCG(seed, seed)) } //nolint:gosec
}

// WithFailure makes every call settle with the given error instead of succeeding.
func WithFailure(err error) MockOption {
	return func(m *Mock) { m.failure = err }
}

func WithStats(stats contact.Stats) MockOption {
	return func(m *Mock) { m.stats = stats }
}

func WithClock(now func() time.Time) MockOption {
	return func(m *Mock) { m.now = now }
}

func NewMock(responses []string, resume Resume, opts ...MockOption) (*Mock, error) {
	if len(responses) == 0 {
		return nil, errNoResponses
	}

	mock := &Mock{
		responses:     responses,
		resume:        resume,
		latency:       DefaultSubmitLatency,
		resumeLatency: DefaultResumeLatency,
		now:           time.Now,
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec
	}

	for _, opt := range opts {
		opt(mock)
	}

	return mock, nil
}

func (m *Mock) Submit(ctx context.Context, submission contact.Submission) (contact.Receipt, error) {
	if err := submission.Validate(); err != nil {
		return contact.Receipt{}, err
	}

	if err := m.wait(ctx, m.latency); err != nil {
		return contact.Receipt{}, err
	}

	return contact.Receipt{
		Success:   true,
		Message:   m.pick(),
		Timestamp: m.now(),
	}, nil
}

func (m *Mock) DownloadResume(ctx context.Context) (Resume, error) {
	if err := m.wait(ctx, m.resumeLatency); err != nil {
		return Resume{}, err
	}

	return m.resume, nil
}

func (m *Mock) Stats(ctx context.Context) (contact.Stats, error) {
	if err := m.wait(ctx, m.resumeLatency); err != nil {
		return contact.Stats{}, err
	}

	return m.stats, nil
}

// wait blocks for the simulated latency, then returns the forced failure if any.
func (m *Mock) wait(ctx context.Context, latency time.Duration) error {
	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return errors.Join(ctx.Err(), ErrTransport)
		}
	}

	if m.failure != nil {
		return errors.Join(m.failure, ErrForced)
	}

	return nil
}

func (m *Mock) pick() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.responses[m.rng.IntN(len(m.responses))]
}
