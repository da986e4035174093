// Package playtime tracks named accounts, their current status and their
// activity sessions, and answers windowed playtime queries.
//
// The tracker keeps no state of its own. Accounts, statuses and sessions
// live in three JSON documents of a kv.Repository and are re-read on every
// call. A document that cannot be decoded is logged and treated as empty.
// Errors returned by the repository itself are passed to the caller.
package playtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/kv"
	"github.com/dmitrijs2005/factionwatch/internal/logging"
	"github.com/dmitrijs2005/factionwatch/internal/models"
)

const (
	AccountsKey = "factionwatch_accounts"
	StatusesKey = "factionwatch_statuses"
	SessionsKey = "factionwatch_sessions"
)

type Tracker struct {
	repo   kv.Repository
	logger logging.Logger
	now    func() time.Time

	// mu serializes read-modify-write cycles within this process. Other
	// processes sharing the repository are not coordinated with.
	mu sync.Mutex
}

type Option func(*Tracker)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func NewTracker(repo kv.Repository, logger logging.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = logging.NewNop()
	}
	t := &Tracker{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// collections is one decoded copy of the three persisted documents.
type collections struct {
	accounts []models.Account
	statuses []models.AccountStatus
	sessions []models.AccountSession
}

func (t *Tracker) loadAll(ctx context.Context) (*collections, error) {
	accounts, err := load[models.Account](ctx, t, AccountsKey)
	if err != nil {
		return nil, err
	}
	statuses, err := load[models.AccountStatus](ctx, t, StatusesKey)
	if err != nil {
		return nil, err
	}
	sessions, err := load[models.AccountSession](ctx, t, SessionsKey)
	if err != nil {
		return nil, err
	}
	return &collections{accounts: accounts, statuses: statuses, sessions: sessions}, nil
}

// saveAll writes the three documents in one repository batch.
func (t *Tracker) saveAll(ctx context.Context, c *collections) error {
	values := make(map[string][]byte, 3)

	var err error
	if values[AccountsKey], err = encode(c.accounts); err != nil {
		return err
	}
	if values[StatusesKey], err = encode(c.statuses); err != nil {
		return err
	}
	if values[SessionsKey], err = encode(c.sessions); err != nil {
		return err
	}

	if err := t.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("error saving collections: %w", err)
	}
	return nil
}

// load decodes the document stored under key. A missing document is an
// empty collection, and so is a corrupted one.
func load[T any](ctx context.Context, t *Tracker, key string) ([]T, error) {
	raw, err := t.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", key, err)
	}
	return decode[T](ctx, t, key, raw), nil
}

func decode[T any](ctx context.Context, t *Tracker, key string, raw []byte) []T {
	items := make([]T, 0)
	if len(raw) == 0 {
		return items
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		t.logger.Warn(ctx, "corrupted collection, treating as empty", "key", key, "error", err)
		return make([]T, 0)
	}
	return items
}

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = make([]T, 0)
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("error encoding collection: %w", err)
	}
	return b, nil
}
