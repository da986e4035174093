// Package store is the in-memory source of truth for factions, members,
// users and the activity log.
//
// Every successful mutation is applied in full, faction aggregates
// (TotalMembers, OnlineMembers) are brought up to date, and only then are
// subscribers notified, once per mutation. Subscribers receive no payload
// and are expected to re-read the snapshots they need.
//
// Reads return copies: changing a returned value never changes the store.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/logging"
	"github.com/dmitrijs2005/factionwatch/internal/models"
)

// Changed is the signal delivered to listeners after a committed mutation.
type Changed struct{}

type Listener func(Changed)

type subscription struct {
	id uint64
	fn Listener
}

// faction is the stored form of a faction. Members are kept in the flat
// member collection; memberIDs preserves the roster order.
type faction struct {
	data      models.Faction
	memberIDs []int
}

type Store struct {
	mu       sync.RWMutex
	factions []*faction
	members  []*models.Member
	users    []*models.User
	logs     []models.ActivityLog

	subs   []subscription
	nextID uint64

	now    func() time.Time
	logger logging.Logger
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers l and returns a function removing it. Calling the
// returned function more than once is a no-op.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: l})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// mutate runs fn under the write lock. When fn reports success every
// listener is called after the lock is released, so listeners may read
// from the store.
func (s *Store) mutate(fn func() bool) bool {
	s.mu.Lock()
	ok := fn()
	var subs []subscription
	if ok {
		subs = make([]subscription, len(s.subs))
		copy(subs, s.subs)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(Changed{})
	}
	return ok
}

// Init replaces the whole state with deep copies of factions and users.
// Members embedded in the factions are moved into the member collection
// and tagged with their faction id. The activity log is reset.
func (s *Store) Init(factions []models.Faction, users []models.User) {
	s.mutate(func() bool {
		s.factions = make([]*faction, 0, len(factions))
		s.members = nil
		s.users = make([]*models.User, 0, len(users))
		s.logs = nil

		for _, f := range factions {
			entry := &faction{data: f}
			entry.data.Members = nil
			for _, m := range f.Members {
				member := cloneMember(m)
				member.FactionID = f.ID
				s.members = append(s.members, &member)
				entry.memberIDs = append(entry.memberIDs, member.ID)
			}
			s.factions = append(s.factions, entry)
			s.recountLocked(entry)
		}

		for _, u := range users {
			user := cloneUser(u)
			s.users = append(s.users, &user)
		}
		return true
	})

	s.logger.Info(context.Background(), "store initialized",
		"factions", len(factions), "users", len(users))
}

// recountLocked recomputes both cached aggregates of f from its members.
func (s *Store) recountLocked(f *faction) {
	f.data.TotalMembers = len(f.memberIDs)
	s.recountOnlineLocked(f)
}

// recountOnlineLocked counts online members from scratch rather than
// adjusting the cached value, so a missed or repeated update cannot leave
// it off.
func (s *Store) recountOnlineLocked(f *faction) {
	online := 0
	for _, m := range s.members {
		if m.FactionID == f.data.ID && m.Status == models.StatusOnline {
			online++
		}
	}
	f.data.OnlineMembers = online
}

func (s *Store) factionLocked(id int) *faction {
	for _, f := range s.factions {
		if f.data.ID == id {
			return f
		}
	}
	return nil
}

func (s *Store) memberIndexLocked(id int) int {
	for i, m := range s.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) userLocked(id int) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) lastSeenLabel(status models.Status) string {
	if status == models.StatusOnline {
		return common.NowLabel
	}
	return s.now().Format(common.LastSeenLayout)
}
