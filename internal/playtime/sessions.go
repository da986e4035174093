package playtime

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
)

// StartSession opens a new session for an account. An open session of the
// same account is closed first, so at most one session per account is ever
// open. An empty status means online. It returns nil if the account does
// not exist.
func (t *Tracker) StartSession(ctx context.Context, accountID string, status models.Status) (*models.AccountSession, error) {
	if status == "" {
		status = models.StatusOnline
	}
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, common.ErrorValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	if accountIndex(c.accounts, accountID) < 0 {
		return nil, nil
	}

	now := t.now()
	if closeOpenSessions(c, accountID, now) {
		applyStatus(c, accountID, models.StatusOffline, "", now)
	}

	session := models.AccountSession{
		ID:        common.NewTimeID(now),
		AccountID: accountID,
		StartTime: now,
		Status:    status,
	}
	c.sessions = append(c.sessions, session)
	applyStatus(c, accountID, status, "", now)

	if err := t.saveAll(ctx, c); err != nil {
		return nil, err
	}

	t.logger.Debug(ctx, "session started", "account", accountID, "session", session.ID)
	return &session, nil
}

// EndSession closes the open session of an account and marks the account
// offline. It returns false if there is no open session.
func (t *Tracker) EndSession(ctx context.Context, accountID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.loadAll(ctx)
	if err != nil {
		return false, err
	}

	now := t.now()
	if !closeOpenSessions(c, accountID, now) {
		return false, nil
	}
	applyStatus(c, accountID, models.StatusOffline, "", now)

	if err := t.saveAll(ctx, c); err != nil {
		return false, err
	}

	t.logger.Debug(ctx, "session ended", "account", accountID)
	return true, nil
}

// closeOpenSessions sets the end time and duration of every open session
// of the account. Normally there is at most one.
func closeOpenSessions(c *collections, accountID string, now time.Time) bool {
	closed := false
	for i := range c.sessions {
		s := &c.sessions[i]
		if s.AccountID != accountID || !s.Open() {
			continue
		}
		end := now
		duration := max(end.Sub(s.StartTime).Milliseconds(), 0)
		s.EndTime = &end
		s.Duration = &duration
		closed = true
	}
	return closed
}

func (t *Tracker) GetAllSessions(ctx context.Context) ([]models.AccountSession, error) {
	return load[models.AccountSession](ctx, t, SessionsKey)
}

func (t *Tracker) GetAccountSessions(ctx context.Context, accountID string) ([]models.AccountSession, error) {
	sessions, err := t.GetAllSessions(ctx)
	if err != nil {
		return nil, err
	}
	return filter(sessions, func(s models.AccountSession) bool { return s.AccountID == accountID }), nil
}

// GetActiveSession returns the open session of an account, or nil.
func (t *Tracker) GetActiveSession(ctx context.Context, accountID string) (*models.AccountSession, error) {
	sessions, err := t.GetAccountSessions(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].Open() {
			return &sessions[i], nil
		}
	}
	return nil, nil
}
