package playtime

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
)

// GetPlayTimeStats aggregates the closed sessions of an account that
// started within the last days days, bounds included. Each session is
// counted in full on the UTC day it started, even if it ran past midnight.
func (t *Tracker) GetPlayTimeStats(ctx context.Context, accountID string, days int) (models.PlayTimeStats, error) {
	sessions, err := t.GetAccountSessions(ctx, accountID)
	if err != nil {
		return models.PlayTimeStats{}, err
	}

	now := t.now()
	since := now.AddDate(0, 0, -days)

	st := models.PlayTimeStats{TimeByDay: make(map[string]int64)}
	for _, s := range sessions {
		if s.Duration == nil {
			continue
		}
		if s.StartTime.Before(since) || s.StartTime.After(now) {
			continue
		}
		st.TotalTime += *s.Duration
		st.SessionsCount++
		st.TimeByDay[s.StartTime.UTC().Format(common.DayLayout)] += *s.Duration
	}
	if st.SessionsCount > 0 {
		st.AverageSession = st.TotalTime / int64(st.SessionsCount)
	}
	return st, nil
}

// GetStorageStats counts the persisted records. StorageSize is the number
// of bytes of the three stored documents.
func (t *Tracker) GetStorageStats(ctx context.Context) (models.StorageStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	raw := make(map[string][]byte, 3)
	for _, key := range []string{AccountsKey, StatusesKey, SessionsKey} {
		b, err := t.repo.Get(ctx, key)
		if err != nil {
			return models.StorageStats{}, fmt.Errorf("error reading %s: %w", key, err)
		}
		raw[key] = b
	}

	accounts := decode[models.Account](ctx, t, AccountsKey, raw[AccountsKey])
	sessions := decode[models.AccountSession](ctx, t, SessionsKey, raw[SessionsKey])

	st := models.StorageStats{
		TotalAccounts: len(accounts),
		TotalSessions: len(sessions),
		StorageSize:   len(raw[AccountsKey]) + len(raw[StatusesKey]) + len(raw[SessionsKey]),
	}
	for _, a := range accounts {
		switch a.Status {
		case models.StatusOnline:
			st.OnlineAccounts++
			st.ActiveAccounts++
		case models.StatusAFK:
			st.ActiveAccounts++
		}
	}
	for _, s := range sessions {
		if s.Open() {
			st.ActiveSessions++
		}
	}
	return st, nil
}
