package playtime

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedSession(id, accountID string, start time.Time, d time.Duration) models.AccountSession {
	end := start.Add(d)
	ms := d.Milliseconds()
	return models.AccountSession{
		ID:        id,
		AccountID: accountID,
		StartTime: start,
		EndTime:   &end,
		Duration:  &ms,
		Status:    models.StatusOnline,
	}
}

func TestGetPlayTimeStats_WindowBoundary(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	ctx := context.Background()
	now := clock.now
	day := 24 * time.Hour
	const days = 7

	require.NoError(t, tr.Import(ctx, models.Backup{
		Accounts: []models.Account{{ID: "a", Name: "a"}},
		Sessions: []models.AccountSession{
			closedSession("exact", "a", now.Add(-days*day), time.Second),
			closedSession("inside", "a", now.Add(-(days-1)*day), 2*time.Second),
			closedSession("outside", "a", now.Add(-(days+1)*day), 4*time.Second),
			closedSession("other", "b", now.Add(-time.Hour), 8*time.Second),
			{ID: "open", AccountID: "a", StartTime: now.Add(-time.Hour)},
		},
	}))

	st, err := tr.GetPlayTimeStats(ctx, "a", days)
	require.NoError(t, err)

	assert.Equal(t, models.PlayTimeStats{
		TotalTime:      3000,
		AverageSession: 1500,
		SessionsCount:  2,
		TimeByDay: map[string]int64{
			"2025-10-12": 1000,
			"2025-10-13": 2000,
		},
	}, st)
}

func TestGetPlayTimeStats_SessionCountedOnStartDay(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	ctx := context.Background()
	start := time.Date(2025, 10, 17, 23, 30, 0, 0, time.UTC)

	require.NoError(t, tr.Import(ctx, models.Backup{
		Sessions: []models.AccountSession{
			closedSession("s1", "a", start, time.Hour),
			closedSession("s2", "a", start.Add(-2*time.Hour), 30*time.Minute),
		},
	}))

	st, err := tr.GetPlayTimeStats(ctx, "a", 7)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"2025-10-17": int64(90 * time.Minute / time.Millisecond)}, st.TimeByDay)
	assert.Equal(t, int64(45*time.Minute/time.Millisecond), st.AverageSession)
	assert.True(t, clock.now.After(start))
}

func TestGetPlayTimeStats_VeryLargeWindow(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.Import(ctx, models.Backup{
		Accounts: []models.Account{{ID: "a", Name: "a"}},
		Sessions: []models.AccountSession{
			closedSession("s1", "a", clock.now.AddDate(-1, 0, 0), time.Hour),
		},
	}))

	for _, days := range []int{366, 200_000, 1_000_000} {
		st, err := tr.GetPlayTimeStats(ctx, "a", days)
		require.NoError(t, err)
		assert.Equal(t, 1, st.SessionsCount, "days=%d", days)
		assert.Equal(t, int64(time.Hour/time.Millisecond), st.TotalTime, "days=%d", days)
	}
}

func TestGetPlayTimeStats_NoSessions(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	st, err := tr.GetPlayTimeStats(context.Background(), "a", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.TotalTime)
	assert.Equal(t, int64(0), st.AverageSession)
	assert.Equal(t, 0, st.SessionsCount)
	assert.Empty(t, st.TimeByDay)
	assert.NotNil(t, st.TimeByDay)
}

func TestGetPlayTimeStats_FromTrackedSessions(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	ctx := context.Background()
	a := mustRegister(t, tr, "a")

	for _, d := range []time.Duration{20 * time.Minute, 40 * time.Minute} {
		_, err := tr.StartSession(ctx, a.ID, "")
		require.NoError(t, err)
		clock.Advance(d)
		_, err = tr.EndSession(ctx, a.ID)
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}
	_, err := tr.StartSession(ctx, a.ID, "")
	require.NoError(t, err)

	st, err := tr.GetPlayTimeStats(ctx, a.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, st.SessionsCount, "open session is not counted")
	assert.Equal(t, int64(time.Hour/time.Millisecond), st.TotalTime)
	assert.Equal(t, "1ч 0м", FormatDuration(st.TotalTime))
	assert.Equal(t, "30м", FormatDuration(st.AverageSession))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0м"},
		{59_999, "0м"},
		{60_000, "1м"},
		{(2*60 + 15) * 60_000, "2ч 15м"},
		{25 * 3_600_000, "25ч 0м"},
		{-5, "0м"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.ms), "ms=%d", tt.ms)
	}
}
