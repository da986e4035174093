package playtime

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/kv"
	"github.com/dmitrijs2005/factionwatch/internal/logging"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	src, _, clock := newTestTracker(t)

	a, err := src.RegisterAccount(ctx, "a", []byte("pw"), "main")
	require.NoError(t, err)
	b := mustRegister(t, src, "b")
	_, err = src.StartSession(ctx, a.ID, models.StatusOnline)
	require.NoError(t, err)
	clock.Advance(10 * time.Minute)
	_, err = src.EndSession(ctx, a.ID)
	require.NoError(t, err)
	_, err = src.StartSession(ctx, b.ID, models.StatusAFK)
	require.NoError(t, err)

	exported, err := src.Export(ctx)
	require.NoError(t, err)
	assert.True(t, exported.Timestamp.Equal(clock.now))
	require.Len(t, exported.Sessions, 2)

	repo, err := kv.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	dst := NewTracker(repo, logging.NewNop(), WithClock(clock.Now))
	require.NoError(t, dst.Import(ctx, exported))

	got, err := dst.Export(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(exported.Accounts, got.Accounts); diff != "" {
		t.Errorf("accounts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(exported.Statuses, got.Statuses); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(exported.Sessions, got.Sessions); diff != "" {
		t.Errorf("sessions mismatch (-want +got):\n%s", diff)
	}

	ok, err := dst.CheckAccountPassword(ctx, a.ID, []byte("pw"))
	require.NoError(t, err)
	assert.True(t, ok, "password hash survives the round trip")
}

func TestImport_RejectsInvalidBackup(t *testing.T) {
	tr, repo, _ := newTestTracker(t)
	ctx := context.Background()
	mustRegister(t, tr, "existing")

	err := tr.Import(ctx, models.Backup{
		Accounts: []models.Account{{ID: "x", Name: ""}},
	})
	require.ErrorIs(t, err, common.ErrorValidation)

	err = tr.Import(ctx, models.Backup{
		Statuses: []models.AccountStatus{{AccountID: "x", Status: "sleeping"}},
	})
	require.ErrorIs(t, err, common.ErrorValidation)

	accounts, err := tr.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "existing", accounts[0].Name)

	raw, err := repo.Get(ctx, SessionsKey)
	require.NoError(t, err)
	assert.Nil(t, raw, "nothing was written")
}

func TestImport_ReplacesExistingData(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()
	mustRegister(t, tr, "old")

	require.NoError(t, tr.Import(ctx, models.Backup{
		Accounts: []models.Account{{ID: "1", Name: "new", Status: models.StatusOffline}},
	}))

	accounts, err := tr.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "new", accounts[0].Name)

	sessions, err := tr.GetAllSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestImport_RejectsNamesDifferingOnlyByCase(t *testing.T) {
	tr, repo, _ := newTestTracker(t)
	ctx := context.Background()

	err := tr.Import(ctx, models.Backup{
		Accounts: []models.Account{
			{ID: "a", Name: "Shadow"},
			{ID: "b", Name: "sHADOW"},
		},
	})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.ErrorContains(t, err, "duplicate account name")

	raw, err := repo.Get(ctx, AccountsKey)
	require.NoError(t, err)
	assert.Nil(t, raw, "nothing was written")
}

func TestImport_RejectsSecondOpenSessionOfAccount(t *testing.T) {
	tr, repo, clock := newTestTracker(t)
	ctx := context.Background()
	now := clock.now

	err := tr.Import(ctx, models.Backup{
		Accounts: []models.Account{{ID: "a", Name: "a"}},
		Sessions: []models.AccountSession{
			{ID: "s1", AccountID: "a", StartTime: now.Add(-2 * time.Hour)},
			{ID: "s2", AccountID: "a", StartTime: now.Add(-time.Hour)},
		},
	})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.ErrorContains(t, err, "more than one open session")

	raw, err := repo.Get(ctx, SessionsKey)
	require.NoError(t, err)
	assert.Nil(t, raw, "nothing was written")
}

func TestImport_AcceptsOneOpenSessionPerAccount(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	ctx := context.Background()
	now := clock.now

	require.NoError(t, tr.Import(ctx, models.Backup{
		Accounts: []models.Account{{ID: "a", Name: "a"}, {ID: "b", Name: "b"}},
		Sessions: []models.AccountSession{
			closedSession("s1", "a", now.Add(-3*time.Hour), time.Hour),
			{ID: "s2", AccountID: "a", StartTime: now.Add(-time.Hour)},
			{ID: "s3", AccountID: "b", StartTime: now.Add(-time.Hour)},
		},
	}))

	s, err := tr.GetActiveSession(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "s2", s.ID)
}

// hookRepo runs onAccountsRead once, on the first read of the accounts key.
type hookRepo struct {
	*kv.MemoryRepository
	fired          atomic.Bool
	onAccountsRead func()
}

func (r *hookRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if key == AccountsKey && r.fired.CompareAndSwap(false, true) {
		r.onAccountsRead()
	}
	return r.MemoryRepository.Get(ctx, key)
}

func TestExport_IsOneSnapshotWhileSessionStarts(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC)}
	mem := kv.NewMemoryRepository()
	tr := NewTracker(mem, logging.NewNop(), WithClock(clock.Now))
	a := mustRegister(t, tr, "a")

	repo := &hookRepo{MemoryRepository: mem}
	tr.repo = repo

	var wg sync.WaitGroup
	repo.onAccountsRead = func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tr.StartSession(ctx, a.ID, models.StatusOnline)
		}()
		time.Sleep(50 * time.Millisecond)
	}

	b, err := tr.Export(ctx)
	require.NoError(t, err)
	wg.Wait()

	require.Len(t, b.Accounts, 1)
	assert.Equal(t, models.StatusOffline, b.Accounts[0].Status)
	assert.Empty(t, b.Sessions, "session started after the snapshot")

	s, err := tr.GetActiveSession(ctx, a.ID)
	require.NoError(t, err)
	assert.NotNil(t, s)
}
