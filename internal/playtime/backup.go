package playtime

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/dmitrijs2005/factionwatch/internal/validation"
)

// Export returns every persisted collection stamped with the current time.
// It holds the tracker lock so the three collections form one snapshot.
func (t *Tracker) Export(ctx context.Context) (models.Backup, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.loadAll(ctx)
	if err != nil {
		return models.Backup{}, err
	}
	return models.Backup{
		Accounts:  c.accounts,
		Statuses:  c.statuses,
		Sessions:  c.sessions,
		Timestamp: t.now(),
	}, nil
}

// Import replaces all three collections with the content of b. Nothing is
// written unless b passes validation: account names must be unique ignoring
// case and an account may have at most one open session.
func (t *Tracker) Import(ctx context.Context, b models.Backup) error {
	if err := validation.Struct(b); err != nil {
		return fmt.Errorf("invalid backup: %w", err)
	}
	if err := checkBackup(b); err != nil {
		return fmt.Errorf("invalid backup: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.saveAll(ctx, &collections{
		accounts: b.Accounts,
		statuses: b.Statuses,
		sessions: b.Sessions,
	}); err != nil {
		return err
	}

	t.logger.Info(ctx, "backup imported",
		"accounts", len(b.Accounts), "sessions", len(b.Sessions), "taken_at", b.Timestamp)
	return nil
}

// ClearAll deletes the three collections from the repository.
func (t *Tracker) ClearAll(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, key := range []string{AccountsKey, StatusesKey, SessionsKey} {
		if err := t.repo.Delete(ctx, key); err != nil {
			return fmt.Errorf("error deleting %s: %w", key, err)
		}
	}

	t.logger.Info(ctx, "playtime data cleared")
	return nil
}

func checkBackup(b models.Backup) error {
	for i, a := range b.Accounts {
		if nameTaken(b.Accounts[:i], a.Name, "") {
			return fmt.Errorf("%w: duplicate account name %q", common.ErrorValidation, a.Name)
		}
	}

	open := make(map[string]bool)
	for _, s := range b.Sessions {
		if !s.Open() {
			continue
		}
		if open[s.AccountID] {
			return fmt.Errorf("%w: account %s has more than one open session", common.ErrorValidation, s.AccountID)
		}
		open[s.AccountID] = true
	}
	return nil
}
