package playtime

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
)

func (t *Tracker) GetAllStatuses(ctx context.Context) ([]models.AccountStatus, error) {
	return load[models.AccountStatus](ctx, t, StatusesKey)
}

// GetAccountStatus returns nil if no status was recorded for the account.
func (t *Tracker) GetAccountStatus(ctx context.Context, accountID string) (*models.AccountStatus, error) {
	statuses, err := t.GetAllStatuses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range statuses {
		if statuses[i].AccountID == accountID {
			return &statuses[i], nil
		}
	}
	return nil, nil
}

// UpdateAccountStatus replaces the status row of an account, or inserts
// one, and copies the status onto the account itself. It returns false if
// the account does not exist.
func (t *Tracker) UpdateAccountStatus(ctx context.Context, accountID string, status models.Status, location string) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("status %q: %w", status, common.ErrorValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.loadAll(ctx)
	if err != nil {
		return false, err
	}
	if !applyStatus(c, accountID, status, location, t.now()) {
		return false, nil
	}
	if err := t.saveAll(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}

func applyStatus(c *collections, accountID string, status models.Status, location string, now time.Time) bool {
	i := accountIndex(c.accounts, accountID)
	if i < 0 {
		return false
	}

	row := models.AccountStatus{
		AccountID: accountID,
		Status:    status,
		Location:  location,
		LastSeen:  now,
	}

	replaced := false
	for j := range c.statuses {
		if c.statuses[j].AccountID == accountID {
			c.statuses[j] = row
			replaced = true
			break
		}
	}
	if !replaced {
		c.statuses = append(c.statuses, row)
	}

	c.accounts[i].Status = status
	c.accounts[i].LastSeen = now
	return true
}
