package playtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/cryptox"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/dmitrijs2005/factionwatch/internal/validation"
)

func (t *Tracker) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	return load[models.Account](ctx, t, AccountsKey)
}

// GetAccountByID returns nil if there is no such account.
func (t *Tracker) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	accounts, err := t.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if i := accountIndex(accounts, id); i >= 0 {
		return &accounts[i], nil
	}
	return nil, nil
}

// AccountNameExists compares names case-insensitively.
func (t *Tracker) AccountNameExists(ctx context.Context, name string) (bool, error) {
	accounts, err := t.GetAllAccounts(ctx)
	if err != nil {
		return false, err
	}
	return nameTaken(accounts, name, ""), nil
}

// SaveAccount stores account under a fresh id with creation timestamps and
// an offline status. Name uniqueness is the caller's concern.
func (t *Tracker) SaveAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	accounts, err := t.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return t.insertAccount(ctx, accounts, account)
}

// insertAccount appends account to accounts and persists them. The caller
// holds t.mu.
func (t *Tracker) insertAccount(ctx context.Context, accounts []models.Account, account models.Account) (*models.Account, error) {
	now := t.now()
	account.ID = common.NewTimeID(now)
	account.Status = models.StatusOffline
	account.LastSeen = now
	account.CreatedAt = now
	account.UpdatedAt = now

	accounts = append(accounts, account)
	if err := t.saveAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "account saved", "id", account.ID)
	return &account, nil
}

// RegisterAccount validates name, rejects a name that is already taken and
// stores a new account. A non-empty password is kept as an argon2id hash.
// The name check and the insert run under one lock.
func (t *Tracker) RegisterAccount(ctx context.Context, name string, password []byte, notes string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if err := validation.Var(name, "required,maxgraphemes=64"); err != nil {
		return nil, fmt.Errorf("invalid account name: %w", err)
	}

	account := models.Account{Name: name, Notes: notes}
	if len(password) > 0 {
		account.PasswordHash, account.Salt = cryptox.HashPassword(password)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	accounts, err := t.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if nameTaken(accounts, name, "") {
		return nil, fmt.Errorf("account %q: %w", name, common.ErrorAlreadyExists)
	}
	return t.insertAccount(ctx, accounts, account)
}

// CheckAccountPassword reports whether password matches the stored hash.
// Accounts without a password never match.
func (t *Tracker) CheckAccountPassword(ctx context.Context, id string, password []byte) (bool, error) {
	account, err := t.GetAccountByID(ctx, id)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, common.ErrorNotFound
	}
	return cryptox.CheckPassword(password, account.PasswordHash, account.Salt), nil
}

// UpdateAccount merges patch into an account. It returns false if the
// account does not exist. A rename to a name held by another account fails
// with common.ErrorAlreadyExists.
func (t *Tracker) UpdateAccount(ctx context.Context, id string, patch models.AccountPatch) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	accounts, err := t.GetAllAccounts(ctx)
	if err != nil {
		return false, err
	}
	i := accountIndex(accounts, id)
	if i < 0 {
		return false, nil
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := validation.Var(name, "required,maxgraphemes=64"); err != nil {
			return false, fmt.Errorf("invalid account name: %w", err)
		}
		if nameTaken(accounts, name, id) {
			return false, fmt.Errorf("account %q: %w", name, common.ErrorAlreadyExists)
		}
		accounts[i].Name = name
	}
	if patch.Notes != nil {
		accounts[i].Notes = *patch.Notes
	}
	accounts[i].UpdatedAt = t.now()

	if err := t.saveAccounts(ctx, accounts); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteAccount removes an account together with its status and sessions.
func (t *Tracker) DeleteAccount(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := t.loadAll(ctx)
	if err != nil {
		return false, err
	}
	i := accountIndex(c.accounts, id)
	if i < 0 {
		return false, nil
	}

	c.accounts = append(c.accounts[:i], c.accounts[i+1:]...)
	c.statuses = filter(c.statuses, func(s models.AccountStatus) bool { return s.AccountID != id })
	c.sessions = filter(c.sessions, func(s models.AccountSession) bool { return s.AccountID != id })

	if err := t.saveAll(ctx, c); err != nil {
		return false, err
	}

	t.logger.Info(ctx, "account deleted", "id", id)
	return true, nil
}

func (t *Tracker) saveAccounts(ctx context.Context, accounts []models.Account) error {
	b, err := encode(accounts)
	if err != nil {
		return err
	}
	if err := t.repo.Set(ctx, AccountsKey, b); err != nil {
		return fmt.Errorf("error saving accounts: %w", err)
	}
	return nil
}

func accountIndex(accounts []models.Account, id string) int {
	for i := range accounts {
		if accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func nameTaken(accounts []models.Account, name, exceptID string) bool {
	for _, a := range accounts {
		if a.ID != exceptID && strings.EqualFold(a.Name, name) {
			return true
		}
	}
	return false
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
