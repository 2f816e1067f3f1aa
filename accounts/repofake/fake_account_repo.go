package repofake

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-credential-service/accounts"
)

var _ accounts.Repo = (*FakeAccountRepo)(nil)

// FakeAccountRepo is an in-memory account store for tests. It enforces
// the same uniqueness invariants as the Postgres store.
type FakeAccountRepo struct {
	accounts    map[string]*accounts.Account
	usernameIds map[string]string // username to account id
	emailIds    map[string]string // email to account id
	lock        sync.RWMutex
}

func NewFakeAccountRepo() *FakeAccountRepo {
	return &FakeAccountRepo{
		accounts:    make(map[string]*accounts.Account),
		usernameIds: make(map[string]string),
		emailIds:    make(map[string]string),
	}
}

func (ar *FakeAccountRepo) Create(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	if _, ok := ar.emailIds[account.Email]; ok {
		return nil, &accounts.DuplicateError{Field: "email", Value: account.Email}
	}
	if _, ok := ar.usernameIds[account.Username]; ok {
		return nil, &accounts.DuplicateError{Field: "username", Value: account.Username}
	}

	stored := *account
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	ar.accounts[stored.ID] = &stored
	ar.usernameIds[stored.Username] = stored.ID
	ar.emailIds[stored.Email] = stored.ID
	return &stored, nil
}

func (ar *FakeAccountRepo) GetByUsername(ctx context.Context, username string) (*accounts.Account, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	id, ok := ar.usernameIds[username]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	return ar.accounts[id], nil
}

func (ar *FakeAccountRepo) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	id, ok := ar.emailIds[email]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	return ar.accounts[id], nil
}

func (ar *FakeAccountRepo) GetByID(ctx context.Context, id string) (*accounts.Account, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	account, ok := ar.accounts[id]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	return account, nil
}
