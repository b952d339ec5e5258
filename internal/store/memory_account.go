// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-ctf-backend/models"
)

// memoryAccountRepository keeps accounts in a map guarded by a RWMutex.
// Identifiers start at 1 and are never reused.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]models.Account
	nextID   int64
}

// NewMemoryAccountRepository returns an empty in-memory [AccountRepository].
func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{
		accounts: make(map[int64]models.Account),
		nextID:   1,
	}
}

func (r *memoryAccountRepository) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.takenLocked(account.Username, account.Email, 0) {
		return models.Account{}, ErrAccountAlreadyExists
	}

	account.ID = r.nextID
	account.UpdatedAt = nil
	r.nextID++
	r.accounts[account.ID] = account

	return account, nil
}

func (r *memoryAccountRepository) ListAccounts(_ context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		accounts = append(accounts, cloneAccount(a))
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})

	return accounts, nil
}

func (r *memoryAccountRepository) FindAccountByID(_ context.Context, id int64) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *memoryAccountRepository) FindAccountByUsername(_ context.Context, username string) (models.Account, error) {
	return r.findBy(func(a models.Account) bool { return a.Username == username })
}

func (r *memoryAccountRepository) FindAccountByEmail(_ context.Context, email string) (models.Account, error) {
	return r.findBy(func(a models.Account) bool { return a.Email == email })
}

func (r *memoryAccountRepository) findBy(match func(models.Account) bool) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if match(a) {
			return cloneAccount(a), nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

func (r *memoryAccountRepository) UpdateAccount(_ context.Context, id int64, patch models.AccountPatch, updatedAt time.Time) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	username, email := a.Username, a.Email
	if patch.Username != nil {
		username = *patch.Username
	}
	if patch.Email != nil {
		email = *patch.Email
	}
	if r.takenLocked(username, email, id) {
		return models.Account{}, ErrAccountAlreadyExists
	}

	a.Username, a.Email = username, email
	if patch.PasswordHash != nil {
		a.PasswordHash = *patch.PasswordHash
	}
	if patch.Role != nil {
		a.Role = *patch.Role
	}
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}
	a.UpdatedAt = &updatedAt
	r.accounts[id] = a

	return cloneAccount(a), nil
}

func (r *memoryAccountRepository) DeleteAccount(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *memoryAccountRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.findBy(func(a models.Account) bool { return a.Username == username })
	return err == nil, nil
}

func (r *memoryAccountRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.findBy(func(a models.Account) bool { return a.Email == email })
	return err == nil, nil
}

// takenLocked reports whether another account than exceptID uses username or email.
func (r *memoryAccountRepository) takenLocked(username, email string, exceptID int64) bool {
	for id, a := range r.accounts {
		if id == exceptID {
			continue
		}
		if a.Username == username || a.Email == email {
			return true
		}
	}
	return false
}

func cloneAccount(a models.Account) models.Account {
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		a.UpdatedAt = &t
	}
	return a
}
