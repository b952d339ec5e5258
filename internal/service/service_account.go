// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/crypto"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/store"
	"github.com/MKhiriev/go-ctf-backend/models"
)

// deletedMessageFormat is the confirmation returned by DeleteAccountByID.
const deletedMessageFormat = "Account with id '%d' is successfully deleted!"

// accountService is the concrete implementation of AccountService.
// Plaintext passwords never reach the repository: they are hashed on create
// and update and compared against the stored hash on authentication.
type accountService struct {
	// accountRepository persists accounts and enforces uniqueness.
	accountRepository store.AccountRepository

	// passwordHasher turns plaintext passwords into bcrypt hashes.
	passwordHasher crypto.PasswordHasher

	// now supplies created_at and updated_at timestamps.
	now func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over the given repository
// and hasher. The returned service holds no mutable state.
func NewAccountService(accountRepository store.AccountRepository, passwordHasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

// CreateAccount registers a new account with role USER.
//
// Returns the stored account or:
//   - ErrValidationFailure when the password cannot be hashed (empty or
//     longer than 72 bytes);
//   - a wrapped store.ErrAccountAlreadyExists when username or email is taken.
func (s *accountService) CreateAccount(ctx context.Context, create models.AccountCreate) (models.Account, error) {
	return s.createAccount(ctx, create, models.RoleUser)
}

func (s *accountService) createAccount(ctx context.Context, create models.AccountCreate, role models.Role) (models.Account, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hashPassword(create.Password)
	if err != nil {
		log.Err(err).Str("username", create.Username).Msg("password hashing failed")
		return models.Account{}, err
	}

	account := models.Account{
		Username:     create.Username,
		Email:        create.Email,
		PasswordHash: hash,
		IsActive:     true,
		Role:         role,
		CreatedAt:    s.now(),
	}

	created, err := s.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("username", create.Username).Str("email", create.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("role", string(created.Role)).Msg("account created")
	return created, nil
}

func (s *accountService) ReadAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts failed: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ReadAccountByID(ctx context.Context, id int64) (models.Account, error) {
	account, err := s.accountRepository.FindAccountByID(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}
	return account, nil
}

func (s *accountService) ReadAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	account, err := s.accountRepository.FindAccountByUsername(ctx, username)
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}
	return account, nil
}

func (s *accountService) ReadAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	account, err := s.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}
	return account, nil
}

// Authenticate looks the account up by email and verifies the password.
//
// Returns the account or:
//   - a wrapped store.ErrAccountNotFound if no account has this email;
//   - ErrCredentialMismatch if the password does not match.
func (s *accountService) Authenticate(ctx context.Context, login models.AccountLogin) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindAccountByEmail(ctx, login.Email)
	if err != nil {
		log.Debug().Err(err).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !s.passwordHasher.Verify(login.Password, account.PasswordHash) {
		log.Debug().Int64("id", account.ID).Msg("wrong password")
		return models.Account{}, ErrCredentialMismatch
	}

	return account, nil
}

// UpdateAccountByID translates update into a store patch. Absent fields are
// left untouched, a new password is hashed before it is stored.
func (s *accountService) UpdateAccountByID(ctx context.Context, id int64, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	patch, err := s.buildPatch(update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("invalid account update")
		return models.Account{}, err
	}

	updated, err := s.accountRepository.UpdateAccount(ctx, id, patch, s.now())
	if err != nil {
		log.Err(err).Int64("id", id).Msg("account update ended with error")
		return models.Account{}, fmt.Errorf("account update ended with error: %w", err)
	}

	return updated, nil
}

func (s *accountService) buildPatch(update models.AccountUpdate) (models.AccountPatch, error) {
	var patch models.AccountPatch

	if update.Username.IsCleared() || update.Email.IsCleared() || update.Password.IsCleared() ||
		update.Role.IsCleared() || update.IsActive.IsCleared() {
		return models.AccountPatch{}, fmt.Errorf("%w: fields cannot be null", ErrValidationFailure)
	}

	if update.Username.HasValue() {
		patch.Username = &update.Username.Value
	}
	if update.Email.HasValue() {
		patch.Email = &update.Email.Value
	}
	if update.Password.HasValue() {
		hash, err := s.hashPassword(update.Password.Value)
		if err != nil {
			return models.AccountPatch{}, err
		}
		patch.PasswordHash = &hash
	}
	if update.Role.HasValue() {
		if !update.Role.Value.IsValid() {
			return models.AccountPatch{}, fmt.Errorf("%w: role must be one of %s, %s", ErrValidationFailure, models.RoleAdmin, models.RoleUser)
		}
		patch.Role = &update.Role.Value
	}
	if update.IsActive.HasValue() {
		patch.IsActive = &update.IsActive.Value
	}

	return patch, nil
}

func (s *accountService) DeleteAccountByID(ctx context.Context, id int64) (string, error) {
	if err := s.accountRepository.DeleteAccount(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("account deletion ended with error")
		return "", fmt.Errorf("account deletion ended with error: %w", err)
	}
	return fmt.Sprintf(deletedMessageFormat, id), nil
}

func (s *accountService) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.accountRepository.ExistsByUsername(ctx, username)
}

func (s *accountService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return s.accountRepository.ExistsByEmail(ctx, email)
}

// EnsureAdmin makes sure an ADMIN account exists for email. An existing
// account is promoted and reactivated if needed; its password is kept.
func (s *accountService) EnsureAdmin(ctx context.Context, username, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	existing, err := s.accountRepository.FindAccountByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return s.createAccount(ctx, models.AccountCreate{Username: username, Email: email, Password: password}, models.RoleAdmin)
	case err != nil:
		return models.Account{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	if existing.IsAdmin() && existing.IsActive {
		log.Debug().Int64("id", existing.ID).Msg("admin account already present")
		return existing, nil
	}

	admin, active := models.RoleAdmin, true
	promoted, err := s.accountRepository.UpdateAccount(ctx, existing.ID, models.AccountPatch{Role: &admin, IsActive: &active}, s.now())
	if err != nil {
		return models.Account{}, fmt.Errorf("admin promotion failed: %w", err)
	}

	log.Info().Int64("id", promoted.ID).Msg("account promoted to admin")
	return promoted, nil
}

// hashPassword maps hasher input errors to ErrValidationFailure.
func (s *accountService) hashPassword(password string) (string, error) {
	hash, err := s.passwordHasher.Hash(password)
	switch {
	case err == nil:
		return hash, nil
	case errors.Is(err, crypto.ErrEmptyPassword), errors.Is(err, crypto.ErrPasswordTooLong):
		return "", fmt.Errorf("%w: %w", ErrValidationFailure, err)
	default:
		return "", fmt.Errorf("password hashing failed: %w", err)
	}
}
