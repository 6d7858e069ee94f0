package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"monplanting/database"
	"monplanting/models"
	"monplanting/validator"
)

// AuthService handles account registration and credential checks
type AuthService struct {
	repo      AccountRepository
	hasher    *PasswordHasher
	validator *validator.Validator
}

// NewAuthService creates a new auth service
func NewAuthService(repo AccountRepository, hasher *PasswordHasher, v *validator.Validator) *AuthService {
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		validator: v,
	}
}

// Register creates an account. It fails with ErrDuplicateIdentity when the
// username or the email is already taken.
func (as *AuthService) Register(username, email, password string) (*models.Account, error) {
	req := models.RegisterRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}
	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	hash, err := as.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = as.repo.CreateAccount(account)
	switch {
	case errors.Is(err, database.ErrUsernameTaken):
		return nil, fmt.Errorf("%w: username", ErrDuplicateIdentity)
	case errors.Is(err, database.ErrEmailTaken):
		return nil, fmt.Errorf("%w: email", ErrDuplicateIdentity)
	case err != nil:
		return nil, err
	}

	return account, nil
}

// Authenticate returns the account matching username and password. Failures
// are ErrUnknownUsername or ErrInvalidCredentials, both of which match
// ErrAuthenticationFailed. A legacy SHA-256 digest is replaced by a bcrypt
// hash after a successful check.
func (as *AuthService) Authenticate(username, password string) (*models.Account, error) {
	account, err := as.repo.GetAccountByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUnknownUsername
	}

	if !as.hasher.Verify(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if IsLegacyDigest(account.PasswordHash) {
		hash, err := as.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("rehash password: %w", err)
		}
		if err := as.repo.UpdatePasswordHash(account.ID, hash); err != nil {
			return nil, fmt.Errorf("upgrade password hash: %w", err)
		}
		account.PasswordHash = hash
	}

	return account, nil
}

// GetAccount retrieves an account by ID
func (as *AuthService) GetAccount(accountID int64) (*models.Account, error) {
	account, err := as.repo.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}
