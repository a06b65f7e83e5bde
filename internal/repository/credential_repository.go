package repository

import (
	"context"
	"errors"
	"fmt"

	"club-merch/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var ErrCredentialNotFound = errors.New("credential not found")

// BcryptCost is the cost factor used for the demo credential hashes.
const BcryptCost = 10

// CredentialRepository defines lookup access to the static credential table.
// The table is fixed at startup and not editable at runtime.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
}

type credentialRepository struct {
	byUsername map[string]*domain.Credential
}

// NewCredentialRepository creates a credential table from (username,
// plaintext password) seed rows, hashing each password with bcrypt. Only
// hashes are retained.
func NewCredentialRepository(seeds []CredentialSeed) (CredentialRepository, error) {
	byUsername := make(map[string]*domain.Credential, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credential for %q: %w", seed.Username, err)
		}
		byUsername[seed.Username] = &domain.Credential{
			Username:     seed.Username,
			PasswordHash: string(hash),
			Role:         seed.Role,
			ClubID:       seed.ClubID,
		}
	}
	return &credentialRepository{byUsername: byUsername}, nil
}

// CredentialSeed is one row of the demo credential table before hashing.
type CredentialSeed struct {
	Username string
	Password string
	Role     domain.Role
	ClubID   string
}

func (r *credentialRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	cred, ok := r.byUsername[username]
	if !ok {
		return nil, ErrCredentialNotFound
	}
	return cred, nil
}
