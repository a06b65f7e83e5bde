package repository

import (
	"context"
	"testing"

	"club-merch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialRepositoryHashesSeeds(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCredentialRepository(SeedCredentials())
	require.NoError(t, err)

	cred, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RolePlatformStaff, cred.Role)
	assert.Empty(t, cred.ClubID)

	// The plaintext must not survive, only a verifiable hash.
	assert.NotEqual(t, "admin123", cred.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("admin123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("wrong")))
}

func TestCredentialRepositoryClubAdmin(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCredentialRepository(SeedCredentials())
	require.NoError(t, err)

	cred, err := repo.FindByUsername(ctx, "uif-admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClubAdmin, cred.Role)
	assert.Equal(t, "uif", cred.ClubID)
}

func TestCredentialRepositoryUnknownUsername(t *testing.T) {
	repo, err := NewCredentialRepository(SeedCredentials())
	require.NoError(t, err)

	_, err = repo.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}
