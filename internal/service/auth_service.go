package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"club-merch/internal/domain"
	"club-merch/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims are the signed session claims carried by the dashboard token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	ClubID   string `json:"club_id,omitempty"`
	jwt.RegisteredClaims
}

// AuthService authenticates dashboard users against the static credential
// table and manages their signed session tokens. Login failure is an
// expected outcome reported through ErrInvalidCredentials; it never panics.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.AuthUser, string, error)
	ValidateToken(tokenString string) (*domain.AuthUser, error)
}

type authService struct {
	credentials repository.CredentialRepository
	secret      string
	expiry      time.Duration
	loginDelay  time.Duration
}

// NewAuthService creates an auth service. loginDelay simulates the latency
// of a real identity provider on every login attempt.
func NewAuthService(
	credentials repository.CredentialRepository,
	secret string,
	expiry time.Duration,
	loginDelay time.Duration,
) AuthService {
	return &authService{
		credentials: credentials,
		secret:      secret,
		expiry:      expiry,
		loginDelay:  loginDelay,
	}
}

// Login verifies the credentials and, on success, returns the user together
// with a signed session token. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.AuthUser, string, error) {
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}

	cred, err := s.credentials.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	user := &domain.AuthUser{
		Username: cred.Username,
		Role:     cred.Role,
		ClubID:   cred.ClubID,
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return user, token, nil
}

// ValidateToken parses a session token back into the user it was issued
// for. Corrupt, forged or expired tokens yield ErrInvalidToken and the
// caller treats the session as absent.
func (s *authService) ValidateToken(tokenString string) (*domain.AuthUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &domain.AuthUser{
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
		ClubID:   claims.ClubID,
	}, nil
}

func (s *authService) signToken(user *domain.AuthUser) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: user.Username,
		Role:     string(user.Role),
		ClubID:   user.ClubID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
