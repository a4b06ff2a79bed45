package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/taskhive/internal/shared"
)

// Service wraps registration and login business rules.
type Service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
}

// NewService constructs a new Service.
func NewService(repo Repository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a new account and issues a token bound to it.
// Registering an email that is already in use fails with ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, password string) (string, *User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.CreateUser(ctx, name, email, string(hashed))
	if err != nil {
		return "", nil, err
	}

	token, err := IssueToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login validates email/password credentials and issues a token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, shared.ErrInvalidCredentials
	}

	token, err := IssueToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
