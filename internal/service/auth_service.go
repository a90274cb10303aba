package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ankush0407/salon-backend/internal/auth"
	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/rs/zerolog"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users  repository.UserRepository
	tokens *auth.JWTManager
	hasher *auth.PasswordHasher
	log    zerolog.Logger
}

func newAuthService(users repository.UserRepository, tokens *auth.JWTManager, hasher *auth.PasswordHasher, log zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		log:    log.With().Str("service", "auth").Logger(),
	}
}

// Login looks up the user by exact (email, role) match, compares the
// password hash, and issues a signed token with the user summary. The
// summary name falls back to the email's local part when the row has none.
func (s *authService) Login(ctx context.Context, email, password, role string) (string, *models.UserSummary, error) {
	user, err := s.users.FindByEmailAndRole(ctx, email, role)
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Info().Str("email", email).Str("role", role).Msg("Login attempt for unknown user")
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Compare(user.Password, password) {
		s.log.Info().Str("email", email).Str("role", role).Msg("Login attempt with wrong password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}

	name := user.Name
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("User logged in")
	return token, &models.UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  name,
		Role:  user.Role,
	}, nil
}

// Register hashes the password and appends the new user row. There is no
// duplicate-email check: registering twice creates two rows, and login
// resolves to whichever the find-first match returns.
func (s *authService) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        models.NewID(),
		Email:     email,
		Password:  hashed,
		Role:      role,
		CreatedAt: models.Timestamp(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("User registered")
	return user, nil
}
