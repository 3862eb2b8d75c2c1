package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/store"
)

const (
	defaultTokenTTL = 7 * 24 * time.Hour
	resetTokenBytes = 20
	resetTokenTTL   = time.Hour
)

// UserStore is the subset of store.Store the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error
	GetUserByResetToken(ctx context.Context, token string) (*model.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// Session is a user together with a freshly issued token.
type Session struct {
	User  *model.User
	Token string
}

// Service provides account and token operations.
type Service struct {
	users      UserStore
	secret     []byte
	ttl        time.Duration
	bcryptCost int
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates an auth service. cfg.JWTSecret must be set.
func NewService(users UserStore, cfg model.AuthConfig, logger *zap.Logger) (*Service, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrNoSecret
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:      users,
		secret:     []byte(cfg.JWTSecret),
		ttl:        ttl,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Signup registers a new user with role "user" and signs them in.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, model.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	return s.newSession(user)
}

// Login checks email and password and signs the user in.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(user)
}

// ForgotPassword creates a one hour reset token for the user registered
// under email and returns it. There is no mail delivery; the caller hands
// the token to the user directly.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.users.SetResetToken(ctx, user.ID, token, s.now().Add(resetTokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword replaces the password of the user holding an unexpired
// reset token.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	if password == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetUserByResetToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

// EnsureAdmin creates an admin account for email unless one is already
// registered. Blank credentials skip the bootstrap.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		s.logger.Info("admin account already exists", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.users.CreateUser(ctx, model.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	s.logger.Info("created default admin account", zap.String("email", email))
	return nil
}

func (s *Service) newSession(user *model.User) (*Session, error) {
	token, err := s.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
