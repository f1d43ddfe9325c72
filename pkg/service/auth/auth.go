// Package auth implements registration, login, logout, and the admin
// bootstrap over the user store, plus JWT issuance for the HTTP surface.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dolarasia/dolarasia/pkg/config"
	domainuser "github.com/dolarasia/dolarasia/pkg/domain/user"
	"github.com/dolarasia/dolarasia/pkg/dto"
	"github.com/dolarasia/dolarasia/pkg/repository"
	"github.com/dolarasia/dolarasia/pkg/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Reserved administrator record, seeded once per storage lifetime.
const (
	AdminEmail    = "admin@dolarasia.com"
	adminPassword = "admin123"
)

// RegisterInput is the validated payload for creating an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Address  string
	IDNumber string
}

// Service owns the identity flows. Every login or registration also starts
// the process session via the holder, mirroring it into storage.
type Service struct {
	users    repository.User
	sessions *session.Holder
	cfg      *config.Jwt
	logger   *slog.Logger
}

// New creates an auth service.
func New(
	users repository.User,
	sessions *session.Holder,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, sessions: sessions, cfg: cfg, logger: logger}
}

// EnsureAdmin seeds the reserved administrator account when it is missing.
// Idempotent; safe to call on every startup.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	_, err := s.users.GetByEmail(ctx, AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainuser.ErrUserNotFound) {
		return fmt.Errorf("admin bootstrap: %w", err)
	}
	admin, err := domainuser.New(
		AdminEmail,
		adminPassword,
		"Admin Dolarasia",
		"+62123456789",
		"Jakarta Office",
		"ADMIN001",
	)
	if err != nil {
		return fmt.Errorf("admin bootstrap: %w", err)
	}
	admin.IsAdmin = true
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("admin bootstrap: %w", err)
	}
	s.logger.Info("seeded administrator account", "email", AdminEmail)
	return nil
}

// Register creates a non-admin user and starts a session for them. Returns
// the session-visible user with the credential stripped.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*dto.UserRead, error) {
	log := s.logger.With("context", "Register", "email", input.Email)
	u, err := domainuser.New(
		input.Email,
		input.Password,
		input.FullName,
		input.Phone,
		input.Address,
		input.IDNumber,
	)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		log.Warn("registration failed", "error", err)
		return nil, err
	}
	read := dto.NewUserRead(u)
	if err := s.sessions.Set(ctx, read); err != nil {
		return nil, err
	}
	log.Info("user registered", "userID", u.ID)
	return read, nil
}

// Login matches email and password against the stored records and starts a
// session for the match. Any miss is ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*dto.UserRead, error) {
	log := s.logger.With("context", "Login", "email", email)
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainuser.ErrUserNotFound) {
			log.Warn("login failed", "error", domainuser.ErrInvalidCredentials)
			return nil, domainuser.ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Password != password {
		log.Warn("login failed", "error", domainuser.ErrInvalidCredentials)
		return nil, domainuser.ErrInvalidCredentials
	}
	read := dto.NewUserRead(u)
	if err := s.sessions.Set(ctx, read); err != nil {
		return nil, err
	}
	log.Info("login successful", "userID", u.ID)
	return read, nil
}

// Logout clears the session and its persisted mirror.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// GenerateToken signs a JWT carrying the user's id, email, and admin flag.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["full_name"] = u.FullName
	claims["is_admin"] = u.IsAdmin
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("token signing failed", "userID", u.ID, "error", err)
		return "", err
	}
	return signed, nil
}

// TokenUser is the identity carried by a verified JWT.
type TokenUser struct {
	ID      uuid.UUID
	Email   string
	IsAdmin bool
}

// UserFromToken extracts the identity from a verified token.
func UserFromToken(token *jwt.Token) (*TokenUser, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainuser.ErrInvalidCredentials
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domainuser.ErrInvalidCredentials
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainuser.ErrInvalidCredentials
	}
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	return &TokenUser{ID: id, Email: email, IsAdmin: isAdmin}, nil
}
