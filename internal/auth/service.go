package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/techstore-mx/techstore-backend/pkg/auth"
	"github.com/techstore-mx/techstore-backend/pkg/config"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
	"github.com/techstore-mx/techstore-backend/pkg/kv"
	"github.com/techstore-mx/techstore-backend/pkg/security"
)

// User is a mock account. Accounts live in process memory; only the session
// tokens are persisted through the KV backend.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`

	passwordHash string
}

// RegisterInput carries the sign-up fields.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput carries the sign-in fields.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the result of a successful register or login.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Service exposes the mock authentication operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, input LoginInput) (*Session, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	nextID  int

	sessions kv.Store
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	now      func() time.Time
}

// NewService builds the auth service with an empty account table.
func NewService(sessions kv.Store, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	return &service{
		byEmail:  make(map[string]*User),
		nextID:   1,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "faltan campos requeridos: name, email, password")
	}

	hash, err := security.HashPassword(input.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	s.mu.Lock()
	if _, exists := s.byEmail[email]; exists {
		s.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ya existe una cuenta con ese email")
	}
	user := &User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		CreatedAt:    s.now(),
		passwordHash: hash,
	}
	s.nextID++
	s.byEmail[email] = user
	s.mu.Unlock()

	return s.openSession(ctx, user)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "faltan campos requeridos: email, password")
	}

	s.mu.RLock()
	user, exists := s.byEmail[email]
	s.mu.RUnlock()
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciales inválidas")
	}

	ok, err := security.VerifyPassword(input.Password, user.passwordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciales inválidas")
	}

	return s.openSession(ctx, user)
}

func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "token es requerido")
	}
	claims, err := auth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
	if err := s.sessions.Delete(ctx, kv.SessionKey(claims.ID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

func (s *service) openSession(ctx context.Context, user *User) (*Session, error) {
	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token")
	}

	claims, err := auth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading minted token")
	}
	if err := s.sessions.Set(ctx, kv.SessionKey(claims.ID), fmt.Sprintf("%d", user.ID), s.jwtCfg.SessionTTL()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving session")
	}

	return &Session{User: *user, Token: token}, nil
}

// Authenticate resolves a bearer token to its user id, checking both the
// signature and the KV session record.
func Authenticate(ctx context.Context, sessions kv.Store, jwtCfg config.JWTConfig, token string) (*auth.AccessTokenClaims, error) {
	claims, err := auth.ParseAccessToken(jwtCfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
	if _, err := sessions.Get(ctx, kv.SessionKey(claims.ID)); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session revoked")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading session")
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
