package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/spellnotes/notes-api/internal/core/domain"
	"github.com/spellnotes/notes-api/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// tokenClaims is the payload signed into every access token. Subject carries
// the username; ExpiresAt the absolute expiry.
type tokenClaims struct {
	jwt.RegisteredClaims
}

// AuthService implements registration, login and token-based session resolution.
type AuthService struct {
	users     ports.UserRepository
	audit     ports.AuditRecorder
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, audit ports.AuditRecorder, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		users:     users,
		audit:     audit,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a new account. The plaintext password is bcrypt-hashed and
// discarded; the returned user never carries it. Duplicate usernames surface
// as domain.ErrUsernameTaken regardless of whether the duplicate was caught
// here or by the storage layer's unique index.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		s.record(username, domain.AuditRegister, false)
		return nil, err
	}

	s.record(username, domain.AuditRegister, true)
	s.logger.Info().Str("username", username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown-user and
// wrong-password collapse into the same ErrInvalidCredentials so the response
// does not reveal which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(username, domain.AuditLogin, false)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.record(username, domain.AuditLogin, false)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.Username)
	if err != nil {
		return nil, err
	}

	s.record(username, domain.AuditLogin, true)
	return &ports.LoginResult{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate validates a presented bearer token and resolves its subject to
// a user record. All failure causes (malformed token, wrong signature,
// expiry, empty subject, unknown user) return domain.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		s.record(claims.Subject, domain.AuditTokenCheck, false)
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

func (s *AuthService) issueToken(subject string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})
	return t.SignedString(s.jwtSecret)
}

func (s *AuthService) record(username, action string, success bool) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Username:  username,
		Action:    action,
		Success:   success,
		Timestamp: time.Now().UTC(),
	})
}
