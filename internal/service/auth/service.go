package auth

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// Principal identifies the user and token behind an authenticated request.
type Principal struct {
	UserID  int64
	TokenID uuid.UUID
}

// RegisterInput holds the already validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Service issues, verifies and revokes bearer tokens and registers users.
type Service interface {
	// Register creates a user and its first token in one transaction.
	// Returns store.ErrEmailExists when the email is taken.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)

	// Login verifies the credentials and issues a new token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, email, password string) (string, error)

	// Logout revokes only the token identified by tokenID.
	Logout(ctx context.Context, tokenID uuid.UUID) error

	// Authenticate resolves a bearer token to its principal and records its use.
	Authenticate(ctx context.Context, bearer string) (*Principal, error)

	// PruneExpired deletes every expired token and reports how many were removed.
	PruneExpired(ctx context.Context) (int64, error)
}

// Options configures a Service.
type Options struct {
	DB         *sql.DB
	UserStore  store.UserStore
	TokenStore store.TokenStore
	JWTService JWTService
	Hasher     PasswordHasher
	Verifier   PasswordVerifier

	// TokenLifetime of zero issues tokens that never expire.
	TokenLifetime time.Duration

	Logger   *slog.Logger
	TimeFunc func() time.Time
}

type authService struct {
	db            *sql.DB
	users         store.UserStore
	tokens        store.TokenStore
	jwt           JWTService
	hasher        PasswordHasher
	verifier      PasswordVerifier
	tokenLifetime time.Duration
	logger        *slog.Logger
	now           func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// Ensure authService implements Service interface
var _ Service = (*authService)(nil)

// NewService creates the authentication service.
func NewService(opts Options) (Service, error) {
	if opts.DB == nil {
		return nil, errors.New("auth service requires a database")
	}
	if opts.UserStore == nil || opts.TokenStore == nil {
		return nil, errors.New("auth service requires user and token stores")
	}
	if opts.JWTService == nil {
		return nil, errors.New("auth service requires a JWT service")
	}
	if opts.Hasher == nil || opts.Verifier == nil {
		return nil, errors.New("auth service requires a password hasher and verifier")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.TimeFunc == nil {
		opts.TimeFunc = time.Now
	}

	return &authService{
		db:            opts.DB,
		users:         opts.UserStore,
		tokens:        opts.TokenStore,
		jwt:           opts.JWTService,
		hasher:        opts.Hasher,
		verifier:      opts.Verifier,
		tokenLifetime: opts.TokenLifetime,
		logger:        opts.Logger.With(slog.String("component", "auth_service")),
		now:           opts.TimeFunc,
	}, nil
}

// Register implements Service.Register.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.users.GetByEmail(ctx, strings.TrimSpace(input.Email)); err == nil {
		log.Debug("registration rejected: email already exists")
		return nil, "", store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check email availability: %w", err)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Error("failed to hash password during registration", slog.String("error", err.Error()))
		return nil, "", err
	}

	user, err := domain.NewUser(input.Name, input.Email, hashed)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	var plainToken string
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		issued, err := s.issueToken(ctx, s.tokens.WithTx(tx), user.ID, domain.TokenNameRegister)
		if err != nil {
			return err
		}
		plainToken = issued
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration rejected: email already exists")
			return nil, "", store.ErrEmailExists
		}
		log.Error("failed to register user", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, plainToken, nil
}

// Login implements Service.Login.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			return "", fmt.Errorf("failed to look up user: %w", err)
		}
		// Spend the same bcrypt work as a real comparison.
		_ = s.verifier.Compare(s.timingHash(), password)
		log.Debug("login failed", slog.String("reason", "credentials"))
		return "", ErrInvalidCredentials
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed", slog.String("reason", "credentials"))
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, s.tokens, user.ID, domain.TokenNameLogin)
	if err != nil {
		log.Error("failed to issue login token",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return "", err
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return token, nil
}

// Logout implements Service.Logout.
func (s *authService) Logout(ctx context.Context, tokenID uuid.UUID) error {
	if err := s.tokens.Delete(ctx, tokenID); err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return ErrTokenRevoked
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Authenticate implements Service.Authenticate.
func (s *authService) Authenticate(ctx context.Context, bearer string) (*Principal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if bearer == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.jwt.ValidateToken(ctx, bearer)
	if err != nil {
		return nil, err
	}

	record, err := s.tokens.GetByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			log.Debug("token rejected: revoked", slog.String("token_id", claims.TokenID.String()))
			return nil, ErrTokenRevoked
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(record.TokenHash), []byte(HashToken(bearer))) != 1 ||
		record.UserID != claims.UserID {
		log.Warn("token rejected: record mismatch", slog.String("token_id", claims.TokenID.String()))
		return nil, ErrInvalidToken
	}

	now := s.now()
	if record.IsExpired(now) {
		log.Debug("token rejected: expired", slog.String("token_id", claims.TokenID.String()))
		return nil, ErrExpiredToken
	}

	if err := s.tokens.Touch(ctx, record.ID, now); err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return nil, ErrTokenRevoked
		}
		return nil, fmt.Errorf("failed to record token use: %w", err)
	}

	return &Principal{UserID: record.UserID, TokenID: record.ID}, nil
}

// PruneExpired implements Service.PruneExpired.
func (s *authService) PruneExpired(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx, s.now())
}

// issueToken signs a new token and stores its hash through tokens.
func (s *authService) issueToken(ctx context.Context, tokens store.TokenStore, userID int64, name string) (string, error) {
	record := &domain.AuthToken{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}

	var expiresAt time.Time
	if s.tokenLifetime > 0 {
		expiresAt = s.now().Add(s.tokenLifetime).UTC()
		record.ExpiresAt = &expiresAt
	}

	signed, err := s.jwt.GenerateToken(ctx, userID, record.ID, expiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	record.TokenHash = HashToken(signed)

	if err := tokens.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return signed, nil
}

// timingHash returns a hash used to equalize login timing for unknown emails.
func (s *authService) timingHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}
