package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
	"github.com/noah-isme/sma-adp-dashboard/pkg/session"
)

// SessionKey is the session store key holding the signed-in user.
const SessionKey = "auth_user"

// Login outcomes reported to the recorder.
const (
	LoginSuccess  = "success"
	LoginRejected = "rejected"
	LoginInvalid  = "invalid_payload"
)

type loginRecorder interface {
	RecordLogin(outcome string)
}

// AuthConfig defines the single accepted credential pair and session lifetime.
type AuthConfig struct {
	Email      string
	Password   string
	Name       string
	LoginDelay time.Duration
	SessionTTL time.Duration
}

// AuthService signs the dashboard user in and out of a session store.
type AuthService struct {
	validator    *validator.Validate
	logger       *zap.Logger
	metrics      loginRecorder
	config       AuthConfig
	passwordHash []byte
}

// NewAuthService constructs an AuthService. The configured password is only kept hashed.
func NewAuthService(validate *validator.Validate, logger *zap.Logger, metrics loginRecorder, config AuthConfig) (*AuthService, error) {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash dashboard password")
	}
	config.Password = ""
	return &AuthService{validator: validate, logger: logger, metrics: metrics, config: config, passwordHash: hash}, nil
}

// Login checks the form, then the credentials, and stores the session on success. A rejected
// attempt never touches the store.
func (s *AuthService) Login(ctx context.Context, store session.Store, req models.LoginRequest) (*models.AuthUser, error) {
	if fields := s.validateLogin(req); len(fields) > 0 {
		s.recordLogin(LoginInvalid)
		return nil, appErrors.Validation("invalid login payload", fields)
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if req.Email != s.config.Email || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) != nil {
		s.recordLogin(LoginRejected)
		s.logger.Info("login rejected", zap.String("email", req.Email))
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}

	user := &models.AuthUser{Email: s.config.Email, Name: s.config.Name, Role: models.RoleSuperAdmin}
	payload, err := json.Marshal(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode session")
	}
	if err := store.Set(ctx, SessionKey, payload, s.config.SessionTTL); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	s.recordLogin(LoginSuccess)
	s.logger.Info("login succeeded", zap.String("email", user.Email))
	return user, nil
}

// Logout clears the stored session.
func (s *AuthService) Logout(ctx context.Context, store session.Store) error {
	if err := store.Delete(ctx, SessionKey); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	return nil
}

// CurrentSession returns the signed-in user, or ErrUnauthorized when there is none.
func (s *AuthService) CurrentSession(ctx context.Context, store session.Store) (*models.AuthUser, error) {
	raw, err := store.Get(ctx, SessionKey)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "not signed in")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}

	var user models.AuthUser
	if err := json.Unmarshal(raw, &user); err != nil || user.Email == "" {
		s.logger.Warn("discarding unreadable session", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "not signed in")
	}
	return &user, nil
}

func (s *AuthService) validateLogin(req models.LoginRequest) map[string]string {
	req.Email = strings.TrimSpace(req.Email)
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["email"] = "Invalid email address"
		return fields
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Email":
			fields["email"] = "Invalid email address"
		case "Password":
			fields["password"] = "Password must be at least 6 characters"
		}
	}
	return fields
}

// wait simulates the sign-in round trip of the dashboard form.
func (s *AuthService) wait(ctx context.Context) error {
	if s.config.LoginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.config.LoginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return appErrors.Wrap(ctx.Err(), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "login cancelled")
	case <-timer.C:
		return nil
	}
}

func (s *AuthService) recordLogin(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordLogin(outcome)
	}
}
