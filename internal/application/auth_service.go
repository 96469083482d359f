package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
	"github.com/ratehub/ratehub/internal/session"
	"github.com/ratehub/ratehub/pkg/helpers"
	"github.com/ratehub/ratehub/pkg/mailer"
)

// AuthService is the session/auth gateway: it authenticates credentials,
// issues and rotates sessions, and owns the password lifecycle.
type AuthService struct {
	Repo       repo.UserRepository
	Sessions   session.Store
	JWT        *helpers.JWTManager
	SessionTTL time.Duration
	Logger     *logrus.Logger

	// Pub is optional; when set, signup and password changes enqueue a
	// notification email.
	Pub     *helpers.RabbitPublisher
	AppName string
}

func NewAuthService(r repo.UserRepository, sessions session.Store, jwt *helpers.JWTManager, sessionTTL time.Duration, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, Sessions: sessions, JWT: jwt, SessionTTL: sessionTTL, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// Authenticate validates email/password. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	ok, err := helpers.VerifyPassword(password, u.Password)
	if err != nil {
		// Malformed stored hash is a data corruption problem, not a login
		// failure worth revealing.
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("password verification failed")
		}
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueSession creates a server-side session for u and returns the token
// pair that correlates the client to it.
func (s *AuthService) IssueSession(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	if err := s.Sessions.Set(ctx, sid, &session.Data{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	}, s.SessionTTL); err != nil {
		return TokenPair{}, err
	}
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueSession(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role // empty defaults to RoleUser; admin creation may set it
}

// Signup registers a new user and logs them in. Duplicate emails are checked
// before insert; the unique index backstops the race.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, TokenPair, error) {
	if _, err := s.Repo.GetByEmail(in.Email); err == nil {
		return nil, TokenPair{}, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, TokenPair{}, err
	}

	u, err := s.createUser(in)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueSession(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	s.notify(ctx, u, mailer.TemplateWelcome)
	return u, pair, nil
}

// CreateUser registers a user without issuing a session (admin creation).
func (s *AuthService) CreateUser(ctx context.Context, in SignupInput) (*entity.User, error) {
	if _, err := s.Repo.GetByEmail(in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	u, err := s.createUser(in)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, u, mailer.TemplateWelcome)
	return u, nil
}

func (s *AuthService) createUser(in SignupInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Address:  in.Address,
		Role:     role,
	}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Refresh validates the refresh token against the live session, then rotates
// the session id and both tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.User, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	sess, err := s.Sessions.Get(ctx, claims.SessionID)
	if err != nil || sess.UserID != claims.UserID {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(claims.UserID)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if err := s.Sessions.Destroy(ctx, claims.SessionID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("destroy rotated session failed")
	}
	pair, err := s.IssueSession(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Destroy(ctx, sessionID)
}

// CurrentUser resolves the authenticated identity from storage.
func (s *AuthService) CurrentUser(userID int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ChangePassword verifies the current password before replacing it.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	ok, err := helpers.VerifyPassword(currentPassword, u.Password)
	if err != nil || !ok {
		return ErrInvalidCredentials
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(userID, hash); err != nil {
		return err
	}
	s.notify(ctx, u, mailer.TemplatePasswordChanged)
	return nil
}

// notify enqueues a transactional email, best effort.
func (s *AuthService) notify(ctx context.Context, u *entity.User, template string) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: template,
		Data:     map[string]any{"AppName": s.AppName, "Name": u.Name, "Email": u.Email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("template", template).Warn("enqueue email failed")
	}
}
