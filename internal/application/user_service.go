package application

import (
	"github.com/sirupsen/logrus"

	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
)

// UserService is the identity directory consumed by the admin surface.
// Creation goes through AuthService.CreateUser so the hashing and duplicate
// checks live in one place.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

func (s *UserService) Get(id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List returns the full filtered set; there is no pagination.
func (s *UserService) List(f repo.UserFilter) ([]*entity.User, error) {
	return s.Repo.List(f)
}
