package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	usersRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/users"
	"github.com/kmlvv/BSM-SalonService/internal/service/users/models"
)

// defaultUsers сотрудники, которыми заполняется пустое хранилище при первом старте
var defaultUsers = []struct {
	ID       string
	Username string
	Password string
	Name     string
}{
	{ID: "anna", Username: "anna", Password: "anna2024", Name: "Анна"},
	{ID: "maria", Username: "maria", Password: "maria2024", Name: "Мария"},
}

// Service сервис сотрудников салона
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// EnsureDefaults заполняет пустое хранилище мастерами по умолчанию.
// Непустое хранилище не трогает, поэтому вызов на каждом старте безопасен.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	if s.userRepo.Count(ctx) > 0 {
		return nil
	}

	s.logger.Info("EnsureDefaults: seeding %d default users", len(defaultUsers))

	for _, u := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%w: failed to hash password for %s: %v", ErrInternal, u.Username, err)
		}

		if _, err := s.userRepo.Create(ctx, &domain.User{
			ID:           u.ID,
			Username:     u.Username,
			PasswordHash: string(hash),
			Name:         u.Name,
			Role:         domain.RoleCosmetologist,
		}); err != nil {
			return fmt.Errorf("%w: failed to create user %s: %v", ErrInternal, u.Username, err)
		}

		s.logger.Info("EnsureDefaults: created user id=%s", u.ID)
	}

	return nil
}

// Login проверяет логин и пароль сотрудника.
// Неизвестный логин и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	s.logger.Info("Login: attempt for username=%s", req.Username)

	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: successful for user id=%s", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// List получает всех сотрудников салона
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	items := s.userRepo.List(ctx)
	s.logger.Info("List: found %d users", len(items))
	return models.FromDomainUsers(items), nil
}
