package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	usersRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/users"
	"github.com/kmlvv/BSM-SalonService/internal/service/users/models"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Count(_ context.Context) int {
	return len(f.users)
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, usersRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, usersRepo.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context) []*domain.User {
	result := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, u)
	}
	return result
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	copied := *user
	f.users[copied.ID] = &copied
	return &copied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_EnsureDefaults_SeedsEmptyStore(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.EnsureDefaults(context.Background()))
	require.Equal(t, 2, repo.Count(context.Background()))

	anna, err := repo.GetByUsername(context.Background(), "anna")
	require.NoError(t, err)
	assert.Equal(t, "Анна", anna.Name)
	assert.Equal(t, domain.RoleCosmetologist, anna.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(anna.PasswordHash), []byte("anna2024")))
}

func TestService_EnsureDefaults_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.EnsureDefaults(context.Background()))
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	assert.Equal(t, 2, repo.Count(context.Background()))
}

func TestService_EnsureDefaults_DoesNotTouchExistingUsers(t *testing.T) {
	repo := newFakeUserRepo()
	_, err := repo.Create(context.Background(), &domain.User{
		ID:       "custom",
		Username: "custom",
		Name:     "Ольга",
	})
	require.NoError(t, err)

	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	assert.Equal(t, 1, repo.Count(context.Background()))
	_, err = repo.GetByUsername(context.Background(), "anna")
	assert.ErrorIs(t, err, usersRepo.ErrUserNotFound)
}

func TestService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "maria",
			Password: "maria2024",
		})
		require.NoError(t, err)
		assert.Equal(t, "maria", resp.ID)
		assert.Equal(t, "Мария", resp.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "maria",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "ghost",
			Password: "maria2024",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	resp, err := svc.GetByID(context.Background(), "anna")
	require.NoError(t, err)
	assert.Equal(t, "anna", resp.Username)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_List(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Users, 2)
}
