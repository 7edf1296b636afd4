package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	adminRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-ReservationService/internal/service/auth/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	args := m.Called(ctx, a)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	a.ID = uuid.New()
	return a, nil
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*domain.Admin)
	return a, args.Error(1)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Admin)
	return a, args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newAdmin(t *testing.T, password string) *domain.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Admin{ID: uuid.New(), Email: "owner@example.com", PasswordHash: string(hash)}
}

func TestLogin(t *testing.T) {
	admin := newAdmin(t, "secret123")
	repo := &mockAdminRepo{}
	repo.On("GetByEmail", mock.Anything, "owner@example.com").Return(admin, nil)

	svc := NewService(repo, "jwt-secret", 24*time.Hour, logger.NewNop())

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: " Owner@Example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	id, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	admin := newAdmin(t, "secret123")
	repo := &mockAdminRepo{}
	repo.On("GetByEmail", mock.Anything, "owner@example.com").Return(admin, nil)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, adminRepo.ErrAdminNotFound)

	svc := NewService(repo, "jwt-secret", time.Hour, logger.NewNop())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "owner@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Validation(t *testing.T) {
	repo := &mockAdminRepo{}
	svc := NewService(repo, "jwt-secret", time.Hour, logger.NewNop())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "not-an-email", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "owner@example.com", Password: "12345"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestParseToken(t *testing.T) {
	svc := NewService(&mockAdminRepo{}, "jwt-secret", time.Hour, logger.NewNop())
	issued := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.timeProvider = fixedTime{issued}

	id := uuid.New()
	token, expiresAt, err := svc.generateToken(id, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Hour), expiresAt)

	got, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	t.Run("expired", func(t *testing.T) {
		svc.timeProvider = fixedTime{issued.Add(2 * time.Hour)}
		_, err := svc.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		svc.timeProvider = fixedTime{issued}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService(&mockAdminRepo{}, "other-secret", time.Hour, logger.NewNop())
		other.timeProvider = fixedTime{issued}
		_, err := other.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ParseToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCreateAdmin(t *testing.T) {
	repo := &mockAdminRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		return a.Email == "owner@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret123")) == nil
	})).Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, adminRepo.ErrEmailTaken)

	svc := NewService(repo, "jwt-secret", time.Hour, logger.NewNop())

	resp, err := svc.CreateAdmin(context.Background(), "Owner@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", resp.Email)

	_, err = svc.CreateAdmin(context.Background(), "owner@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestMe(t *testing.T) {
	admin := newAdmin(t, "secret123")
	repo := &mockAdminRepo{}
	repo.On("GetByID", mock.Anything, admin.ID).Return(admin, nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, adminRepo.ErrAdminNotFound)

	svc := NewService(repo, "jwt-secret", time.Hour, logger.NewNop())

	resp, err := svc.Me(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, resp.Email)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
