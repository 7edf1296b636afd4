package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	adminRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-ReservationService/internal/service/auth/models"
)

// Service сервис аутентификации администраторов
type Service struct {
	adminRepo    AdminRepository
	secret       []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(adminRepo AdminRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		adminRepo:    adminRepo,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет email и пароль, выдает JWT
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	// 1. Валидация
	email, err := validateCredentials(req.Email, req.Password)
	if err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем администратора
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	// 4. Выдаем токен
	token, expiresAt, err := s.generateToken(admin.ID, admin.Email)
	if err != nil {
		s.logger.Error("Login: failed to generate token: %v", err)
		return nil, err
	}

	s.logger.Info("Login: admin id=%s logged in", admin.ID)
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Me возвращает данные текущего администратора
func (s *Service) Me(ctx context.Context, adminID uuid.UUID) (*models.AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			return nil, ErrAdminNotFound
		}
		s.logger.Error("Me: repository error for id=%s: %v", adminID, err)
		return nil, fmt.Errorf("%w: Me - repository error: %v", ErrInternal, err)
	}
	return models.FromDomain(admin), nil
}

// CreateAdmin создает администратора (используется при первичной настройке)
func (s *Service) CreateAdmin(ctx context.Context, email, password string) (*models.AdminResponse, error) {
	normalized, err := validateCredentials(email, password)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAdmin - hash password: %v", ErrInternal, err)
	}

	admin, err := s.adminRepo.Create(ctx, &domain.Admin{
		Email:        normalized,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: CreateAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdmin: admin id=%s email=%s created", admin.ID, admin.Email)
	return models.FromDomain(admin), nil
}

func validateCredentials(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < domain.MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return email, nil
}
