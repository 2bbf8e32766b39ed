package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/tours-service/internal/domain"
	adminRepo "github.com/m04kA/tours-service/internal/infra/storage/admin"
	"github.com/m04kA/tours-service/internal/service/auth/models"
)

const tokenIssuer = "tours-service"

// Claims содержимое JWT администратора
type Claims struct {
	AdminID int64  `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Service сервис аутентификации администраторов
type Service struct {
	adminRepo AdminRepository
	secret    []byte
	tokenTTL  time.Duration
	now       func() time.Time
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(adminRepo AdminRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
		logger:    logger,
	}
}

// Login проверяет пароль и выдаёт токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for email=%s", email)

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: admin email=%s not found", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !admin.IsActive {
		s.logger.Warn("Login: admin id=%d is disabled", admin.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for admin id=%d", admin.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(admin)
	if err != nil {
		s.logger.Error("Login: failed to sign token for admin id=%d: %v", admin.ID, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin id=%d logged in", admin.ID)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin: models.AdminProfile{
			ID:       admin.ID,
			Email:    admin.Email,
			FullName: admin.FullName,
		},
	}, nil
}

// ParseToken проверяет подпись и срок действия токена
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != string(domain.RoleAdmin) || claims.AdminID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// EnsureBootstrapAdmin создаёт первого администратора, если его ещё нет
func (s *Service) EnsureBootstrapAdmin(ctx context.Context, email, password, fullName string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	_, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adminRepo.ErrAdminNotFound) {
		return fmt.Errorf("%w: EnsureBootstrapAdmin - repository error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: EnsureBootstrapAdmin - hash password: %v", ErrInternal, err)
	}

	created, err := s.adminRepo.Create(ctx, &domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrDuplicateEmail) {
			// создан параллельно другим экземпляром
			return nil
		}
		return fmt.Errorf("%w: EnsureBootstrapAdmin - create admin: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureBootstrapAdmin: created admin id=%d", created.ID)
	return nil
}

func (s *Service) issueToken(admin *domain.AdminUser) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)

	claims := Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
