package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/usecase/dto"
)

type UserUseCase struct {
	users    repository.UserRepository
	logger   *zap.Logger
	now      Clock
	hashCost int
}

func NewUserUseCase(users repository.UserRepository, logger *zap.Logger, now Clock) *UserUseCase {
	return &UserUseCase{
		users:    users,
		logger:   logger,
		now:      clockOrDefault(now),
		hashCost: bcrypt.DefaultCost,
	}
}

// Create регистрирует пользователя; пароль хранится только в виде bcrypt хеша
func (uc *UserUseCase) Create(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)

	exists, err := uc.users.Exists(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         domain.RoleTourist,
		CreatedAt:    uc.now(),
	}
	if req.Role != "" {
		u.Role = domain.UserRole(req.Role)
	}

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Info("User created", zap.Int64("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

func (uc *UserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}
