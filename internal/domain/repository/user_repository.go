package repository

import (
	"context"
	"time"

	"github.com/tourism-directory/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// Exists проверяет, занят ли username или email
	Exists(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, u *domain.User) error
}

// ClaimRepository определяет методы для работы с заявками на владение
type ClaimRepository interface {
	Create(ctx context.Context, c *domain.ClaimRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ClaimRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.ClaimRequest, error)
	ListByStatus(ctx context.Context, status domain.ClaimStatus) ([]*domain.ClaimRequest, error)

	// HasPending проверяет наличие заявки в статусе pending для заведения
	HasPending(ctx context.Context, businessID int64) (bool, error)

	// Resolve переводит pending заявку в status; ErrClaimNotPending если заявка уже решена
	Resolve(ctx context.Context, id int64, status domain.ClaimStatus, at time.Time) error
}
