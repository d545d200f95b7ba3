package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := conn(ctx, r.db).GetContext(ctx, &u, `
		SELECT id, username, email, password_hash, full_name, role, created_at
		FROM users WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &u, nil
}

func (r *userRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR LOWER(email) = LOWER($2))`,
		username, email)
	if err != nil {
		r.logger.Error("Failed to check user existence", zap.String("username", username), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		u.Username, u.Email, u.PasswordHash, u.FullName, u.Role, u.CreatedAt,
	).Scan(&u.ID)
	if isUniqueViolation(err) {
		return errors.ErrUserExists
	}
	if err != nil {
		r.logger.Error("Failed to create user", zap.String("username", u.Username), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

const claimColumns = `id, business_id, user_id, status, document_url, created_at, resolved_at`

type claimRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewClaimRepository(db *DB) repository.ClaimRepository {
	return &claimRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *claimRepository) Create(ctx context.Context, c *domain.ClaimRequest) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO claim_requests (business_id, user_id, status, document_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.BusinessID, c.UserID, c.Status, c.DocumentURL, c.CreatedAt,
	).Scan(&c.ID)
	if isUniqueViolation(err) {
		// сработал частичный уникальный индекс по pending заявкам
		return errors.ErrClaimAlreadyPending
	}
	if err != nil {
		r.logger.Error("Failed to create claim request",
			zap.Int64("business_id", c.BusinessID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *claimRepository) GetByID(ctx context.Context, id int64) (*domain.ClaimRequest, error) {
	var c domain.ClaimRequest
	err := conn(ctx, r.db).GetContext(ctx, &c, `SELECT `+claimColumns+` FROM claim_requests WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrClaimNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get claim request", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &c, nil
}

func (r *claimRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.ClaimRequest, error) {
	var claims []*domain.ClaimRequest
	err := conn(ctx, r.db).SelectContext(ctx, &claims,
		`SELECT `+claimColumns+` FROM claim_requests WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		r.logger.Error("Failed to list claim requests by user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return claims, nil
}

func (r *claimRepository) ListByStatus(ctx context.Context, status domain.ClaimStatus) ([]*domain.ClaimRequest, error) {
	var claims []*domain.ClaimRequest
	err := conn(ctx, r.db).SelectContext(ctx, &claims,
		`SELECT `+claimColumns+` FROM claim_requests WHERE status = $1 ORDER BY id`, status)
	if err != nil {
		r.logger.Error("Failed to list claim requests by status", zap.String("status", string(status)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return claims, nil
}

func (r *claimRepository) HasPending(ctx context.Context, businessID int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM claim_requests WHERE business_id = $1 AND status = 'pending')`,
		businessID)
	if err != nil {
		r.logger.Error("Failed to check pending claims", zap.Int64("business_id", businessID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

// Resolve меняет статус только у pending заявки: условный UPDATE не даёт решить заявку дважды
func (r *claimRepository) Resolve(ctx context.Context, id int64, status domain.ClaimStatus, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE claim_requests SET status = $2, resolved_at = $3
		WHERE id = $1 AND status = 'pending'`,
		id, status, at)
	if err != nil {
		r.logger.Error("Failed to resolve claim request", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return errors.ErrClaimNotPending
	}
	return nil
}
