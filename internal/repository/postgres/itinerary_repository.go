package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

const itineraryColumns = `
	id, user_id, title, description, start_date, end_date, is_public,
	cover_image, total_budget, created_at, updated_at`

type itineraryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewItineraryRepository(db *DB) repository.ItineraryRepository {
	return &itineraryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *itineraryRepository) Create(ctx context.Context, it *domain.Itinerary) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO itineraries (
			user_id, title, description, start_date, end_date, is_public,
			cover_image, total_budget, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id`,
		it.UserID, it.Title, it.Description, it.StartDate, it.EndDate, it.IsPublic,
		it.CoverImage, it.TotalBudget, it.CreatedAt,
	).Scan(&it.ID)
	if err != nil {
		r.logger.Error("Failed to create itinerary", zap.Int64("user_id", it.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	it.UpdatedAt = it.CreatedAt
	return nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	var it domain.Itinerary
	err := conn(ctx, r.db).GetContext(ctx, &it, `SELECT `+itineraryColumns+` FROM itineraries WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrItineraryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get itinerary", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &it, nil
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Itinerary, error) {
	var list []*domain.Itinerary
	err := conn(ctx, r.db).SelectContext(ctx, &list,
		`SELECT `+itineraryColumns+` FROM itineraries WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		r.logger.Error("Failed to list itineraries by user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return list, nil
}

func (r *itineraryRepository) ListPublic(ctx context.Context) ([]*domain.Itinerary, error) {
	var list []*domain.Itinerary
	err := conn(ctx, r.db).SelectContext(ctx, &list,
		`SELECT `+itineraryColumns+` FROM itineraries WHERE is_public ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list public itineraries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return list, nil
}

func (r *itineraryRepository) Update(ctx context.Context, it *domain.Itinerary) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE itineraries SET
			title = $2, description = $3, start_date = $4, end_date = $5,
			is_public = $6, cover_image = $7, total_budget = $8, updated_at = $9
		WHERE id = $1`,
		it.ID, it.Title, it.Description, it.StartDate, it.EndDate,
		it.IsPublic, it.CoverImage, it.TotalBudget, it.UpdatedAt,
	)
	return affected(r.logger, res, err, "update itinerary", it.ID, errors.ErrItineraryNotFound)
}

func (r *itineraryRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	return affected(r.logger, res, err, "delete itinerary", id, errors.ErrItineraryNotFound)
}

func (r *itineraryRepository) Touch(ctx context.Context, id int64, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE itineraries SET updated_at = $2 WHERE id = $1`, id, at)
	return affected(r.logger, res, err, "touch itinerary", id, errors.ErrItineraryNotFound)
}

// affected переводит результат UPDATE/DELETE по id в доменную ошибку
func affected(logger *zap.Logger, res sql.Result, err error, op string, id int64, notFound error) error {
	if err != nil {
		logger.Error("Failed to "+op, zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound
	}
	return nil
}

const dayColumns = `id, itinerary_id, day_number, date, notes, created_at`

type itineraryDayRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewItineraryDayRepository(db *DB) repository.ItineraryDayRepository {
	return &itineraryDayRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *itineraryDayRepository) Create(ctx context.Context, d *domain.ItineraryDay) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO itinerary_days (itinerary_id, day_number, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		d.ItineraryID, d.DayNumber, d.Date, d.Notes, d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		r.logger.Error("Failed to create itinerary day", zap.Int64("itinerary_id", d.ItineraryID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *itineraryDayRepository) GetByID(ctx context.Context, id int64) (*domain.ItineraryDay, error) {
	var d domain.ItineraryDay
	err := conn(ctx, r.db).GetContext(ctx, &d, `SELECT `+dayColumns+` FROM itinerary_days WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrDayNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get itinerary day", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &d, nil
}

func (r *itineraryDayRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.ItineraryDay, error) {
	var days []*domain.ItineraryDay
	err := conn(ctx, r.db).SelectContext(ctx, &days,
		`SELECT `+dayColumns+` FROM itinerary_days WHERE itinerary_id = $1 ORDER BY day_number, id`, itineraryID)
	if err != nil {
		r.logger.Error("Failed to list itinerary days", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return days, nil
}

func (r *itineraryDayRepository) Update(ctx context.Context, d *domain.ItineraryDay) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE itinerary_days SET day_number = $2, date = $3, notes = $4 WHERE id = $1`,
		d.ID, d.DayNumber, d.Date, d.Notes)
	return affected(r.logger, res, err, "update itinerary day", d.ID, errors.ErrDayNotFound)
}

func (r *itineraryDayRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM itinerary_days WHERE id = $1`, id)
	return affected(r.logger, res, err, "delete itinerary day", id, errors.ErrDayNotFound)
}

const itemColumns = `
	id, day_id, business_id, type, title, description, start_time, end_time,
	location, cost, reservation_confirmation, details, created_at, updated_at`

// itemRow - details читается как []byte, чтобы NULL сканировался без ошибки
type itemRow struct {
	domain.ItineraryItem
	Details []byte `db:"details"`
}

func (r itemRow) toDomain() *domain.ItineraryItem {
	it := r.ItineraryItem
	if len(r.Details) > 0 {
		it.Details = json.RawMessage(r.Details)
	}
	return &it
}

type itineraryItemRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewItineraryItemRepository(db *DB) repository.ItineraryItemRepository {
	return &itineraryItemRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *itineraryItemRepository) Create(ctx context.Context, it *domain.ItineraryItem) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO itinerary_items (
			day_id, business_id, type, title, description, start_time, end_time,
			location, cost, reservation_confirmation, details, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id`,
		it.DayID, it.BusinessID, it.Type, it.Title, it.Description, it.StartTime, it.EndTime,
		it.Location, it.Cost, it.Reservation, jsonArg(it.Details), it.CreatedAt,
	).Scan(&it.ID)
	if err != nil {
		r.logger.Error("Failed to create itinerary item", zap.Int64("day_id", it.DayID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	it.UpdatedAt = it.CreatedAt
	return nil
}

func (r *itineraryItemRepository) GetByID(ctx context.Context, id int64) (*domain.ItineraryItem, error) {
	var row itemRow
	err := conn(ctx, r.db).GetContext(ctx, &row, `SELECT `+itemColumns+` FROM itinerary_items WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get itinerary item", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return row.toDomain(), nil
}

func (r *itineraryItemRepository) ListByDay(ctx context.Context, dayID int64) ([]*domain.ItineraryItem, error) {
	var rows []itemRow
	err := conn(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT `+itemColumns+` FROM itinerary_items WHERE day_id = $1 ORDER BY id`, dayID)
	if err != nil {
		r.logger.Error("Failed to list itinerary items", zap.Int64("day_id", dayID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	items := make([]*domain.ItineraryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, nil
}

func (r *itineraryItemRepository) Update(ctx context.Context, it *domain.ItineraryItem) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE itinerary_items SET
			business_id = $2, type = $3, title = $4, description = $5, start_time = $6,
			end_time = $7, location = $8, cost = $9, reservation_confirmation = $10,
			details = $11, updated_at = $12
		WHERE id = $1`,
		it.ID, it.BusinessID, it.Type, it.Title, it.Description, it.StartTime,
		it.EndTime, it.Location, it.Cost, it.Reservation, jsonArg(it.Details), it.UpdatedAt,
	)
	return affected(r.logger, res, err, "update itinerary item", it.ID, errors.ErrItemNotFound)
}

func (r *itineraryItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM itinerary_items WHERE id = $1`, id)
	return affected(r.logger, res, err, "delete itinerary item", id, errors.ErrItemNotFound)
}

func (r *itineraryItemRepository) DeleteByDay(ctx context.Context, dayID int64) (int64, error) {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM itinerary_items WHERE day_id = $1`, dayID)
	if err != nil {
		r.logger.Error("Failed to delete items of day", zap.Int64("day_id", dayID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// jsonArg передаёт пустой details как NULL
func jsonArg(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

const collaboratorColumns = `itinerary_id, email, name, access_level, invite_status, created_at`

type collaboratorRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCollaboratorRepository(db *DB) repository.CollaboratorRepository {
	return &collaboratorRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *collaboratorRepository) Create(ctx context.Context, c *domain.Collaborator) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO itinerary_collaborators (itinerary_id, email, name, access_level, invite_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ItineraryID, c.Email, c.Name, c.AccessLevel, c.InviteStatus, c.CreatedAt)
	if isUniqueViolation(err) {
		return errors.ErrCollaboratorExists
	}
	if err != nil {
		r.logger.Error("Failed to create collaborator",
			zap.Int64("itinerary_id", c.ItineraryID), zap.String("email", c.Email), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *collaboratorRepository) Get(ctx context.Context, itineraryID int64, email string) (*domain.Collaborator, error) {
	var c domain.Collaborator
	err := conn(ctx, r.db).GetContext(ctx, &c, `
		SELECT `+collaboratorColumns+` FROM itinerary_collaborators
		WHERE itinerary_id = $1 AND email = $2`, itineraryID, email)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get collaborator",
			zap.Int64("itinerary_id", itineraryID), zap.String("email", email), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &c, nil
}

func (r *collaboratorRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*domain.Collaborator, error) {
	var list []*domain.Collaborator
	err := conn(ctx, r.db).SelectContext(ctx, &list, `
		SELECT `+collaboratorColumns+` FROM itinerary_collaborators
		WHERE itinerary_id = $1 ORDER BY created_at, email`, itineraryID)
	if err != nil {
		r.logger.Error("Failed to list collaborators", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return list, nil
}

func (r *collaboratorRepository) Update(ctx context.Context, c *domain.Collaborator) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE itinerary_collaborators SET name = $3, access_level = $4, invite_status = $5
		WHERE itinerary_id = $1 AND email = $2`,
		c.ItineraryID, c.Email, c.Name, c.AccessLevel, c.InviteStatus)
	return affected(r.logger, res, err, "update collaborator", c.ItineraryID, errors.ErrCollaboratorNotFound)
}

func (r *collaboratorRepository) Delete(ctx context.Context, itineraryID int64, email string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM itinerary_collaborators WHERE itinerary_id = $1 AND email = $2`, itineraryID, email)
	return affected(r.logger, res, err, "delete collaborator", itineraryID, errors.ErrCollaboratorNotFound)
}

func (r *collaboratorRepository) DeleteByItinerary(ctx context.Context, itineraryID int64) (int64, error) {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM itinerary_collaborators WHERE itinerary_id = $1`, itineraryID)
	if err != nil {
		r.logger.Error("Failed to delete collaborators", zap.Int64("itinerary_id", itineraryID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	n, _ := res.RowsAffected()
	return n, nil
}
