package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

const businessColumns = `
	id, name, description, address, city, latitude, longitude, category_id,
	owner_id, claimed, rating, price_level, website, phone, images, tags,
	amenities, external_place_id, created_at, updated_at`

// businessRow - строка таблицы businesses; массивы читаются через pq.StringArray
type businessRow struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Address         string         `db:"address"`
	City            string         `db:"city"`
	Latitude        float64        `db:"latitude"`
	Longitude       float64        `db:"longitude"`
	CategoryID      int64          `db:"category_id"`
	OwnerID         *int64         `db:"owner_id"`
	Claimed         bool           `db:"claimed"`
	Rating          *float64       `db:"rating"`
	PriceLevel      *int           `db:"price_level"`
	Website         *string        `db:"website"`
	Phone           *string        `db:"phone"`
	Images          pq.StringArray `db:"images"`
	Tags            pq.StringArray `db:"tags"`
	Amenities       pq.StringArray `db:"amenities"`
	ExternalPlaceID *string        `db:"external_place_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r businessRow) toDomain() *domain.Business {
	return &domain.Business{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Address:         r.Address,
		City:            r.City,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		CategoryID:      r.CategoryID,
		OwnerID:         r.OwnerID,
		Claimed:         r.Claimed,
		Rating:          r.Rating,
		PriceLevel:      r.PriceLevel,
		Website:         r.Website,
		Phone:           r.Phone,
		Images:          nonNil(r.Images),
		Tags:            nonNil(r.Tags),
		Amenities:       nonNil(r.Amenities),
		ExternalPlaceID: r.ExternalPlaceID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func nonNil(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}

type businessRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBusinessRepository(db *DB) repository.BusinessRepository {
	return &businessRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *businessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	return r.getOne(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
}

// GetForUpdate держит блокировку строки до конца транзакции из ctx
func (r *businessRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Business, error) {
	return r.getOne(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1 FOR UPDATE`, id)
}

func (r *businessRepository) getOne(ctx context.Context, query string, id int64) (*domain.Business, error) {
	var row businessRow
	err := conn(ctx, r.db).GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBusinessNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get business by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return row.toDomain(), nil
}

func (r *businessRepository) GetByExternalPlaceID(ctx context.Context, externalPlaceID string) (*domain.Business, error) {
	var row businessRow
	err := conn(ctx, r.db).GetContext(ctx, &row,
		`SELECT `+businessColumns+` FROM businesses WHERE external_place_id = $1`, externalPlaceID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get business by external place ID",
			zap.String("external_place_id", externalPlaceID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return row.toDomain(), nil
}

func (r *businessRepository) List(ctx context.Context) ([]*domain.Business, error) {
	return r.selectBusinesses(ctx, `SELECT `+businessColumns+` FROM businesses ORDER BY id`)
}

func (r *businessRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Business, error) {
	return r.selectBusinesses(ctx, `SELECT `+businessColumns+` FROM businesses WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (r *businessRepository) selectBusinesses(ctx context.Context, query string, args ...interface{}) ([]*domain.Business, error) {
	var rows []businessRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to list businesses", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	businesses := make([]*domain.Business, 0, len(rows))
	for _, row := range rows {
		businesses = append(businesses, row.toDomain())
	}
	return businesses, nil
}

func (r *businessRepository) Create(ctx context.Context, b *domain.Business) error {
	query := `
		INSERT INTO businesses (
			name, description, address, city, latitude, longitude, category_id,
			owner_id, claimed, rating, price_level, website, phone, images, tags,
			amenities, external_place_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
		RETURNING id`

	err := conn(ctx, r.db).QueryRowxContext(ctx, query,
		b.Name, b.Description, b.Address, b.City, b.Latitude, b.Longitude, b.CategoryID,
		b.OwnerID, b.Claimed, b.Rating, b.PriceLevel, b.Website, b.Phone,
		pq.Array(nonNil(b.Images)), pq.Array(nonNil(b.Tags)), pq.Array(nonNil(b.Amenities)),
		b.ExternalPlaceID, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		r.logger.Error("Failed to create business", zap.String("name", b.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}
	b.UpdatedAt = b.CreatedAt
	return nil
}

func (r *businessRepository) Update(ctx context.Context, b *domain.Business) error {
	// owner_id и claimed пишет только SetOwner
	query := `
		UPDATE businesses SET
			name = $2, description = $3, address = $4, city = $5, latitude = $6,
			longitude = $7, category_id = $8, rating = $9, price_level = $10,
			website = $11, phone = $12, images = $13, tags = $14, amenities = $15,
			external_place_id = $16, updated_at = $17
		WHERE id = $1
		RETURNING owner_id, claimed`

	err := conn(ctx, r.db).QueryRowxContext(ctx, query,
		b.ID, b.Name, b.Description, b.Address, b.City, b.Latitude, b.Longitude,
		b.CategoryID, b.Rating, b.PriceLevel, b.Website, b.Phone,
		pq.Array(nonNil(b.Images)), pq.Array(nonNil(b.Tags)), pq.Array(nonNil(b.Amenities)),
		b.ExternalPlaceID, b.UpdatedAt,
	).Scan(&b.OwnerID, &b.Claimed)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrBusinessNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update business", zap.Int64("id", b.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *businessRepository) SetOwner(ctx context.Context, id, ownerID int64, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE businesses SET owner_id = $2, claimed = TRUE, updated_at = $3 WHERE id = $1`,
		id, ownerID, at)
	return r.checkAffected(res, err, "set owner of", id)
}

func (r *businessRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := conn(ctx, r.db).GetContext(ctx, &n, `SELECT COUNT(*) FROM businesses`); err != nil {
		r.logger.Error("Failed to count businesses", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return n, nil
}

func (r *businessRepository) checkAffected(res sql.Result, err error, op string, id int64) error {
	if err != nil {
		r.logger.Error("Failed to "+op+" business", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrBusinessNotFound
	}
	return nil
}

type categoryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	if err := conn(ctx, r.db).SelectContext(ctx, &categories, `SELECT id, name, icon FROM categories ORDER BY id`); err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := conn(ctx, r.db).GetContext(ctx, &c, `SELECT id, name, icon FROM categories WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &c, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := conn(ctx, r.db).GetContext(ctx, &c,
		`SELECT id, name, icon FROM categories WHERE LOWER(name) = LOWER($1)`, name)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx,
		`INSERT INTO categories (name, icon) VALUES ($1, $2) RETURNING id`, c.Name, c.Icon,
	).Scan(&c.ID)
	if isUniqueViolation(err) {
		return errors.ErrCategoryExists
	}
	if err != nil {
		r.logger.Error("Failed to create category", zap.String("name", c.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *categoryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := conn(ctx, r.db).GetContext(ctx, &n, `SELECT COUNT(*) FROM categories`); err != nil {
		r.logger.Error("Failed to count categories", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return n, nil
}
