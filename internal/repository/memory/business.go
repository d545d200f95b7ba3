package memory

import (
	"context"
	"strings"
	"time"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

type businessRepository struct{ s *Store }

func (s *Store) Businesses() repository.BusinessRepository { return &businessRepository{s: s} }

func (r *businessRepository) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	err := r.s.begin("businesses.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, b := find(r.s.data.businesses, func(b *domain.Business) bool { return b.ID == id })
	if b == nil {
		return nil, errors.ErrBusinessNotFound
	}
	return clone(b), nil
}

// GetForUpdate - транзакции стора уже сериализованы, отдельная блокировка не нужна
func (r *businessRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Business, error) {
	return r.GetByID(ctx, id)
}

func (r *businessRepository) GetByExternalPlaceID(_ context.Context, externalPlaceID string) (*domain.Business, error) {
	err := r.s.begin("businesses.GetByExternalPlaceID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, b := find(r.s.data.businesses, func(b *domain.Business) bool {
		return b.ExternalPlaceID != nil && *b.ExternalPlaceID == externalPlaceID
	})
	if b == nil {
		return nil, nil
	}
	return clone(b), nil
}

func (r *businessRepository) List(_ context.Context) ([]*domain.Business, error) {
	err := r.s.begin("businesses.List")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return cloneAll(r.s.data.businesses), nil
}

func (r *businessRepository) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Business, error) {
	err := r.s.begin("businesses.ListByOwner")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.businesses, func(b *domain.Business) bool {
		return b.OwnerID != nil && *b.OwnerID == ownerID
	}), nil
}

func (r *businessRepository) Create(_ context.Context, b *domain.Business) error {
	err := r.s.begin("businesses.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	b.ID = r.s.nextID("businesses")
	b.UpdatedAt = b.CreatedAt
	r.s.data.businesses = append(r.s.data.businesses, clone(b))
	return nil
}

func (r *businessRepository) Update(_ context.Context, b *domain.Business) error {
	err := r.s.begin("businesses.Update")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	i, stored := find(r.s.data.businesses, func(x *domain.Business) bool { return x.ID == b.ID })
	if i < 0 {
		return errors.ErrBusinessNotFound
	}
	b.OwnerID, b.Claimed = stored.OwnerID, stored.Claimed
	r.s.data.businesses[i] = clone(b)
	return nil
}

func (r *businessRepository) SetOwner(_ context.Context, id, ownerID int64, at time.Time) error {
	err := r.s.begin("businesses.SetOwner")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	_, b := find(r.s.data.businesses, func(b *domain.Business) bool { return b.ID == id })
	if b == nil {
		return errors.ErrBusinessNotFound
	}
	b.Claim(ownerID)
	b.UpdatedAt = at
	return nil
}

func (r *businessRepository) Count(_ context.Context) (int, error) {
	err := r.s.begin("businesses.Count")
	defer r.s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return len(r.s.data.businesses), nil
}

type categoryRepository struct{ s *Store }

func (s *Store) Categories() repository.CategoryRepository { return &categoryRepository{s: s} }

func (r *categoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	err := r.s.begin("categories.List")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return cloneAll(r.s.data.categories), nil
}

func (r *categoryRepository) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	err := r.s.begin("categories.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, c := find(r.s.data.categories, func(c *domain.Category) bool { return c.ID == id })
	if c == nil {
		return nil, errors.ErrCategoryNotFound
	}
	return clone(c), nil
}

func (r *categoryRepository) GetByName(_ context.Context, name string) (*domain.Category, error) {
	err := r.s.begin("categories.GetByName")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, c := find(r.s.data.categories, func(c *domain.Category) bool { return strings.EqualFold(c.Name, name) })
	if c == nil {
		return nil, errors.ErrCategoryNotFound
	}
	return clone(c), nil
}

func (r *categoryRepository) Create(_ context.Context, c *domain.Category) error {
	err := r.s.begin("categories.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	if i, _ := find(r.s.data.categories, func(x *domain.Category) bool { return strings.EqualFold(x.Name, c.Name) }); i >= 0 {
		return errors.ErrCategoryExists
	}
	c.ID = r.s.nextID("categories")
	r.s.data.categories = append(r.s.data.categories, clone(c))
	return nil
}

func (r *categoryRepository) Count(_ context.Context) (int, error) {
	err := r.s.begin("categories.Count")
	defer r.s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return len(r.s.data.categories), nil
}
