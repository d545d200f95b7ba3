package memory

import (
	"context"
	"strings"
	"time"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

type userRepository struct{ s *Store }

func (s *Store) Users() repository.UserRepository { return &userRepository{s: s} }

func (r *userRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	err := r.s.begin("users.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, u := find(r.s.data.users, func(u *domain.User) bool { return u.ID == id })
	if u == nil {
		return nil, errors.ErrUserNotFound
	}
	return clone(u), nil
}

func (r *userRepository) Exists(_ context.Context, username, email string) (bool, error) {
	err := r.s.begin("users.Exists")
	defer r.s.mu.Unlock()
	if err != nil {
		return false, err
	}
	i, _ := find(r.s.data.users, func(u *domain.User) bool {
		return u.Username == username || strings.EqualFold(u.Email, email)
	})
	return i >= 0, nil
}

func (r *userRepository) Create(_ context.Context, u *domain.User) error {
	err := r.s.begin("users.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	u.ID = r.s.nextID("users")
	r.s.data.users = append(r.s.data.users, clone(u))
	return nil
}

type claimRepository struct{ s *Store }

func (s *Store) Claims() repository.ClaimRepository { return &claimRepository{s: s} }

func (r *claimRepository) Create(_ context.Context, c *domain.ClaimRequest) error {
	err := r.s.begin("claims.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	if c.Status == domain.ClaimPending {
		i, _ := find(r.s.data.claims, func(x *domain.ClaimRequest) bool {
			return x.BusinessID == c.BusinessID && x.Status == domain.ClaimPending
		})
		if i >= 0 {
			return errors.ErrClaimAlreadyPending
		}
	}
	c.ID = r.s.nextID("claims")
	r.s.data.claims = append(r.s.data.claims, clone(c))
	return nil
}

func (r *claimRepository) GetByID(_ context.Context, id int64) (*domain.ClaimRequest, error) {
	err := r.s.begin("claims.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, c := find(r.s.data.claims, func(c *domain.ClaimRequest) bool { return c.ID == id })
	if c == nil {
		return nil, errors.ErrClaimNotFound
	}
	return clone(c), nil
}

func (r *claimRepository) ListByUser(_ context.Context, userID int64) ([]*domain.ClaimRequest, error) {
	err := r.s.begin("claims.ListByUser")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.claims, func(c *domain.ClaimRequest) bool { return c.UserID == userID }), nil
}

func (r *claimRepository) ListByStatus(_ context.Context, status domain.ClaimStatus) ([]*domain.ClaimRequest, error) {
	err := r.s.begin("claims.ListByStatus")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.claims, func(c *domain.ClaimRequest) bool { return c.Status == status }), nil
}

func (r *claimRepository) HasPending(_ context.Context, businessID int64) (bool, error) {
	err := r.s.begin("claims.HasPending")
	defer r.s.mu.Unlock()
	if err != nil {
		return false, err
	}
	i, _ := find(r.s.data.claims, func(c *domain.ClaimRequest) bool {
		return c.BusinessID == businessID && c.Status == domain.ClaimPending
	})
	return i >= 0, nil
}

func (r *claimRepository) Resolve(_ context.Context, id int64, status domain.ClaimStatus, at time.Time) error {
	err := r.s.begin("claims.Resolve")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	_, c := find(r.s.data.claims, func(c *domain.ClaimRequest) bool { return c.ID == id })
	if c == nil {
		return errors.ErrClaimNotFound
	}
	if c.Status != domain.ClaimPending {
		return errors.ErrClaimNotPending
	}
	c.Status = status
	c.ResolvedAt = &at
	return nil
}
