package usecase

import (
	"context"
	"strings"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/usecase/dto"
)

// normalizeEmail - участники различаются по email без учёта регистра
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *ItineraryUseCase) ListCollaborators(ctx context.Context, itineraryID int64) ([]*domain.Collaborator, error) {
	if _, err := uc.itineraries.GetByID(ctx, itineraryID); err != nil {
		return nil, err
	}
	return uc.collaborators.ListByItinerary(ctx, itineraryID)
}

// AddCollaborator rejects a second row for the same (itinerary, email);
// access level defaults to view and invite status to pending.
func (uc *ItineraryUseCase) AddCollaborator(ctx context.Context, itineraryID int64, req dto.AddCollaboratorRequest) (*domain.Collaborator, error) {
	c := &domain.Collaborator{
		ItineraryID:  itineraryID,
		Email:        normalizeEmail(req.Email),
		Name:         req.Name,
		AccessLevel:  domain.AccessView,
		InviteStatus: domain.InvitePending,
	}
	if req.AccessLevel != "" {
		c.AccessLevel = domain.AccessLevel(req.AccessLevel)
	}
	if req.InviteStatus != "" {
		c.InviteStatus = domain.InviteStatus(req.InviteStatus)
	}

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.itineraries.GetByID(ctx, itineraryID); err != nil {
			return err
		}

		existing, err := uc.collaborators.Get(ctx, itineraryID, c.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrCollaboratorExists
		}

		now := uc.now()
		c.CreatedAt = now
		if err := uc.collaborators.Create(ctx, c); err != nil {
			return err
		}
		return uc.itineraries.Touch(ctx, itineraryID, now)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ItineraryUseCase) UpdateCollaborator(ctx context.Context, itineraryID int64, email string, req dto.UpdateCollaboratorRequest) (*domain.Collaborator, error) {
	var c *domain.Collaborator
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if c, err = uc.findCollaborator(ctx, itineraryID, email); err != nil {
			return err
		}

		if req.Name != nil {
			c.Name = req.Name
		}
		if req.AccessLevel != nil {
			c.AccessLevel = domain.AccessLevel(*req.AccessLevel)
		}
		if req.InviteStatus != nil {
			c.InviteStatus = domain.InviteStatus(*req.InviteStatus)
		}

		if err := uc.collaborators.Update(ctx, c); err != nil {
			return err
		}
		return uc.itineraries.Touch(ctx, itineraryID, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ItineraryUseCase) RemoveCollaborator(ctx context.Context, itineraryID int64, email string) error {
	return uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := uc.findCollaborator(ctx, itineraryID, email)
		if err != nil {
			return err
		}
		if err := uc.collaborators.Delete(ctx, itineraryID, c.Email); err != nil {
			return err
		}
		return uc.itineraries.Touch(ctx, itineraryID, uc.now())
	})
}

func (uc *ItineraryUseCase) findCollaborator(ctx context.Context, itineraryID int64, email string) (*domain.Collaborator, error) {
	c, err := uc.collaborators.Get(ctx, itineraryID, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.ErrCollaboratorNotFound
	}
	return c, nil
}
