package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/usecase/dto"
)

// ClaimUseCase - заявки на владение заведением.
// pending -> approved | rejected; решённая заявка больше не меняется.
type ClaimUseCase struct {
	tx         repository.Transactor
	claims     repository.ClaimRepository
	businesses repository.BusinessRepository
	users      repository.UserRepository
	logger     *zap.Logger
	now        Clock
}

func NewClaimUseCase(
	tx repository.Transactor,
	claims repository.ClaimRepository,
	businesses repository.BusinessRepository,
	users repository.UserRepository,
	logger *zap.Logger,
	now Clock,
) *ClaimUseCase {
	return &ClaimUseCase{
		tx:         tx,
		claims:     claims,
		businesses: businesses,
		users:      users,
		logger:     logger,
		now:        clockOrDefault(now),
	}
}

// Create opens a pending claim. The business must be unclaimed and have no
// other pending claim.
func (uc *ClaimUseCase) Create(ctx context.Context, req dto.CreateClaimRequest) (*domain.ClaimRequest, error) {
	claim := &domain.ClaimRequest{
		BusinessID:  req.BusinessID,
		UserID:      req.UserID,
		Status:      domain.ClaimPending,
		DocumentURL: req.DocumentURL,
	}

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		b, err := uc.businesses.GetByID(ctx, req.BusinessID)
		if err != nil {
			return err
		}
		if b.Claimed {
			return errors.ErrBusinessAlreadyClaimed
		}
		if _, err := uc.users.GetByID(ctx, req.UserID); err != nil {
			return err
		}

		pending, err := uc.claims.HasPending(ctx, req.BusinessID)
		if err != nil {
			return err
		}
		if pending {
			return errors.ErrClaimAlreadyPending
		}

		claim.CreatedAt = uc.now()
		return uc.claims.Create(ctx, claim)
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// Resolve approves or rejects a pending claim. Approval makes the requester
// the owner of the business in the same transaction.
func (uc *ClaimUseCase) Resolve(ctx context.Context, id int64, req dto.ResolveClaimRequest) (*domain.ClaimRequest, error) {
	target := domain.ClaimStatus(req.Status)

	var claim *domain.ClaimRequest
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if claim, err = uc.claims.GetByID(ctx, id); err != nil {
			return err
		}
		if !claim.CanResolveTo(target) {
			if claim.Status != domain.ClaimPending {
				return errors.ErrClaimNotPending
			}
			return fieldError("status", "oneof", "status must be one of [approved rejected]")
		}

		now := uc.now()
		if err := uc.claims.Resolve(ctx, id, target, now); err != nil {
			return err
		}
		claim.Status = target
		claim.ResolvedAt = &now

		if target != domain.ClaimApproved {
			return nil
		}
		b, err := uc.businesses.GetForUpdate(ctx, claim.BusinessID)
		if err != nil {
			return err
		}
		if b.Claimed {
			return errors.ErrBusinessAlreadyClaimed
		}
		return uc.businesses.SetOwner(ctx, claim.BusinessID, claim.UserID, now)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Claim request resolved",
		zap.Int64("claim_id", id),
		zap.Int64("business_id", claim.BusinessID),
		zap.String("status", string(target)))
	return claim, nil
}

func (uc *ClaimUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.ClaimRequest, error) {
	return uc.claims.ListByUser(ctx, userID)
}

func (uc *ClaimUseCase) ListByStatus(ctx context.Context, status domain.ClaimStatus) ([]*domain.ClaimRequest, error) {
	return uc.claims.ListByStatus(ctx, status)
}
