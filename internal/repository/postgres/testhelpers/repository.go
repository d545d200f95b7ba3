package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/repository/postgres"
)

// Repositories - все репозитории поверх одной тестовой БД
type Repositories struct {
	Transactor    repository.Transactor
	Businesses    repository.BusinessRepository
	Categories    repository.CategoryRepository
	Users         repository.UserRepository
	Claims        repository.ClaimRepository
	Itineraries   repository.ItineraryRepository
	Days          repository.ItineraryDayRepository
	Items         repository.ItineraryItemRepository
	Collaborators repository.CollaboratorRepository
	Bookings      repository.TransportBookingRepository
}

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRepositoriesForTest creates every repository with test database and logger
func NewRepositoriesForTest(db *sqlx.DB, logger *zap.Logger) *Repositories {
	pgDB := NewDBForTest(db, logger)
	return &Repositories{
		Transactor:    postgres.NewTransactor(pgDB),
		Businesses:    postgres.NewBusinessRepository(pgDB),
		Categories:    postgres.NewCategoryRepository(pgDB),
		Users:         postgres.NewUserRepository(pgDB),
		Claims:        postgres.NewClaimRepository(pgDB),
		Itineraries:   postgres.NewItineraryRepository(pgDB),
		Days:          postgres.NewItineraryDayRepository(pgDB),
		Items:         postgres.NewItineraryItemRepository(pgDB),
		Collaborators: postgres.NewCollaboratorRepository(pgDB),
		Bookings:      postgres.NewTransportBookingRepository(pgDB),
	}
}
