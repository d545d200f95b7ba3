package postgres_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/repository/postgres/testhelpers"
)

// RepositorySuite tests the PostgreSQL repositories with real database
type RepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repos  *testhelpers.Repositories
	ctx    context.Context
	now    time.Time
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

// SetupSuite runs once before all tests
func (s *RepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repos = testhelpers.NewRepositoriesForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests
func (s *RepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *RepositorySuite) createUser(name string) *domain.User {
	u := &domain.User{
		Username: name, Email: name + "@example.com", PasswordHash: "hash",
		Role: domain.RoleTourist, CreatedAt: s.now,
	}
	s.Require().NoError(s.repos.Users.Create(s.ctx, u))
	return u
}

func (s *RepositorySuite) createBusiness(name string) *domain.Business {
	cat := &domain.Category{Name: "Restaurants-" + name, Icon: "utensils"}
	s.Require().NoError(s.repos.Categories.Create(s.ctx, cat))

	b := &domain.Business{
		Name: name, Description: "desc", Latitude: -1.29, Longitude: 36.82,
		CategoryID: cat.ID, Rating: utils.Ptr(4.6), PriceLevel: utils.Ptr(45),
		Amenities: []string{"wifi", "parking"}, Tags: []string{"wheelchair"},
		CreatedAt: s.now,
	}
	s.Require().NoError(s.repos.Businesses.Create(s.ctx, b))
	return b
}

func (s *RepositorySuite) createItinerary(userID int64) *domain.Itinerary {
	it := &domain.Itinerary{
		UserID: userID, Title: "Kenya trip",
		StartDate: domain.NewDate(s.now), EndDate: domain.NewDate(s.now.AddDate(0, 0, 5)),
		CreatedAt: s.now,
	}
	s.Require().NoError(s.repos.Itineraries.Create(s.ctx, it))
	return it
}

// ============================================================================
// Businesses
// ============================================================================

func (s *RepositorySuite) TestBusiness_CreateAndGet() {
	b := s.createBusiness("Boma Restaurant")

	got, err := s.repos.Businesses.GetByID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal("Boma Restaurant", got.Name)
	s.Equal([]string{"wifi", "parking"}, got.Amenities)
	s.Equal([]string{}, got.Images)
	s.Require().NotNil(got.Rating)
	s.InDelta(4.6, *got.Rating, 1e-9)
	s.False(got.Claimed)
}

func (s *RepositorySuite) TestBusiness_GetByID_NotFound() {
	_, err := s.repos.Businesses.GetByID(s.ctx, 999999)
	s.True(errors.Is(err, errors.ErrBusinessNotFound))
}

func (s *RepositorySuite) TestBusiness_ListKeepsInsertionOrder() {
	first := s.createBusiness("First")
	second := s.createBusiness("Second")

	list, err := s.repos.Businesses.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)
}

func (s *RepositorySuite) loadCatalog() {
	s.Require().NoError(testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata", []string{"catalog.sql"}))
}

func (s *RepositorySuite) TestBusiness_GetByExternalPlaceID() {
	s.loadCatalog()
	id, err := testhelpers.GetBusinessIDByExternalID(s.testDB.DB.DB, "osm:node/boma")
	s.Require().NoError(err)

	got, err := s.repos.Businesses.GetByExternalPlaceID(s.ctx, "osm:node/boma")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(id, got.ID)
	s.Equal("Boma Restaurant", got.Name)

	missing, err := s.repos.Businesses.GetByExternalPlaceID(s.ctx, "osm:node/unknown")
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestBusiness_UpdateLeavesOwnership() {
	s.loadCatalog()
	id, err := testhelpers.GetBusinessIDByExternalID(s.testDB.DB.DB, "osm:node/giraffe")
	s.Require().NoError(err)

	b, err := s.repos.Businesses.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Require().True(b.Claimed)
	ownerID := *b.OwnerID

	// Снимок, прочитанный до одобрения заявки
	b.OwnerID = nil
	b.Claimed = false
	b.Phone = utils.Ptr("+254 20 890 952")
	b.UpdatedAt = s.now
	s.Require().NoError(s.repos.Businesses.Update(s.ctx, b))
	s.True(b.Claimed)
	s.Require().NotNil(b.OwnerID)
	s.Equal(ownerID, *b.OwnerID)

	got, err := s.repos.Businesses.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.True(got.Claimed)
	s.Require().NotNil(got.OwnerID)
	s.Equal(ownerID, *got.OwnerID)
	s.Require().NotNil(got.Phone)
	s.Equal("+254 20 890 952", *got.Phone)
}

func (s *RepositorySuite) TestBusiness_UpdateMissing() {
	b := &domain.Business{ID: 999999, Name: "Ghost", CategoryID: 1, UpdatedAt: s.now}
	err := s.repos.Businesses.Update(s.ctx, b)
	s.True(errors.Is(err, errors.ErrBusinessNotFound))
}

func (s *RepositorySuite) TestBusiness_GetForUpdateInTransaction() {
	s.loadCatalog()
	id, err := testhelpers.GetBusinessIDByExternalID(s.testDB.DB.DB, "osm:node/boma")
	s.Require().NoError(err)

	err = s.repos.Transactor.WithinTransaction(s.ctx, func(ctx context.Context) error {
		b, err := s.repos.Businesses.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		b.City = "Nairobi CBD"
		return s.repos.Businesses.Update(ctx, b)
	})
	s.Require().NoError(err)

	got, err := s.repos.Businesses.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Nairobi CBD", got.City)
	s.False(got.Claimed)
}

func (s *RepositorySuite) TestCategory_GetByNameIgnoresCase() {
	c := &domain.Category{Name: "Hotels", Icon: "bed"}
	s.Require().NoError(s.repos.Categories.Create(s.ctx, c))

	got, err := s.repos.Categories.GetByName(s.ctx, "hOTELS")
	s.Require().NoError(err)
	s.Equal(c.ID, got.ID)
}

// ============================================================================
// Claims
// ============================================================================

func (s *RepositorySuite) TestClaim_OnePendingPerBusiness() {
	b := s.createBusiness("Claimable")
	u1 := s.createUser("owner1")
	u2 := s.createUser("owner2")

	c1 := &domain.ClaimRequest{BusinessID: b.ID, UserID: u1.ID, Status: domain.ClaimPending, CreatedAt: s.now}
	s.Require().NoError(s.repos.Claims.Create(s.ctx, c1))

	c2 := &domain.ClaimRequest{BusinessID: b.ID, UserID: u2.ID, Status: domain.ClaimPending, CreatedAt: s.now}
	err := s.repos.Claims.Create(s.ctx, c2)
	s.True(errors.Is(err, errors.ErrClaimAlreadyPending))
}

func (s *RepositorySuite) TestClaim_ResolveOnlyOnce() {
	b := s.createBusiness("Claimable")
	u := s.createUser("owner")
	c := &domain.ClaimRequest{BusinessID: b.ID, UserID: u.ID, Status: domain.ClaimPending, CreatedAt: s.now}
	s.Require().NoError(s.repos.Claims.Create(s.ctx, c))

	s.Require().NoError(s.repos.Claims.Resolve(s.ctx, c.ID, domain.ClaimApproved, s.now))

	err := s.repos.Claims.Resolve(s.ctx, c.ID, domain.ClaimRejected, s.now)
	s.True(errors.Is(err, errors.ErrClaimNotPending))

	err = s.repos.Claims.Resolve(s.ctx, 999999, domain.ClaimRejected, s.now)
	s.True(errors.Is(err, errors.ErrClaimNotFound))
}

// ============================================================================
// Itinerary aggregate
// ============================================================================

func (s *RepositorySuite) TestItinerary_TouchUpdatesTimestamp() {
	u := s.createUser("traveller")
	it := s.createItinerary(u.ID)

	later := s.now.Add(time.Hour)
	s.Require().NoError(s.repos.Itineraries.Touch(s.ctx, it.ID, later))

	got, err := s.repos.Itineraries.GetByID(s.ctx, it.ID)
	s.Require().NoError(err)
	s.True(got.UpdatedAt.Equal(later))
	s.Equal(it.StartDate.String(), got.StartDate.String())
}

func (s *RepositorySuite) TestItem_DetailsRoundTrip() {
	u := s.createUser("traveller")
	it := s.createItinerary(u.ID)
	day := &domain.ItineraryDay{ItineraryID: it.ID, DayNumber: 1, Date: it.StartDate, CreatedAt: s.now}
	s.Require().NoError(s.repos.Days.Create(s.ctx, day))

	withDetails := &domain.ItineraryItem{
		DayID: day.ID, Type: domain.ItemTransportation, Title: "Airport pickup",
		StartTime: utils.Ptr("09:30"), Details: json.RawMessage(`{"pickup":"JKIA"}`), CreatedAt: s.now,
	}
	plain := &domain.ItineraryItem{DayID: day.ID, Type: domain.ItemCustom, Title: "Free time", CreatedAt: s.now}
	s.Require().NoError(s.repos.Items.Create(s.ctx, withDetails))
	s.Require().NoError(s.repos.Items.Create(s.ctx, plain))

	items, err := s.repos.Items.ListByDay(s.ctx, day.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.JSONEq(`{"pickup":"JKIA"}`, string(items[0].Details))
	s.Equal("09:30", *items[0].StartTime)
	s.Nil(items[1].Details)
}

func (s *RepositorySuite) TestCollaborator_DuplicateRejected() {
	u := s.createUser("traveller")
	it := s.createItinerary(u.ID)

	c := &domain.Collaborator{
		ItineraryID: it.ID, Email: "friend@example.com",
		AccessLevel: domain.AccessView, InviteStatus: domain.InvitePending, CreatedAt: s.now,
	}
	s.Require().NoError(s.repos.Collaborators.Create(s.ctx, c))

	err := s.repos.Collaborators.Create(s.ctx, c)
	s.True(errors.Is(err, errors.ErrCollaboratorExists))

	missing, err := s.repos.Collaborators.Get(s.ctx, it.ID, "nobody@example.com")
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestTransactor_RollbackOnError() {
	u := s.createUser("traveller")
	it := s.createItinerary(u.ID)
	day := &domain.ItineraryDay{ItineraryID: it.ID, DayNumber: 1, Date: it.StartDate, CreatedAt: s.now}
	s.Require().NoError(s.repos.Days.Create(s.ctx, day))

	boom := stderrors.New("boom")
	err := s.repos.Transactor.WithinTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.repos.Days.Delete(ctx, day.ID); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.repos.Days.GetByID(s.ctx, day.ID)
	s.NoError(err, "day must survive rolled back transaction")
}

func (s *RepositorySuite) TestTransportBooking_DetachFromItinerary() {
	u := s.createUser("traveller")
	it := s.createItinerary(u.ID)

	b := &domain.TransportBooking{
		UserID: u.ID, ItineraryID: &it.ID, ServiceType: domain.ServiceTaxi,
		BookingDate: it.StartDate, PickupLocation: "Hotel", Passengers: 2,
		Status: domain.BookingPending, PaymentStatus: domain.PaymentUnpaid, CreatedAt: s.now,
	}
	s.Require().NoError(s.repos.Bookings.Create(s.ctx, b))

	n, err := s.repos.Bookings.DetachFromItinerary(s.ctx, it.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	got, err := s.repos.Bookings.GetByID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Nil(got.ItineraryID)

	s.Require().NoError(s.repos.Itineraries.Delete(s.ctx, it.ID))
}

func (s *RepositorySuite) TestTransportBooking_StatusWriteIsConditional() {
	u := s.createUser("traveller")
	b := &domain.TransportBooking{
		UserID: u.ID, ServiceType: domain.ServiceShuttle, BookingDate: domain.NewDate(s.now),
		PickupLocation: "JKIA", Passengers: 1,
		Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid, CreatedAt: s.now,
	}
	s.Require().NoError(s.repos.Bookings.Create(s.ctx, b))
	stale, err := s.repos.Bookings.GetByID(s.ctx, b.ID)
	s.Require().NoError(err)

	done := *stale
	done.Status = domain.BookingCompleted
	done.UpdatedAt = s.now.Add(time.Hour)
	s.Require().NoError(s.repos.Bookings.UpdateStatus(s.ctx, &done, domain.BookingConfirmed))

	// Второй запрос всё ещё видит confirmed
	stale.Status = domain.BookingCancelled
	stale.UpdatedAt = s.now.Add(2 * time.Hour)
	err = s.repos.Bookings.UpdateStatus(s.ctx, stale, domain.BookingConfirmed)
	s.True(errors.Is(err, errors.ErrInvalidStatusTransition))

	// Обычный Update не возвращает старый статус
	stale.Passengers = 4
	s.Require().NoError(s.repos.Bookings.Update(s.ctx, stale))
	s.Equal(domain.BookingCompleted, stale.Status)

	got, err := s.repos.Bookings.GetByID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(domain.BookingCompleted, got.Status)
	s.Equal(4, got.Passengers)

	missing := &domain.TransportBooking{ID: 999999, Status: domain.BookingCancelled}
	err = s.repos.Bookings.UpdateStatus(s.ctx, missing, domain.BookingPending)
	s.True(errors.Is(err, errors.ErrBookingNotFound))
}
