package memory

import (
	"context"
	"sort"
	"time"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

type itineraryRepository struct{ s *Store }

func (s *Store) Itineraries() repository.ItineraryRepository { return &itineraryRepository{s: s} }

func (r *itineraryRepository) Create(_ context.Context, it *domain.Itinerary) error {
	err := r.s.begin("itineraries.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	it.ID = r.s.nextID("itineraries")
	it.UpdatedAt = it.CreatedAt
	r.s.data.itineraries = append(r.s.data.itineraries, clone(it))
	return nil
}

func (r *itineraryRepository) GetByID(_ context.Context, id int64) (*domain.Itinerary, error) {
	err := r.s.begin("itineraries.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, it := find(r.s.data.itineraries, func(it *domain.Itinerary) bool { return it.ID == id })
	if it == nil {
		return nil, errors.ErrItineraryNotFound
	}
	return clone(it), nil
}

func (r *itineraryRepository) ListByUser(_ context.Context, userID int64) ([]*domain.Itinerary, error) {
	err := r.s.begin("itineraries.ListByUser")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.itineraries, func(it *domain.Itinerary) bool { return it.UserID == userID }), nil
}

func (r *itineraryRepository) ListPublic(_ context.Context) ([]*domain.Itinerary, error) {
	err := r.s.begin("itineraries.ListPublic")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.itineraries, func(it *domain.Itinerary) bool { return it.IsPublic }), nil
}

func (r *itineraryRepository) Update(_ context.Context, it *domain.Itinerary) error {
	err := r.s.begin("itineraries.Update")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	i, _ := find(r.s.data.itineraries, func(x *domain.Itinerary) bool { return x.ID == it.ID })
	if i < 0 {
		return errors.ErrItineraryNotFound
	}
	r.s.data.itineraries[i] = clone(it)
	return nil
}

func (r *itineraryRepository) Delete(_ context.Context, id int64) error {
	err := r.s.begin("itineraries.Delete")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	var n int64
	r.s.data.itineraries, n = removeWhere(r.s.data.itineraries, func(it *domain.Itinerary) bool { return it.ID == id })
	if n == 0 {
		return errors.ErrItineraryNotFound
	}
	return nil
}

func (r *itineraryRepository) Touch(_ context.Context, id int64, at time.Time) error {
	err := r.s.begin("itineraries.Touch")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	_, it := find(r.s.data.itineraries, func(it *domain.Itinerary) bool { return it.ID == id })
	if it == nil {
		return errors.ErrItineraryNotFound
	}
	it.UpdatedAt = at
	return nil
}

type dayRepository struct{ s *Store }

func (s *Store) Days() repository.ItineraryDayRepository { return &dayRepository{s: s} }

func (r *dayRepository) Create(_ context.Context, d *domain.ItineraryDay) error {
	err := r.s.begin("days.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	d.ID = r.s.nextID("days")
	r.s.data.days = append(r.s.data.days, clone(d))
	return nil
}

func (r *dayRepository) GetByID(_ context.Context, id int64) (*domain.ItineraryDay, error) {
	err := r.s.begin("days.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, d := find(r.s.data.days, func(d *domain.ItineraryDay) bool { return d.ID == id })
	if d == nil {
		return nil, errors.ErrDayNotFound
	}
	return clone(d), nil
}

func (r *dayRepository) ListByItinerary(_ context.Context, itineraryID int64) ([]*domain.ItineraryDay, error) {
	err := r.s.begin("days.ListByItinerary")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	days := filter(r.s.data.days, func(d *domain.ItineraryDay) bool { return d.ItineraryID == itineraryID })
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })
	return days, nil
}

func (r *dayRepository) Update(_ context.Context, d *domain.ItineraryDay) error {
	err := r.s.begin("days.Update")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	i, _ := find(r.s.data.days, func(x *domain.ItineraryDay) bool { return x.ID == d.ID })
	if i < 0 {
		return errors.ErrDayNotFound
	}
	r.s.data.days[i] = clone(d)
	return nil
}

func (r *dayRepository) Delete(_ context.Context, id int64) error {
	err := r.s.begin("days.Delete")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	var n int64
	r.s.data.days, n = removeWhere(r.s.data.days, func(d *domain.ItineraryDay) bool { return d.ID == id })
	if n == 0 {
		return errors.ErrDayNotFound
	}
	return nil
}

type itemRepository struct{ s *Store }

func (s *Store) Items() repository.ItineraryItemRepository { return &itemRepository{s: s} }

func (r *itemRepository) Create(_ context.Context, it *domain.ItineraryItem) error {
	err := r.s.begin("items.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	it.ID = r.s.nextID("items")
	it.UpdatedAt = it.CreatedAt
	r.s.data.items = append(r.s.data.items, clone(it))
	return nil
}

func (r *itemRepository) GetByID(_ context.Context, id int64) (*domain.ItineraryItem, error) {
	err := r.s.begin("items.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, it := find(r.s.data.items, func(it *domain.ItineraryItem) bool { return it.ID == id })
	if it == nil {
		return nil, errors.ErrItemNotFound
	}
	return clone(it), nil
}

func (r *itemRepository) ListByDay(_ context.Context, dayID int64) ([]*domain.ItineraryItem, error) {
	err := r.s.begin("items.ListByDay")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.items, func(it *domain.ItineraryItem) bool { return it.DayID == dayID }), nil
}

func (r *itemRepository) Update(_ context.Context, it *domain.ItineraryItem) error {
	err := r.s.begin("items.Update")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	i, _ := find(r.s.data.items, func(x *domain.ItineraryItem) bool { return x.ID == it.ID })
	if i < 0 {
		return errors.ErrItemNotFound
	}
	r.s.data.items[i] = clone(it)
	return nil
}

func (r *itemRepository) Delete(_ context.Context, id int64) error {
	err := r.s.begin("items.Delete")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	var n int64
	r.s.data.items, n = removeWhere(r.s.data.items, func(it *domain.ItineraryItem) bool { return it.ID == id })
	if n == 0 {
		return errors.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) DeleteByDay(_ context.Context, dayID int64) (int64, error) {
	err := r.s.begin("items.DeleteByDay")
	defer r.s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	var n int64
	r.s.data.items, n = removeWhere(r.s.data.items, func(it *domain.ItineraryItem) bool { return it.DayID == dayID })
	return n, nil
}

type collaboratorRepository struct{ s *Store }

func (s *Store) Collaborators() repository.CollaboratorRepository { return &collaboratorRepository{s: s} }

func sameCollaborator(itineraryID int64, email string) func(*domain.Collaborator) bool {
	return func(c *domain.Collaborator) bool { return c.ItineraryID == itineraryID && c.Email == email }
}

func (r *collaboratorRepository) Create(_ context.Context, c *domain.Collaborator) error {
	err := r.s.begin("collaborators.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	if i, _ := find(r.s.data.collaborators, sameCollaborator(c.ItineraryID, c.Email)); i >= 0 {
		return errors.ErrCollaboratorExists
	}
	r.s.data.collaborators = append(r.s.data.collaborators, clone(c))
	return nil
}

func (r *collaboratorRepository) Get(_ context.Context, itineraryID int64, email string) (*domain.Collaborator, error) {
	err := r.s.begin("collaborators.Get")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, c := find(r.s.data.collaborators, sameCollaborator(itineraryID, email))
	if c == nil {
		return nil, nil
	}
	return clone(c), nil
}

func (r *collaboratorRepository) ListByItinerary(_ context.Context, itineraryID int64) ([]*domain.Collaborator, error) {
	err := r.s.begin("collaborators.ListByItinerary")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.collaborators, func(c *domain.Collaborator) bool { return c.ItineraryID == itineraryID }), nil
}

func (r *collaboratorRepository) Update(_ context.Context, c *domain.Collaborator) error {
	err := r.s.begin("collaborators.Update")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	i, _ := find(r.s.data.collaborators, sameCollaborator(c.ItineraryID, c.Email))
	if i < 0 {
		return errors.ErrCollaboratorNotFound
	}
	r.s.data.collaborators[i] = clone(c)
	return nil
}

func (r *collaboratorRepository) Delete(_ context.Context, itineraryID int64, email string) error {
	err := r.s.begin("collaborators.Delete")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	var n int64
	r.s.data.collaborators, n = removeWhere(r.s.data.collaborators, sameCollaborator(itineraryID, email))
	if n == 0 {
		return errors.ErrCollaboratorNotFound
	}
	return nil
}

func (r *collaboratorRepository) DeleteByItinerary(_ context.Context, itineraryID int64) (int64, error) {
	err := r.s.begin("collaborators.DeleteByItinerary")
	defer r.s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	var n int64
	r.s.data.collaborators, n = removeWhere(r.s.data.collaborators, func(c *domain.Collaborator) bool {
		return c.ItineraryID == itineraryID
	})
	return n, nil
}

type bookingRepository struct{ s *Store }

func (s *Store) Bookings() repository.TransportBookingRepository { return &bookingRepository{s: s} }

func (r *bookingRepository) Create(_ context.Context, b *domain.TransportBooking) error {
	err := r.s.begin("bookings.Create")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	b.ID = r.s.nextID("bookings")
	b.UpdatedAt = b.CreatedAt
	r.s.data.bookings = append(r.s.data.bookings, clone(b))
	return nil
}

func (r *bookingRepository) GetByID(_ context.Context, id int64) (*domain.TransportBooking, error) {
	err := r.s.begin("bookings.GetByID")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	_, b := find(r.s.data.bookings, func(b *domain.TransportBooking) bool { return b.ID == id })
	if b == nil {
		return nil, errors.ErrBookingNotFound
	}
	return clone(b), nil
}

func (r *bookingRepository) ListByUser(_ context.Context, userID int64) ([]*domain.TransportBooking, error) {
	err := r.s.begin("bookings.ListByUser")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.bookings, func(b *domain.TransportBooking) bool { return b.UserID == userID }), nil
}

func (r *bookingRepository) ListByItinerary(_ context.Context, itineraryID int64) ([]*domain.TransportBooking, error) {
	err := r.s.begin("bookings.ListByItinerary")
	defer r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return filter(r.s.data.bookings, func(b *domain.TransportBooking) bool {
		return b.ItineraryID != nil && *b.ItineraryID == itineraryID
	}), nil
}

func (r *bookingRepository) Update(_ context.Context, b *domain.TransportBooking) error {
	err := r.s.begin("bookings.Update")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	i, stored := find(r.s.data.bookings, func(x *domain.TransportBooking) bool { return x.ID == b.ID })
	if i < 0 {
		return errors.ErrBookingNotFound
	}
	b.Status = stored.Status
	r.s.data.bookings[i] = clone(b)
	return nil
}

func (r *bookingRepository) UpdateStatus(_ context.Context, b *domain.TransportBooking, from domain.BookingStatus) error {
	err := r.s.begin("bookings.UpdateStatus")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	_, stored := find(r.s.data.bookings, func(x *domain.TransportBooking) bool { return x.ID == b.ID })
	if stored == nil {
		return errors.ErrBookingNotFound
	}
	if stored.Status != from {
		return errors.ErrInvalidStatusTransition.WithDetails(map[string]interface{}{
			"from": stored.Status,
			"to":   b.Status,
		})
	}
	stored.Status = b.Status
	stored.ConfirmationCode = b.ConfirmationCode
	stored.UpdatedAt = b.UpdatedAt
	return nil
}

func (r *bookingRepository) Delete(_ context.Context, id int64) error {
	err := r.s.begin("bookings.Delete")
	defer r.s.mu.Unlock()
	if err != nil {
		return err
	}
	var n int64
	r.s.data.bookings, n = removeWhere(r.s.data.bookings, func(b *domain.TransportBooking) bool { return b.ID == id })
	if n == 0 {
		return errors.ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) DetachFromItinerary(_ context.Context, itineraryID int64) (int64, error) {
	err := r.s.begin("bookings.DetachFromItinerary")
	defer r.s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, b := range r.s.data.bookings {
		if b.ItineraryID != nil && *b.ItineraryID == itineraryID {
			b.ItineraryID = nil
			n++
		}
	}
	return n, nil
}
