package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase/dto"
)

type seedBusiness struct {
	name, description, address, city string
	lat, lon                         float64
	category                         string
	rating                           float64
	priceLevel                       int
	tags, amenities                  []string
}

var seedCategories = []domain.Category{
	{Name: "Hotels", Icon: "hotel"},
	{Name: "Restaurants", Icon: "utensils"},
	{Name: "Attractions", Icon: "landmark"},
	{Name: "Tours", Icon: "map"},
	{Name: "Transport", Icon: "car"},
}

var seedBusinesses = []seedBusiness{
	{
		name: "Sarova Stanley", description: "Historic hotel in the heart of Nairobi",
		address: "Kimathi Street", city: "Nairobi", lat: -1.2841, lon: 36.8233,
		category: "Hotels", rating: 4.5, priceLevel: 180,
		tags: []string{"wheelchair_accessible", "elevator"}, amenities: []string{"wifi", "pool", "restaurant"},
	},
	{
		name: "Boma Restaurant", description: "Nyama choma and Kenyan classics",
		address: "Red Cross Road", city: "Nairobi", lat: -1.2921, lon: 36.8219,
		category: "Restaurants", rating: 4.6, priceLevel: 45,
		tags: []string{"wheelchair_accessible"}, amenities: []string{"wifi", "parking"},
	},
	{
		name: "Giraffe Centre", description: "Feed endangered Rothschild giraffes",
		address: "Duma Road, Langata", city: "Nairobi", lat: -1.3766, lon: 36.7447,
		category: "Attractions", rating: 4.7, priceLevel: 15,
		tags: []string{"family_friendly"}, amenities: []string{"parking", "gift_shop"},
	},
	{
		name: "Nairobi National Park Safari", description: "Half-day game drive minutes from the city",
		address: "Langata Road", city: "Nairobi", lat: -1.3733, lon: 36.8580,
		category: "Tours", rating: 4.8, priceLevel: 120,
		tags: []string{"family_friendly"}, amenities: []string{"guide", "transport"},
	},
	{
		name: "Carnivore Restaurant", description: "Open-fire grill house",
		address: "Langata Road", city: "Nairobi", lat: -1.3275, lon: 36.8064,
		category: "Restaurants", rating: 4.4, priceLevel: 60,
		tags: []string{"wheelchair_accessible"}, amenities: []string{"parking", "bar"},
	},
	{
		name: "Diani Beach Resort", description: "Beachfront resort on the south coast",
		address: "Diani Beach Road", city: "Diani", lat: -4.2797, lon: 39.5947,
		category: "Hotels", rating: 4.3, priceLevel: 220,
		tags: []string{"beachfront"}, amenities: []string{"wifi", "pool", "spa"},
	},
	{
		name: "JKIA Airport Shuttle", description: "Shared shuttle between the airport and city hotels",
		address: "Jomo Kenyatta International Airport", city: "Nairobi", lat: -1.3192, lon: 36.9278,
		category: "Transport", rating: 4.1, priceLevel: 25,
		tags: []string{"wheelchair_accessible"}, amenities: []string{"luggage", "wifi"},
	},
}

const (
	seedUsername = "demo"
	seedEmail    = "demo@example.com"
	seedPassword = "demo1234"
)

// SeedUseCase заполняет пустую базу демо-каталогом
type SeedUseCase struct {
	tx          repository.Transactor
	categories  repository.CategoryRepository
	businesses  repository.BusinessRepository
	users       repository.UserRepository
	itineraries repository.ItineraryRepository
	days        repository.ItineraryDayRepository
	items       repository.ItineraryItemRepository
	logger      *zap.Logger
	now         Clock
}

func NewSeedUseCase(
	tx repository.Transactor,
	categories repository.CategoryRepository,
	businesses repository.BusinessRepository,
	users repository.UserRepository,
	itineraries repository.ItineraryRepository,
	days repository.ItineraryDayRepository,
	items repository.ItineraryItemRepository,
	logger *zap.Logger,
	now Clock,
) *SeedUseCase {
	return &SeedUseCase{
		tx:          tx,
		categories:  categories,
		businesses:  businesses,
		users:       users,
		itineraries: itineraries,
		days:        days,
		items:       items,
		logger:      logger,
		now:         clockOrDefault(now),
	}
}

// Seed inserts the fixture catalog when there are no categories and no
// businesses yet; otherwise it reports the current counts and changes nothing.
func (uc *SeedUseCase) Seed(ctx context.Context) (*dto.SeedResult, error) {
	result := &dto.SeedResult{}
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		categories, err := uc.categories.Count(ctx)
		if err != nil {
			return err
		}
		businesses, err := uc.businesses.Count(ctx)
		if err != nil {
			return err
		}
		if categories > 0 || businesses > 0 {
			result.Categories = categories
			result.Businesses = businesses
			return nil
		}

		ids, err := uc.seedCatalog(ctx)
		if err != nil {
			return err
		}
		if err := uc.seedItinerary(ctx, ids); err != nil {
			return err
		}

		result.Seeded = true
		result.Categories = len(seedCategories)
		result.Businesses = len(seedBusinesses)
		return nil
	})
	if err != nil {
		uc.logger.Error("Failed to seed data", zap.Error(err))
		return nil, err
	}

	if result.Seeded {
		uc.logger.Info("Demo data seeded",
			zap.Int("categories", result.Categories),
			zap.Int("businesses", result.Businesses))
	}
	return result, nil
}

// seedCatalog возвращает ID созданных заведений по имени
func (uc *SeedUseCase) seedCatalog(ctx context.Context) (map[string]int64, error) {
	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, c := range seedCategories {
		c := c
		if err := uc.categories.Create(ctx, &c); err != nil {
			return nil, err
		}
		categoryIDs[c.Name] = c.ID
	}

	now := uc.now()
	businessIDs := make(map[string]int64, len(seedBusinesses))
	for _, s := range seedBusinesses {
		b := &domain.Business{
			Name:        s.name,
			Description: s.description,
			Address:     s.address,
			City:        s.city,
			Latitude:    s.lat,
			Longitude:   s.lon,
			CategoryID:  categoryIDs[s.category],
			Rating:      utils.Ptr(s.rating),
			PriceLevel:  utils.Ptr(s.priceLevel),
			Images:      []string{},
			Tags:        s.tags,
			Amenities:   s.amenities,
			CreatedAt:   now,
		}
		if err := uc.businesses.Create(ctx, b); err != nil {
			return nil, err
		}
		businessIDs[s.name] = b.ID
	}
	return businessIDs, nil
}

func (uc *SeedUseCase) seedItinerary(ctx context.Context, businessIDs map[string]int64) error {
	now := uc.now()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &domain.User{
		Username:     seedUsername,
		Email:        seedEmail,
		PasswordHash: string(hash),
		FullName:     utils.Ptr("Demo Traveller"),
		Role:         domain.RoleTourist,
		CreatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return err
	}

	start, _ := domain.ParseDate("2025-07-10")
	end, _ := domain.ParseDate("2025-07-12")
	it := &domain.Itinerary{
		UserID:      user.ID,
		Title:       "Nairobi Long Weekend",
		Description: utils.Ptr("Giraffes, a game drive and nyama choma"),
		StartDate:   start,
		EndDate:     end,
		IsPublic:    true,
		TotalBudget: utils.Ptr(450.0),
		CreatedAt:   now,
	}
	if err := uc.itineraries.Create(ctx, it); err != nil {
		return err
	}

	plan := []struct {
		offset int
		notes  string
		items  []domain.ItineraryItem
	}{
		{0, "Arrival and city sights", []domain.ItineraryItem{
			{Type: domain.ItemActivity, Title: "Giraffe Centre visit", StartTime: utils.Ptr("10:00"), BusinessID: utils.Ptr(businessIDs["Giraffe Centre"])},
			{Type: domain.ItemActivity, Title: "Dinner at Boma", StartTime: utils.Ptr("19:00"), BusinessID: utils.Ptr(businessIDs["Boma Restaurant"])},
			{Type: domain.ItemAccommodation, Title: "Check in", StartTime: utils.Ptr("14:00"), BusinessID: utils.Ptr(businessIDs["Sarova Stanley"])},
		}},
		{1, "Safari day", []domain.ItineraryItem{
			{Type: domain.ItemActivity, Title: "Morning game drive", StartTime: utils.Ptr("06:30"), BusinessID: utils.Ptr(businessIDs["Nairobi National Park Safari"])},
			{Type: domain.ItemCustom, Title: "Souvenir shopping"},
		}},
	}

	for _, p := range plan {
		date := domain.NewDate(start.AddDate(0, 0, p.offset))
		day := &domain.ItineraryDay{
			ItineraryID: it.ID,
			DayNumber:   it.DayNumber(date),
			Date:        date,
			Notes:       utils.Ptr(p.notes),
			CreatedAt:   now,
		}
		if err := uc.days.Create(ctx, day); err != nil {
			return err
		}
		for _, item := range p.items {
			item := item
			item.DayID = day.ID
			item.CreatedAt = now
			if err := uc.items.Create(ctx, &item); err != nil {
				return err
			}
		}
	}
	return nil
}
