package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tripwise/internal/catalog/cache"
	"tripwise/pkg/config"
	apperrors "tripwise/pkg/errors"
	"tripwise/pkg/geo"
	"tripwise/pkg/model"
	"tripwise/pkg/sanitizer"
)

const (
	MinNearbyRadiusKm = 0.1
	MaxNearbyRadiusKm = 50.0
)

// RestaurantCriteria are matched as case-insensitive predicates combined
// by AND; zero-valued fields impose no constraint.
type RestaurantCriteria struct {
	Location  string
	Cuisine   string
	PriceTier string
	MinRating float64
	Features  []string
}

type FlightCriteria struct {
	Origin      string
	Destination string
	// Date filters by departure day, formatted 2006-01-02.
	Date       string
	CabinClass string
	MaxPrice   float64
}

type HotelCriteria struct {
	City      string
	MinRating float64
	MaxPrice  float64
	Amenities []string
}

type CarCriteria struct {
	City         string
	Category     string
	Transmission string
	MaxPrice     float64
}

type CatalogService interface {
	SearchRestaurants(ctx context.Context, criteria RestaurantCriteria) ([]*model.Restaurant, error)
	NearbyRestaurants(ctx context.Context, lat, lng, radiusKm float64) ([]*model.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error)
	SearchFlights(ctx context.Context, criteria FlightCriteria) ([]*model.Flight, error)
	SearchHotels(ctx context.Context, criteria HotelCriteria) ([]*model.Hotel, error)
	SearchCars(ctx context.Context, criteria CarCriteria) ([]*model.Car, error)
}

type catalogService struct {
	restaurants []*model.Restaurant
	flights     []*model.Flight
	hotels      []*model.Hotel
	cars        []*model.Car
	cache       *cache.Cache
	cfg         *config.Config
}

func NewCatalogService(
	restaurants []*model.Restaurant,
	flights []*model.Flight,
	hotels []*model.Hotel,
	cars []*model.Car,
	searchCache *cache.Cache,
	cfg *config.Config,
) CatalogService {
	return &catalogService{
		restaurants: restaurants,
		flights:     flights,
		hotels:      hotels,
		cars:        cars,
		cache:       searchCache,
		cfg:         cfg,
	}
}

func (s *catalogService) SearchRestaurants(ctx context.Context, criteria RestaurantCriteria) ([]*model.Restaurant, error) {
	if criteria.Location == "" {
		return nil, apperrors.InvalidInput("location is required")
	}
	if criteria.MinRating < 0 || criteria.MinRating > 5 {
		return nil, apperrors.InvalidInput("min_rating must be between 0 and 5")
	}

	key := fmt.Sprintf("catalog:restaurants:%s|%s|%s|%.1f|%s",
		sanitizer.NormalizeQueryTerm(criteria.Location),
		sanitizer.NormalizeQueryTerm(criteria.Cuisine),
		criteria.PriceTier,
		criteria.MinRating,
		strings.Join(criteria.Features, ","),
	)

	var cached []*model.Restaurant
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var results []*model.Restaurant
	for _, r := range s.restaurants {
		if !matchesRestaurant(r, criteria) {
			continue
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})

	s.cache.Set(ctx, key, results)
	return results, nil
}

// NearbyRestaurants filters by great-circle distance and returns results
// nearest first, with the computed distance attached.
func (s *catalogService) NearbyRestaurants(ctx context.Context, lat, lng, radiusKm float64) ([]*model.Restaurant, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, apperrors.InvalidInput("invalid coordinates")
	}
	if radiusKm <= MinNearbyRadiusKm || radiusKm > MaxNearbyRadiusKm {
		return nil, apperrors.InvalidInput(fmt.Sprintf("radius must be in (%.1f, %.1f] km", MinNearbyRadiusKm, MaxNearbyRadiusKm))
	}

	var results []*model.Restaurant
	for _, r := range s.restaurants {
		distance := geo.Distance(lat, lng, r.Location.Coordinates.Latitude, r.Location.Coordinates.Longitude)
		if distance > radiusKm {
			continue
		}
		// Copy before attaching the distance; the seed records are shared.
		near := *r
		near.Distance = distance
		results = append(results, &near)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	return results, nil
}

func (s *catalogService) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.NotFoundWithID("Restaurant", id)
}

func (s *catalogService) SearchFlights(ctx context.Context, criteria FlightCriteria) ([]*model.Flight, error) {
	if criteria.MaxPrice < 0 {
		return nil, apperrors.InvalidInput("max_price cannot be negative")
	}
	if criteria.Date != "" {
		if _, err := time.Parse("2006-01-02", criteria.Date); err != nil {
			return nil, apperrors.InvalidInput("date must be formatted YYYY-MM-DD")
		}
	}

	var results []*model.Flight
	for _, f := range s.flights {
		if !matchesFlight(f, criteria) {
			continue
		}
		results = append(results, f)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})

	return results, nil
}

func (s *catalogService) SearchHotels(ctx context.Context, criteria HotelCriteria) ([]*model.Hotel, error) {
	if criteria.MinRating < 0 || criteria.MinRating > 5 {
		return nil, apperrors.InvalidInput("min_rating must be between 0 and 5")
	}
	if criteria.MaxPrice < 0 {
		return nil, apperrors.InvalidInput("max_price cannot be negative")
	}

	var results []*model.Hotel
	for _, h := range s.hotels {
		if !matchesHotel(h, criteria) {
			continue
		}
		results = append(results, h)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})

	return results, nil
}

func (s *catalogService) SearchCars(ctx context.Context, criteria CarCriteria) ([]*model.Car, error) {
	if criteria.MaxPrice < 0 {
		return nil, apperrors.InvalidInput("max_price cannot be negative")
	}

	var results []*model.Car
	for _, c := range s.cars {
		if !matchesCar(c, criteria) {
			continue
		}
		results = append(results, c)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PricePerDay < results[j].PricePerDay
	})

	return results, nil
}

// --- Predicates ---

func matchesRestaurant(r *model.Restaurant, c RestaurantCriteria) bool {
	if !containsFold(r.Location.City, c.Location) && !containsFold(r.Location.Country, c.Location) {
		return false
	}
	if c.Cuisine != "" && !anyContainsFold(r.CuisineTypes, c.Cuisine) {
		return false
	}
	if c.PriceTier != "" && r.PriceRange != c.PriceTier {
		return false
	}
	if r.Rating < c.MinRating {
		return false
	}
	for _, feature := range c.Features {
		if !anyContainsFold(r.Features, feature) {
			return false
		}
	}
	return true
}

func matchesFlight(f *model.Flight, c FlightCriteria) bool {
	if c.Origin != "" && !strings.EqualFold(f.Origin, c.Origin) {
		return false
	}
	if c.Destination != "" && !strings.EqualFold(f.Destination, c.Destination) {
		return false
	}
	if c.Date != "" && f.DepartureTime.UTC().Format("2006-01-02") != c.Date {
		return false
	}
	if c.CabinClass != "" && !strings.EqualFold(f.CabinClass, c.CabinClass) {
		return false
	}
	if c.MaxPrice > 0 && f.Price > c.MaxPrice {
		return false
	}
	return true
}

func matchesHotel(h *model.Hotel, c HotelCriteria) bool {
	if c.City != "" && !containsFold(h.City, c.City) {
		return false
	}
	if h.Rating < c.MinRating {
		return false
	}
	if c.MaxPrice > 0 && h.PricePerNight > c.MaxPrice {
		return false
	}
	for _, amenity := range c.Amenities {
		if !anyContainsFold(h.Amenities, amenity) {
			return false
		}
	}
	return true
}

func matchesCar(car *model.Car, c CarCriteria) bool {
	if c.City != "" && !containsFold(car.City, c.City) {
		return false
	}
	if c.Category != "" && !strings.EqualFold(car.Category, c.Category) {
		return false
	}
	if c.Transmission != "" && !strings.EqualFold(car.Transmission, c.Transmission) {
		return false
	}
	if c.MaxPrice > 0 && car.PricePerDay > c.MaxPrice {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if containsFold(h, needle) {
			return true
		}
	}
	return false
}
