package service

import (
	"context"
	"io"
	"testing"

	"tripwise/internal/catalog/data"
	"tripwise/pkg/config"
	"tripwise/pkg/logger"
)

func newTestCatalog() CatalogService {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
	cfg := &config.Config{Log: log}
	return NewCatalogService(data.Restaurants(), data.Flights(), data.Hotels(), data.Cars(), nil, cfg)
}

// ────────────────────────────────────────────────
// Restaurant search
// ────────────────────────────────────────────────

func TestSearchRestaurants_RequiresLocation(t *testing.T) {
	svc := newTestCatalog()

	_, err := svc.SearchRestaurants(context.Background(), RestaurantCriteria{})
	if err == nil {
		t.Fatal("expected missing location to be rejected")
	}
}

func TestSearchRestaurants_CriteriaAreANDed(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchRestaurants(context.Background(), RestaurantCriteria{
		Location:  "los angeles",
		Cuisine:   "japanese",
		MinRating: 4.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(results))
	}
	if results[0].ID != "rest-002" {
		t.Errorf("expected rest-002, got %s", results[0].ID)
	}
}

func TestSearchRestaurants_CaseInsensitive(t *testing.T) {
	svc := newTestCatalog()

	lower, err := svc.SearchRestaurants(context.Background(), RestaurantCriteria{Location: "paris"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper, err := svc.SearchRestaurants(context.Background(), RestaurantCriteria{Location: "PARIS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lower) == 0 || len(lower) != len(upper) {
		t.Errorf("case must not affect matching: %d vs %d", len(lower), len(upper))
	}
}

func TestSearchRestaurants_SortedByRatingDescending(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchRestaurants(context.Background(), RestaurantCriteria{Location: "los angeles"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("expected multiple Los Angeles restaurants, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Rating > results[i-1].Rating {
			t.Errorf("results not sorted by rating descending at index %d", i)
		}
	}
}

func TestSearchRestaurants_NoMatchIsEmptyNotError(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchRestaurants(context.Background(), RestaurantCriteria{
		Location: "atlantis",
	})
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no matches, got %d", len(results))
	}
}

func TestSearchRestaurants_PriceTierExactMatch(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchRestaurants(context.Background(), RestaurantCriteria{
		Location:  "los angeles",
		PriceTier: "$",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range results {
		if r.PriceRange != "$" {
			t.Errorf("price tier must match exactly, got %q for %s", r.PriceRange, r.ID)
		}
	}
}

// ────────────────────────────────────────────────
// Proximity search
// ────────────────────────────────────────────────

func TestNearbyRestaurants_ZeroDistanceIncluded(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.NearbyRestaurants(context.Background(), 34.0522, -118.2437, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected the co-located restaurant to be included")
	}
	if results[0].ID != "rest-001" {
		t.Errorf("expected the co-located restaurant first, got %s", results[0].ID)
	}
	if results[0].Distance != 0 {
		t.Errorf("expected distance 0, got %f", results[0].Distance)
	}
}

func TestNearbyRestaurants_WithinRadiusSortedAscending(t *testing.T) {
	svc := newTestCatalog()

	const radius = 10.0
	results, err := svc.NearbyRestaurants(context.Background(), 34.0522, -118.2437, radius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("expected multiple nearby restaurants, got %d", len(results))
	}
	for i, r := range results {
		if r.Distance > radius {
			t.Errorf("%s outside radius: %f km", r.ID, r.Distance)
		}
		if i > 0 && r.Distance < results[i-1].Distance {
			t.Errorf("results not sorted by distance ascending at index %d", i)
		}
		if r.Location.City != "Los Angeles" {
			t.Errorf("unexpected far-away result %s in %s", r.ID, r.Location.City)
		}
	}
}

func TestNearbyRestaurants_RadiusBounds(t *testing.T) {
	svc := newTestCatalog()

	tests := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{"zero", 0, true},
		{"at lower bound", 0.1, true},
		{"just above lower bound", 0.2, false},
		{"upper bound", 50, false},
		{"above upper bound", 50.1, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.NearbyRestaurants(context.Background(), 34.0522, -118.2437, tt.radius)
			if tt.wantErr && err == nil {
				t.Errorf("radius %f must be rejected", tt.radius)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("radius %f must be accepted: %v", tt.radius, err)
			}
		})
	}
}

func TestNearbyRestaurants_RejectsInvalidCoordinates(t *testing.T) {
	svc := newTestCatalog()

	if _, err := svc.NearbyRestaurants(context.Background(), 91, 0, 5); err == nil {
		t.Error("latitude above 90 must be rejected")
	}
	if _, err := svc.NearbyRestaurants(context.Background(), 0, -181, 5); err == nil {
		t.Error("longitude below -180 must be rejected")
	}
}

func TestNearbyRestaurants_DoesNotMutateSeedData(t *testing.T) {
	svc := newTestCatalog()

	if _, err := svc.NearbyRestaurants(context.Background(), 34.0522, -118.2437, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range data.Restaurants() {
		if r.Distance != 0 {
			t.Errorf("seed record %s mutated with distance %f", r.ID, r.Distance)
		}
	}
}

// ────────────────────────────────────────────────
// Restaurant by ID
// ────────────────────────────────────────────────

func TestGetRestaurant(t *testing.T) {
	svc := newTestCatalog()

	r, err := svc.GetRestaurant(context.Background(), "rest-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "The Grand Terrace" {
		t.Errorf("unexpected restaurant: %s", r.Name)
	}

	if _, err := svc.GetRestaurant(context.Background(), "rest-999"); err == nil {
		t.Error("unknown ID must yield an error")
	}
}

// ────────────────────────────────────────────────
// Flights, hotels, cars
// ────────────────────────────────────────────────

func TestSearchFlights_FiltersAndSortsByPrice(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchFlights(context.Background(), FlightCriteria{
		Origin:      "lax",
		Destination: "jfk",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 LAX-JFK flights, got %d", len(results))
	}
	if results[0].Price > results[1].Price {
		t.Error("flights not sorted by price ascending")
	}
}

func TestSearchFlights_MaxPrice(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchFlights(context.Background(), FlightCriteria{MaxPrice: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range results {
		if f.Price > 100 {
			t.Errorf("flight %s exceeds max price: %f", f.ID, f.Price)
		}
	}
	if len(results) == 0 {
		t.Error("expected at least one flight under 100")
	}
}

func TestSearchFlights_DepartureDate(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchFlights(context.Background(), FlightCriteria{
		Origin: "LAX",
		Date:   "2026-10-14",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected departures on the scheduled day")
	}
	for _, f := range results {
		if got := f.DepartureTime.UTC().Format("2006-01-02"); got != "2026-10-14" {
			t.Errorf("flight %s departs %s, want 2026-10-14", f.ID, got)
		}
	}

	empty, err := svc.SearchFlights(context.Background(), FlightCriteria{Date: "2026-10-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no departures on 2026-10-15, got %d", len(empty))
	}

	if _, err := svc.SearchFlights(context.Background(), FlightCriteria{Date: "14/10/2026"}); err == nil {
		t.Error("expected malformed date to be rejected")
	}
}

func TestSearchHotels_MinRatingAndAmenities(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchHotels(context.Background(), HotelCriteria{
		MinRating: 4.5,
		Amenities: []string{"wifi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected matches")
	}
	for i, h := range results {
		if h.Rating < 4.5 {
			t.Errorf("hotel %s below min rating: %f", h.ID, h.Rating)
		}
		if i > 0 && h.Rating > results[i-1].Rating {
			t.Errorf("hotels not sorted by rating descending at index %d", i)
		}
	}
}

func TestSearchCars_CategoryAndCity(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchCars(context.Background(), CarCriteria{
		City:     "los angeles",
		Category: "compact",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one compact car in Los Angeles, got %d", len(results))
	}
	if results[0].Model != "Toyota Corolla" {
		t.Errorf("unexpected car: %s", results[0].Model)
	}
}

func TestSearchCars_EmptyCriteriaReturnsAllSorted(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.SearchCars(context.Background(), CarCriteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(data.Cars()) {
		t.Fatalf("absent criteria must impose no constraint: got %d of %d", len(results), len(data.Cars()))
	}
	for i := 1; i < len(results); i++ {
		if results[i].PricePerDay < results[i-1].PricePerDay {
			t.Errorf("cars not sorted by price ascending at index %d", i)
		}
	}
}
