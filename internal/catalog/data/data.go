// Package data holds the seeded reference catalog. Records are read-only;
// search never mutates them.
package data

import (
	"time"

	"tripwise/pkg/model"
)

func Restaurants() []*model.Restaurant {
	return []*model.Restaurant{
		{
			ID:           "rest-001",
			Name:         "The Grand Terrace",
			CuisineTypes: []string{"californian", "farm-to-table"},
			Rating:       4.7,
			PriceRange:   "$$$",
			Location: model.Location{
				Address:     "350 S Grand Ave",
				City:        "Los Angeles",
				Country:     "USA",
				Coordinates: model.Coordinates{Latitude: 34.0522, Longitude: -118.2437},
			},
			Contact:      model.Contact{Phone: "+12135550142", Website: "https://grandterrace.example.com"},
			OpeningHours: weekdayHours("11:00-22:00", "10:00-23:00"),
			Features:     []string{"outdoor-seating", "vegan-options", "reservations"},
			Description:  "Seasonal Californian plates on a downtown rooftop.",
		},
		{
			ID:           "rest-002",
			Name:         "Sakura Izakaya",
			CuisineTypes: []string{"japanese", "izakaya"},
			Rating:       4.5,
			PriceRange:   "$$",
			Location: model.Location{
				Address:     "123 S San Pedro St",
				City:        "Los Angeles",
				Country:     "USA",
				Coordinates: model.Coordinates{Latitude: 34.0489, Longitude: -118.2400},
			},
			Contact:      model.Contact{Phone: "+12135550178"},
			OpeningHours: weekdayHours("17:00-23:00", "17:00-01:00"),
			Features:     []string{"late-night", "bar"},
			Description:  "Small plates and sake in Little Tokyo.",
		},
		{
			ID:           "rest-003",
			Name:         "Boulevard Bistro",
			CuisineTypes: []string{"french", "bistro"},
			Rating:       4.2,
			PriceRange:   "$$",
			Location: model.Location{
				Address:     "14 Rue de Rivoli",
				City:        "Paris",
				Country:     "France",
				Coordinates: model.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
			},
			Contact:      model.Contact{Phone: "+33155550123"},
			OpeningHours: weekdayHours("12:00-14:30", "19:00-22:30"),
			Features:     []string{"outdoor-seating", "wine-list"},
			Description:  "Classic bistro fare a short walk from the Seine.",
		},
		{
			ID:           "rest-004",
			Name:         "Harbor & Vine",
			CuisineTypes: []string{"seafood", "mediterranean"},
			Rating:       4.8,
			PriceRange:   "$$$$",
			Location: model.Location{
				Address:     "22 Pier Way",
				City:        "New York",
				Country:     "USA",
				Coordinates: model.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
			},
			Contact:      model.Contact{Phone: "+12125550199", Website: "https://harborvine.example.com"},
			OpeningHours: weekdayHours("17:30-22:00", "17:30-23:00"),
			Features:     []string{"reservations", "private-dining"},
			Description:  "Raw bar and coastal Mediterranean cooking by the harbor.",
		},
		{
			ID:           "rest-005",
			Name:         "Spice Route",
			CuisineTypes: []string{"indian", "curry"},
			Rating:       4.1,
			PriceRange:   "$",
			Location: model.Location{
				Address:     "88 Brick Lane",
				City:        "London",
				Country:     "UK",
				Coordinates: model.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
			},
			Contact:      model.Contact{Phone: "+442055550134"},
			OpeningHours: weekdayHours("12:00-23:00", "12:00-23:30"),
			Features:     []string{"takeaway", "vegan-options"},
			Description:  "Family-run curry house, generous portions.",
		},
		{
			ID:           "rest-006",
			Name:         "Trattoria Lucia",
			CuisineTypes: []string{"italian", "pasta"},
			Rating:       4.6,
			PriceRange:   "$$",
			Location: model.Location{
				Address:     "901 N Broadway",
				City:        "Los Angeles",
				Country:     "USA",
				Coordinates: model.Coordinates{Latitude: 34.0614, Longitude: -118.2385},
			},
			Contact:      model.Contact{Phone: "+12135550102"},
			OpeningHours: weekdayHours("11:30-22:00", "11:30-23:00"),
			Features:     []string{"reservations", "family-friendly"},
			Description:  "Handmade pasta and wood-fired pizza.",
		},
		{
			ID:           "rest-007",
			Name:         "Ginza Noodle Bar",
			CuisineTypes: []string{"japanese", "ramen"},
			Rating:       4.4,
			PriceRange:   "$",
			Location: model.Location{
				Address:     "4-2-15 Ginza",
				City:        "Tokyo",
				Country:     "Japan",
				Coordinates: model.Coordinates{Latitude: 35.6762, Longitude: 139.6503},
			},
			Contact:      model.Contact{Phone: "+81355550167"},
			OpeningHours: weekdayHours("11:00-21:00", "11:00-22:00"),
			Features:     []string{"counter-seating", "takeaway"},
			Description:  "Tonkotsu ramen, twelve seats, frequent queue.",
		},
		{
			ID:           "rest-008",
			Name:         "El Mercado",
			CuisineTypes: []string{"mexican", "tacos"},
			Rating:       3.9,
			PriceRange:   "$",
			Location: model.Location{
				Address:     "3425 E 1st St",
				City:        "Los Angeles",
				Country:     "USA",
				Coordinates: model.Coordinates{Latitude: 34.0336, Longitude: -118.2100},
			},
			Contact:      model.Contact{Phone: "+12135550110"},
			OpeningHours: weekdayHours("09:00-22:00", "09:00-00:00"),
			Features:     []string{"takeaway", "late-night"},
			Description:  "Street-style tacos in Boyle Heights.",
		},
	}
}

func Flights() []*model.Flight {
	return []*model.Flight{
		{ID: "flt-001", Airline: "Pacific Air", FlightNumber: "PA101", Origin: "LAX", Destination: "JFK", DepartureTime: day(9, 30), ArrivalTime: day(17, 45), Price: 389.00, Currency: "USD", CabinClass: "economy"},
		{ID: "flt-002", Airline: "Pacific Air", FlightNumber: "PA205", Origin: "LAX", Destination: "JFK", DepartureTime: day(14, 0), ArrivalTime: day(22, 15), Price: 452.00, Currency: "USD", CabinClass: "economy"},
		{ID: "flt-003", Airline: "Atlantic Jet", FlightNumber: "AJ400", Origin: "JFK", Destination: "LHR", DepartureTime: day(19, 0), ArrivalTime: dayPlus(7, 10, 1), Price: 610.00, Currency: "USD", CabinClass: "economy"},
		{ID: "flt-004", Airline: "Atlantic Jet", FlightNumber: "AJ402", Origin: "JFK", Destination: "LHR", DepartureTime: day(21, 30), ArrivalTime: dayPlus(9, 40, 1), Price: 1890.00, Currency: "USD", CabinClass: "business"},
		{ID: "flt-005", Airline: "EuroWings Express", FlightNumber: "EW221", Origin: "LHR", Destination: "CDG", DepartureTime: day(8, 15), ArrivalTime: day(10, 35), Price: 95.00, Currency: "EUR", CabinClass: "economy"},
		{ID: "flt-006", Airline: "Nippon Sky", FlightNumber: "NS88", Origin: "LAX", Destination: "HND", DepartureTime: day(11, 50), ArrivalTime: dayPlus(16, 20, 1), Price: 980.00, Currency: "USD", CabinClass: "economy"},
		{ID: "flt-007", Airline: "Nippon Sky", FlightNumber: "NS90", Origin: "LAX", Destination: "HND", DepartureTime: day(13, 20), ArrivalTime: dayPlus(17, 50, 1), Price: 3200.00, Currency: "USD", CabinClass: "first"},
		{ID: "flt-008", Airline: "Coastal Connect", FlightNumber: "CC12", Origin: "LAX", Destination: "SFO", DepartureTime: day(7, 0), ArrivalTime: day(8, 25), Price: 79.00, Currency: "USD", CabinClass: "economy"},
	}
}

func Hotels() []*model.Hotel {
	return []*model.Hotel{
		{ID: "htl-001", Name: "The Wilshire Grand", City: "Los Angeles", Country: "USA", Rating: 4.6, PricePerNight: 289.00, Currency: "USD", Amenities: []string{"pool", "gym", "spa", "wifi"}, Description: "High-rise hotel in the financial district."},
		{ID: "htl-002", Name: "Sunset Courtyard Inn", City: "Los Angeles", Country: "USA", Rating: 3.8, PricePerNight: 129.00, Currency: "USD", Amenities: []string{"parking", "wifi"}, Description: "Budget-friendly courtyard motel near the strip."},
		{ID: "htl-003", Name: "Hudson Park House", City: "New York", Country: "USA", Rating: 4.4, PricePerNight: 340.00, Currency: "USD", Amenities: []string{"gym", "wifi", "restaurant"}, Description: "Boutique rooms overlooking the park."},
		{ID: "htl-004", Name: "Le Petit Marais", City: "Paris", Country: "France", Rating: 4.2, PricePerNight: 185.00, Currency: "EUR", Amenities: []string{"wifi", "breakfast"}, Description: "Eighteen rooms in a restored Marais townhouse."},
		{ID: "htl-005", Name: "Thames Gate Hotel", City: "London", Country: "UK", Rating: 4.0, PricePerNight: 210.00, Currency: "GBP", Amenities: []string{"gym", "wifi", "bar"}, Description: "Modern riverside hotel near the South Bank."},
		{ID: "htl-006", Name: "Shinjuku Sky Residence", City: "Tokyo", Country: "Japan", Rating: 4.7, PricePerNight: 260.00, Currency: "USD", Amenities: []string{"onsen", "wifi", "restaurant"}, Description: "Upper-floor rooms with Mount Fuji views."},
	}
}

func Cars() []*model.Car {
	return []*model.Car{
		{ID: "car-001", Company: "Velocity Rentals", Model: "Toyota Corolla", Category: "compact", City: "Los Angeles", PricePerDay: 45.00, Currency: "USD", Seats: 5, Transmission: "automatic"},
		{ID: "car-002", Company: "Velocity Rentals", Model: "Ford Explorer", Category: "suv", City: "Los Angeles", PricePerDay: 89.00, Currency: "USD", Seats: 7, Transmission: "automatic"},
		{ID: "car-003", Company: "Metro Wheels", Model: "Mini Cooper", Category: "compact", City: "London", PricePerDay: 52.00, Currency: "GBP", Seats: 4, Transmission: "manual"},
		{ID: "car-004", Company: "Metro Wheels", Model: "Range Rover Sport", Category: "luxury", City: "London", PricePerDay: 190.00, Currency: "GBP", Seats: 5, Transmission: "automatic"},
		{ID: "car-005", Company: "Riviera Drive", Model: "Peugeot 208", Category: "economy", City: "Paris", PricePerDay: 38.00, Currency: "EUR", Seats: 5, Transmission: "manual"},
		{ID: "car-006", Company: "Pacific Auto", Model: "Tesla Model 3", Category: "electric", City: "Los Angeles", PricePerDay: 110.00, Currency: "USD", Seats: 5, Transmission: "automatic"},
	}
}

func weekdayHours(weekday, weekend string) map[string]string {
	return map[string]string{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekend,
		"saturday":  weekend,
		"sunday":    weekday,
	}
}

// day returns a fixed-date departure slot; the catalog is mock data so
// only the time-of-day and relative ordering matter.
func day(hour, minute int) time.Time {
	return time.Date(2026, 10, 14, hour, minute, 0, 0, time.UTC)
}

func dayPlus(hour, minute, days int) time.Time {
	return day(hour, minute).AddDate(0, 0, days)
}
