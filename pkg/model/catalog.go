package model

import "time"

// Catalog records are read-only reference data. They are seeded in memory
// and never mutated by the API.

type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type Location struct {
	Address     string      `json:"address" bson:"address"`
	City        string      `json:"city" bson:"city"`
	Country     string      `json:"country" bson:"country"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

type Restaurant struct {
	ID           string            `json:"id" bson:"_id"`
	Name         string            `json:"name" bson:"name"`
	CuisineTypes []string          `json:"cuisine_types" bson:"cuisine_types"`
	Rating       float64           `json:"rating" bson:"rating"`
	PriceRange   string            `json:"price_range" bson:"price_range"`
	Location     Location          `json:"location" bson:"location"`
	Contact      Contact           `json:"contact" bson:"contact"`
	OpeningHours map[string]string `json:"opening_hours" bson:"opening_hours"`
	Images       []string          `json:"images,omitempty" bson:"images,omitempty"`
	Features     []string          `json:"features,omitempty" bson:"features,omitempty"`
	Description  string            `json:"description,omitempty" bson:"description,omitempty"`

	// Distance is populated by proximity search only, in kilometers.
	Distance float64 `json:"distance_km,omitempty" bson:"-"`
}

type Flight struct {
	ID            string    `json:"id" bson:"_id"`
	Airline       string    `json:"airline" bson:"airline"`
	FlightNumber  string    `json:"flight_number" bson:"flight_number"`
	Origin        string    `json:"origin" bson:"origin"`
	Destination   string    `json:"destination" bson:"destination"`
	DepartureTime time.Time `json:"departure_time" bson:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" bson:"arrival_time"`
	Price         float64   `json:"price" bson:"price"`
	Currency      string    `json:"currency" bson:"currency"`
	CabinClass    string    `json:"cabin_class" bson:"cabin_class"`
}

type Hotel struct {
	ID            string   `json:"id" bson:"_id"`
	Name          string   `json:"name" bson:"name"`
	City          string   `json:"city" bson:"city"`
	Country       string   `json:"country" bson:"country"`
	Rating        float64  `json:"rating" bson:"rating"`
	PricePerNight float64  `json:"price_per_night" bson:"price_per_night"`
	Currency      string   `json:"currency" bson:"currency"`
	Amenities     []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`
}

type Car struct {
	ID           string  `json:"id" bson:"_id"`
	Company      string  `json:"company" bson:"company"`
	Model        string  `json:"model" bson:"model"`
	Category     string  `json:"category" bson:"category"`
	City         string  `json:"city" bson:"city"`
	PricePerDay  float64 `json:"price_per_day" bson:"price_per_day"`
	Currency     string  `json:"currency" bson:"currency"`
	Seats        int     `json:"seats" bson:"seats"`
	Transmission string  `json:"transmission" bson:"transmission"`
}
