package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is a registered traveler. PasswordHash is excluded from every
// JSON read path; only the bson mapping carries it.
type Account struct {
	ID           string       `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	FirstName    string       `json:"first_name" bson:"first_name" validate:"required,min=1,max=50"`
	LastName     string       `json:"last_name" bson:"last_name" validate:"required,min=1,max=50"`
	Email        string       `json:"email" bson:"email" validate:"required,email"`
	PasswordHash string       `json:"-" bson:"password_hash"`
	Phone        string       `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	BirthDate    *time.Time   `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	Passport     *Passport    `json:"passport,omitempty" bson:"passport,omitempty"`
	Preferences  Preferences  `json:"preferences" bson:"preferences"`
	Role         string       `json:"role" bson:"role" validate:"required,oneof=user admin"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}

type Passport struct {
	Number         string    `json:"number" bson:"number" validate:"required,min=5,max=20,alphanum"`
	ExpiryDate     time.Time `json:"expiry_date" bson:"expiry_date" validate:"required"`
	IssuingCountry string    `json:"issuing_country" bson:"issuing_country" validate:"required,iso3166_1_alpha2"`
}

type Preferences struct {
	Currency      string `json:"currency" bson:"currency" validate:"required,oneof=USD EUR GBP JPY AUD CAD"`
	Language      string `json:"language" bson:"language" validate:"required,oneof=en es fr de it ja"`
	Notifications bool   `json:"notifications" bson:"notifications"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Currency:      "USD",
		Language:      "en",
		Notifications: true,
	}
}

// Sanitized returns a copy safe to attach to a request context or
// serialize outward.
func (a *Account) Sanitized() *Account {
	clean := *a
	clean.PasswordHash = ""
	return &clean
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ProfileUpdate carries the mutable profile fields. Nil or empty fields
// leave the stored value unchanged.
type ProfileUpdate struct {
	FirstName string     `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  string     `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
	Phone     *string    `json:"phone,omitempty" validate:"omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

type PreferencesUpdate struct {
	Currency      string `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP JPY AUD CAD"`
	Language      string `json:"language,omitempty" validate:"omitempty,oneof=en es fr de it ja"`
	Notifications *bool  `json:"notifications,omitempty"`
}
