package model

import "time"

// RegisterInput is the tagged payload for account registration. The
// password policy (length, upper, lower, digit) is enforced by the
// accounts validator.
type RegisterInput struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=50"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,password_strength"`
	Phone     string     `json:"phone,omitempty" validate:"omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PassportInput replaces the stored travel document in full.
type PassportInput struct {
	Number         string    `json:"number" validate:"required,min=5,max=20"`
	ExpiryDate     time.Time `json:"expiry_date" validate:"required"`
	IssuingCountry string    `json:"issuing_country" validate:"required,iso3166_1_alpha2"`
}

// DeleteAccountInput requires the password again so a leaked token alone
// cannot close an account.
type DeleteAccountInput struct {
	Password string `json:"password" validate:"required"`
}

// AuthResult pairs the sanitized account with a freshly signed token.
type AuthResult struct {
	Account *Account `json:"account"`
	Token   string   `json:"token"`
}

// Dashboard is the per-account overview.
type Dashboard struct {
	Account        *Account      `json:"account"`
	Stats          *BookingStats `json:"stats"`
	RecentBookings []*Booking    `json:"recent_bookings"`
}
