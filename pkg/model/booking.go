package model

import "time"

const (
	BookingTypeFlight     = "flight"
	BookingTypeHotel      = "hotel"
	BookingTypeCar        = "car"
	BookingTypeRestaurant = "restaurant"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking is a reserved service instance tied to an account. Details is an
// opaque type-specific payload (departure/arrival for flights, check-in for
// hotels) and is not interpreted by the service.
type Booking struct {
	ID          string         `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	AccountID   string         `json:"account_id" bson:"account_id" validate:"required,mongodb"`
	Type        string         `json:"type" bson:"type" validate:"required,oneof=flight hotel car restaurant"`
	Reference   string         `json:"reference" bson:"reference" validate:"omitempty,min=6,max=24"`
	Status      string         `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	TotalAmount float64        `json:"total_amount" bson:"total_amount" validate:"gte=0"`
	Currency    string         `json:"currency" bson:"currency" validate:"required,oneof=USD EUR GBP JPY AUD CAD"`
	Details     map[string]any `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// transitions encodes the booking state machine: forward only, with
// cancellation allowed out of the two non-terminal states.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

func (b *Booking) CanTransitionTo(next string) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// IsActive reports whether the booking blocks account deletion.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingInput is the creation payload. The reference and status are
// assigned server-side; new bookings always start out pending.
type BookingInput struct {
	Type        string         `json:"type" validate:"required,oneof=flight hotel car restaurant"`
	TotalAmount float64        `json:"total_amount" validate:"gte=0"`
	Currency    string         `json:"currency" validate:"required,oneof=USD EUR GBP JPY AUD CAD"`
	Details     map[string]any `json:"details,omitempty"`
}

// BookingStats is the per-account summary: counts by status plus total
// spend across non-cancelled bookings.
type BookingStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	TotalSpend float64          `json:"total_spend"`
}
