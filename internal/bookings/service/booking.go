package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	bookingerrors "tripwise/internal/bookings/errors"
	"tripwise/internal/bookings/repository"
	"tripwise/internal/bookings/validator"
	"tripwise/pkg/config"
	apperrors "tripwise/pkg/errors"
	"tripwise/pkg/kafka"
	"tripwise/pkg/model"
)

// referenceRetries bounds the insert loop when a generated reference
// collides with an existing one.
const referenceRetries = 3

// Event mirrors a booking state change onto the event stream for
// downstream consumers such as the notifier.
type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	Reference  string    `json:"reference"`
	AccountID  string    `json:"account_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCompleted = "booking.completed"
)

type BookingService interface {
	Create(ctx context.Context, accountID string, in *model.BookingInput) (*model.Booking, error)
	GetByID(ctx context.Context, account *model.Account, id string) (*model.Booking, error)
	GetByReference(ctx context.Context, account *model.Account, reference string) (*model.Booking, error)
	List(ctx context.Context, accountID string, filter repository.Filter, limit int, offset int64) ([]*model.Booking, int64, error)
	Cancel(ctx context.Context, account *model.Account, id string) (*model.Booking, error)
	Confirm(ctx context.Context, id string) (*model.Booking, error)
	Complete(ctx context.Context, id string) (*model.Booking, error)
	Stats(ctx context.Context, accountID string) (*model.BookingStats, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	producer  *kafka.Producer
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	producer *kafka.Producer,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		producer:  producer,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, accountID string, in *model.BookingInput) (*model.Booking, error) {
	if err := s.validator.ValidateInput(in); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, validationError(err, "Booking validation failed")
	}

	booking := &model.Booking{
		AccountID:   accountID,
		Type:        in.Type,
		Status:      model.StatusPending,
		TotalAmount: in.TotalAmount,
		Currency:    in.Currency,
		Details:     in.Details,
	}

	// The unique reference index arbitrates collisions; a fresh reference
	// is generated for each attempt.
	var err error
	for attempt := 0; attempt < referenceRetries; attempt++ {
		booking.Reference = GenerateReference(booking.Type)
		err = s.repo.Create(ctx, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, bookingerrors.ErrDuplicateReference) {
			s.cfg.Log.Error("Failed to create booking", "error", err)
			return nil, apperrors.Internal("Failed to create booking", err)
		}
		s.cfg.Log.Warn("Booking reference collision, retrying", "reference", booking.Reference, "attempt", attempt+1)
	}
	if err != nil {
		return nil, apperrors.Conflict("Could not allocate a unique booking reference")
	}

	s.publish(ctx, EventBookingCreated, booking)
	s.cfg.Log.Info("Booking created", "booking_id", booking.ID, "reference", booking.Reference)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, account *model.Account, id string) (*model.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ensureOwner(account, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetByReference(ctx context.Context, account *model.Account, reference string) (*model.Booking, error) {
	if reference == "" {
		return nil, apperrors.InvalidInput("Booking reference cannot be empty")
	}

	booking, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return nil, apperrors.NotFound("Booking not found")
		}
		s.cfg.Log.Error("Failed to find booking by reference", "reference", reference, "error", err)
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	if err := ensureOwner(account, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, accountID string, filter repository.Filter, limit int, offset int64) ([]*model.Booking, int64, error) {
	if filter.Type != "" && !validBookingType(filter.Type) {
		return nil, 0, apperrors.InvalidInput("invalid type filter: " + filter.Type)
	}
	if filter.Status != "" && !validBookingStatus(filter.Status) {
		return nil, 0, apperrors.InvalidInput("invalid status filter: " + filter.Status)
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByAccount(ctx, accountID, filter)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "account_id", accountID, "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByAccount(ctx, accountID, filter, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "account_id", accountID, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// Cancel rejects terminal bookings with a domain error rather than
// accepting the request silently: cancelling twice is a caller mistake.
func (s *bookingService) Cancel(ctx context.Context, account *model.Account, id string) (*model.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ensureOwner(account, booking); err != nil {
		return nil, err
	}

	if booking.Status == model.StatusCancelled {
		return nil, apperrors.Conflict("Booking is already cancelled")
	}
	if booking.Status == model.StatusCompleted {
		return nil, apperrors.Conflict("Completed bookings cannot be cancelled")
	}
	if !booking.CanTransitionTo(model.StatusCancelled) {
		return nil, apperrors.Conflict("Booking cannot be cancelled from status " + booking.Status)
	}

	if err := s.transition(ctx, booking, model.StatusCancelled); err != nil {
		return nil, err
	}

	s.publish(ctx, EventBookingCancelled, booking)
	s.cfg.Log.Info("Booking cancelled", "booking_id", booking.ID, "reference", booking.Reference)
	return booking, nil
}

func (s *bookingService) Confirm(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(model.StatusConfirmed) {
		return nil, apperrors.Conflict("Booking cannot be confirmed from status " + booking.Status)
	}

	if err := s.transition(ctx, booking, model.StatusConfirmed); err != nil {
		return nil, err
	}

	s.publish(ctx, EventBookingConfirmed, booking)
	s.cfg.Log.Info("Booking confirmed", "booking_id", booking.ID, "reference", booking.Reference)
	return booking, nil
}

func (s *bookingService) Complete(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(model.StatusCompleted) {
		return nil, apperrors.Conflict("Booking cannot be completed from status " + booking.Status)
	}

	if err := s.transition(ctx, booking, model.StatusCompleted); err != nil {
		return nil, err
	}

	s.publish(ctx, EventBookingCompleted, booking)
	s.cfg.Log.Info("Booking completed", "booking_id", booking.ID, "reference", booking.Reference)
	return booking, nil
}

func (s *bookingService) Stats(ctx context.Context, accountID string) (*model.BookingStats, error) {
	stats, err := s.repo.StatsByAccount(ctx, accountID)
	if err != nil {
		s.cfg.Log.Error("Failed to load booking stats", "account_id", accountID, "error", err)
		return nil, apperrors.Internal("Failed to load booking stats", err)
	}
	return stats, nil
}

// --- Helpers ---

func (s *bookingService) find(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to find booking", "booking_id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) transition(ctx context.Context, booking *model.Booking, status string) error {
	if err := s.repo.UpdateStatus(ctx, booking.ID, status); err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", booking.ID)
		}
		s.cfg.Log.Error("Failed to update booking status", "booking_id", booking.ID, "error", err)
		return apperrors.Internal("Failed to update booking", err)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	return nil
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *model.Booking) {
	event := Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		AccountID:  booking.AccountID,
		Status:     booking.Status,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.producer.Publish(ctx, booking.AccountID, event); err != nil {
		// Event delivery is best-effort; the booking mutation already
		// committed.
		s.cfg.Log.Error("Failed to publish booking event", "event", eventType, "booking_id", booking.ID, "error", err)
	}
}

// ensureOwner hides foreign bookings behind NotFound so identifiers
// cannot be probed. Admins may read any booking.
func ensureOwner(account *model.Account, booking *model.Booking) error {
	if account == nil {
		return apperrors.Unauthorized("Authentication required")
	}
	if booking.AccountID != account.ID && !account.IsAdmin() {
		return apperrors.NotFoundWithID("Booking", booking.ID)
	}
	return nil
}

func validBookingType(t string) bool {
	switch t {
	case model.BookingTypeFlight, model.BookingTypeHotel, model.BookingTypeCar, model.BookingTypeRestaurant:
		return true
	}
	return false
}

func validBookingStatus(s string) bool {
	switch s {
	case model.StatusPending, model.StatusConfirmed, model.StatusCancelled, model.StatusCompleted:
		return true
	}
	return false
}

func validationError(err error, message string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation(message, verrs.Details())
	}
	return apperrors.Validation(message, map[string]any{"error": err.Error()})
}
