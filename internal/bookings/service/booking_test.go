package service

import (
	"context"
	"io"
	"testing"

	bookingerrors "tripwise/internal/bookings/errors"
	"tripwise/internal/bookings/repository"
	"tripwise/internal/bookings/validator"
	"tripwise/pkg/config"
	mongotx "tripwise/pkg/db/mongo"
	apperrors "tripwise/pkg/errors"
	"tripwise/pkg/logger"
	"tripwise/pkg/model"
)

// ────────────────────────────────────────────────
// Mock repository for testing
// ────────────────────────────────────────────────

type mockBookingRepository struct {
	createFunc       func(ctx context.Context, booking *model.Booking) error
	findByIDFunc     func(ctx context.Context, id string) (*model.Booking, error)
	findByRefFunc    func(ctx context.Context, reference string) (*model.Booking, error)
	findByAccFunc    func(ctx context.Context, accountID string, filter repository.Filter, limit int, offset int64) ([]*model.Booking, error)
	countByAccFunc   func(ctx context.Context, accountID string, filter repository.Filter) (int64, error)
	updateStatusFunc func(ctx context.Context, id string, status string) error
	statsFunc        func(ctx context.Context, accountID string) (*model.BookingStats, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "66f0000000000000000000aa"
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingerrors.ErrNotFound
}

func (m *mockBookingRepository) FindByReference(ctx context.Context, reference string) (*model.Booking, error) {
	if m.findByRefFunc != nil {
		return m.findByRefFunc(ctx, reference)
	}
	return nil, bookingerrors.ErrNotFound
}

func (m *mockBookingRepository) FindByAccount(ctx context.Context, accountID string, filter repository.Filter, limit int, offset int64) ([]*model.Booking, error) {
	if m.findByAccFunc != nil {
		return m.findByAccFunc(ctx, accountID, filter, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) CountByAccount(ctx context.Context, accountID string, filter repository.Filter) (int64, error) {
	if m.countByAccFunc != nil {
		return m.countByAccFunc(ctx, accountID, filter)
	}
	return 0, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockBookingRepository) CountActiveByAccount(ctx context.Context, accountID string) (int64, error) {
	return 0, nil
}

func (m *mockBookingRepository) DeleteByAccount(ctx context.Context, accountID string) error {
	return nil
}

func (m *mockBookingRepository) StatsByAccount(ctx context.Context, accountID string) (*model.BookingStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, accountID)
	}
	return &model.BookingStats{}, nil
}

func (m *mockBookingRepository) FindRecentByAccount(ctx context.Context, accountID string, limit int) ([]*model.Booking, error) {
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

// ────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────

const (
	ownerID    = "66f0000000000000000000bb"
	strangerID = "66f0000000000000000000cc"
	bookingID  = "66f0000000000000000000aa"
)

func newTestService(repo repository.BookingRepository) BookingService {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
	cfg := &config.Config{Log: log}
	return NewBookingService(repo, validator.NewBookingValidator(log), nil, cfg)
}

func owner() *model.Account {
	return &model.Account{ID: ownerID, Role: model.RoleUser}
}

func assertStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()
	if !apperrors.IsAppError(err) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if got := apperrors.AsAppError(err).HTTPStatus; got != wantStatus {
		t.Errorf("expected HTTP status %d, got %d", wantStatus, got)
	}
}

// ────────────────────────────────────────────────
// Tests for Create()
// ────────────────────────────────────────────────

func TestCreate_AssignsReferenceAndPendingStatus(t *testing.T) {
	var stored *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			booking.ID = bookingID
			stored = booking
			return nil
		},
	}
	svc := newTestService(repo)

	booking, err := svc.Create(context.Background(), ownerID, &model.BookingInput{
		Type:        model.BookingTypeFlight,
		TotalAmount: 420.50,
		Currency:    "USD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != model.StatusPending {
		t.Errorf("new bookings must start pending, got %q", booking.Status)
	}
	if booking.Reference == "" {
		t.Error("expected a generated reference")
	}
	if stored == nil || stored.AccountID != ownerID {
		t.Error("expected the booking to be persisted for the caller")
	}
}

func TestCreate_RetriesOnReferenceCollision(t *testing.T) {
	attempts := 0
	var references []string
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			attempts++
			references = append(references, booking.Reference)
			if attempts < 3 {
				return bookingerrors.ErrDuplicateReference
			}
			booking.ID = bookingID
			return nil
		},
	}
	svc := newTestService(repo)

	booking, err := svc.Create(context.Background(), ownerID, &model.BookingInput{
		Type:     model.BookingTypeHotel,
		Currency: "EUR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if references[0] == references[1] && references[1] == references[2] {
		t.Error("each retry must generate a fresh reference")
	}
	if booking.ID == "" {
		t.Error("expected the booking to be created on the final attempt")
	}
}

func TestCreate_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return bookingerrors.ErrDuplicateReference
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), ownerID, &model.BookingInput{
		Type:     model.BookingTypeCar,
		Currency: "USD",
	})
	if err == nil {
		t.Fatal("expected exhausted retries to fail")
	}
	assertStatus(t, err, 400)
}

func TestCreate_ValidationFailures(t *testing.T) {
	svc := newTestService(&mockBookingRepository{})

	tests := []struct {
		name  string
		input model.BookingInput
	}{
		{"unknown type", model.BookingInput{Type: "cruise", Currency: "USD"}},
		{"missing currency", model.BookingInput{Type: model.BookingTypeFlight}},
		{"negative amount", model.BookingInput{Type: model.BookingTypeFlight, Currency: "USD", TotalAmount: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), ownerID, &tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			assertStatus(t, err, 400)
		})
	}
}

// ────────────────────────────────────────────────
// Tests for Cancel() state machine
// ────────────────────────────────────────────────

func cancelRepo(status string) *mockBookingRepository {
	return &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return &model.Booking{ID: id, AccountID: ownerID, Status: status}, nil
		},
	}
}

func TestCancel_FromPendingAndConfirmed(t *testing.T) {
	for _, status := range []string{model.StatusPending, model.StatusConfirmed} {
		t.Run(status, func(t *testing.T) {
			svc := newTestService(cancelRepo(status))

			booking, err := svc.Cancel(context.Background(), owner(), bookingID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if booking.Status != model.StatusCancelled {
				t.Errorf("expected cancelled, got %q", booking.Status)
			}
		})
	}
}

func TestCancel_RejectsTerminalStates(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"already cancelled", model.StatusCancelled},
		{"completed", model.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := cancelRepo(tt.status)
			repo.updateStatusFunc = func(ctx context.Context, id string, status string) error {
				t.Error("terminal bookings must not be written")
				return nil
			}
			svc := newTestService(repo)

			_, err := svc.Cancel(context.Background(), owner(), bookingID)
			if err == nil {
				t.Fatal("expected cancellation to be rejected")
			}
			assertStatus(t, err, 400)
		})
	}
}

func TestCancel_ForeignBookingHiddenAsNotFound(t *testing.T) {
	svc := newTestService(cancelRepo(model.StatusPending))

	_, err := svc.Cancel(context.Background(), &model.Account{ID: strangerID, Role: model.RoleUser}, bookingID)
	if err == nil {
		t.Fatal("expected foreign booking to be hidden")
	}
	assertStatus(t, err, 404)
}

// ────────────────────────────────────────────────
// Tests for admin transitions
// ────────────────────────────────────────────────

func TestConfirm_OnlyFromPending(t *testing.T) {
	svc := newTestService(cancelRepo(model.StatusPending))
	booking, err := svc.Confirm(context.Background(), bookingID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != model.StatusConfirmed {
		t.Errorf("expected confirmed, got %q", booking.Status)
	}

	for _, status := range []string{model.StatusConfirmed, model.StatusCancelled, model.StatusCompleted} {
		svc := newTestService(cancelRepo(status))
		if _, err := svc.Confirm(context.Background(), bookingID); err == nil {
			t.Errorf("confirm from %q must fail", status)
		}
	}
}

func TestComplete_OnlyFromConfirmed(t *testing.T) {
	svc := newTestService(cancelRepo(model.StatusConfirmed))
	booking, err := svc.Complete(context.Background(), bookingID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != model.StatusCompleted {
		t.Errorf("expected completed, got %q", booking.Status)
	}

	for _, status := range []string{model.StatusPending, model.StatusCancelled, model.StatusCompleted} {
		svc := newTestService(cancelRepo(status))
		if _, err := svc.Complete(context.Background(), bookingID); err == nil {
			t.Errorf("complete from %q must fail", status)
		}
	}
}

// ────────────────────────────────────────────────
// Tests for reads
// ────────────────────────────────────────────────

func TestGetByID_OwnerAndAdmin(t *testing.T) {
	repo := cancelRepo(model.StatusConfirmed)
	svc := newTestService(repo)

	if _, err := svc.GetByID(context.Background(), owner(), bookingID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}

	admin := &model.Account{ID: strangerID, Role: model.RoleAdmin}
	if _, err := svc.GetByID(context.Background(), admin, bookingID); err != nil {
		t.Errorf("admin read failed: %v", err)
	}

	stranger := &model.Account{ID: strangerID, Role: model.RoleUser}
	_, err := svc.GetByID(context.Background(), stranger, bookingID)
	if err == nil {
		t.Fatal("expected foreign booking to be hidden")
	}
	assertStatus(t, err, 404)
}

func TestList_RejectsUnknownFilters(t *testing.T) {
	svc := newTestService(&mockBookingRepository{})

	if _, _, err := svc.List(context.Background(), ownerID, repository.Filter{Type: "cruise"}, 10, 0); err == nil {
		t.Error("expected unknown type filter to be rejected")
	}
	if _, _, err := svc.List(context.Background(), ownerID, repository.Filter{Status: "paused"}, 10, 0); err == nil {
		t.Error("expected unknown status filter to be rejected")
	}
}

func TestList_PassesFiltersThrough(t *testing.T) {
	var gotFilter repository.Filter
	repo := &mockBookingRepository{
		findByAccFunc: func(ctx context.Context, accountID string, filter repository.Filter, limit int, offset int64) ([]*model.Booking, error) {
			gotFilter = filter
			return []*model.Booking{{ID: bookingID}}, nil
		},
		countByAccFunc: func(ctx context.Context, accountID string, filter repository.Filter) (int64, error) {
			return 1, nil
		},
	}
	svc := newTestService(repo)

	bookings, total, err := svc.List(context.Background(), ownerID, repository.Filter{
		Type:   model.BookingTypeHotel,
		Status: model.StatusConfirmed,
	}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(bookings) != 1 {
		t.Errorf("expected one booking, got %d (total %d)", len(bookings), total)
	}
	if gotFilter.Type != model.BookingTypeHotel || gotFilter.Status != model.StatusConfirmed {
		t.Errorf("filters not passed through: %+v", gotFilter)
	}
}
