package notifier

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	bookingservice "tripwise/internal/bookings/service"
	"tripwise/pkg/logger"
)

type mockSender struct {
	sent []string
}

func (m *mockSender) Send(ctx context.Context, accountID, subject, body string) error {
	m.sent = append(m.sent, subject)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
}

func TestHandle_SendsPerEventType(t *testing.T) {
	tests := []struct {
		eventType   string
		wantSubject string
	}{
		{bookingservice.EventBookingCreated, "Booking received"},
		{bookingservice.EventBookingConfirmed, "Booking confirmed"},
		{bookingservice.EventBookingCancelled, "Booking cancelled"},
		{bookingservice.EventBookingCompleted, "Thanks for travelling with us"},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			sender := &mockSender{}
			w := NewWorker(nil, sender, testLogger())

			payload, _ := json.Marshal(bookingservice.Event{
				Type:      tt.eventType,
				Reference: "FL-ABC123-XY",
				AccountID: "66f0000000000000000000bb",
			})

			if err := w.handle(context.Background(), nil, payload); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(sender.sent) != 1 || sender.sent[0] != tt.wantSubject {
				t.Errorf("expected subject %q, got %v", tt.wantSubject, sender.sent)
			}
		})
	}
}

func TestHandle_SkipsUnknownEventTypes(t *testing.T) {
	sender := &mockSender{}
	w := NewWorker(nil, sender, testLogger())

	payload, _ := json.Marshal(bookingservice.Event{Type: "booking.repriced"})
	if err := w.handle(context.Background(), nil, payload); err != nil {
		t.Fatalf("unknown types must be skipped, not failed: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no notification, got %v", sender.sent)
	}
}

func TestHandle_RejectsMalformedPayload(t *testing.T) {
	w := NewWorker(nil, &mockSender{}, testLogger())

	err := w.handle(context.Background(), nil, []byte("not json"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("unexpected error: %v", err)
	}
}
