// Package notifier consumes booking events and sends customer
// notifications. Delivery is mocked behind the Sender interface; the
// worker itself is transport-complete.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	bookingservice "tripwise/internal/bookings/service"
	"tripwise/pkg/kafka"
	"tripwise/pkg/logger"
)

type Sender interface {
	Send(ctx context.Context, accountID, subject, body string) error
}

// LogSender writes notifications to the log instead of an email gateway.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, accountID, subject, body string) error {
	s.log.Info("Notification sent",
		"account_id", accountID,
		"subject", subject,
		"body", body,
	)
	return nil
}

type Worker struct {
	consumer *kafka.Consumer
	sender   Sender
	log      *logger.Logger
}

func NewWorker(consumer *kafka.Consumer, sender Sender, log *logger.Logger) *Worker {
	return &Worker{
		consumer: consumer,
		sender:   sender,
		log:      log,
	}
}

// Run consumes booking events until the context is cancelled. Unknown
// event types are skipped, not failed: the topic may carry events this
// worker does not care about.
func (w *Worker) Run(ctx context.Context) error {
	return w.consumer.Run(ctx, w.handle)
}

func (w *Worker) handle(ctx context.Context, key, value []byte) error {
	var event bookingservice.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	subject, body, ok := render(event)
	if !ok {
		w.log.Debug("Skipping event", "type", event.Type)
		return nil
	}

	return w.sender.Send(ctx, event.AccountID, subject, body)
}

func render(event bookingservice.Event) (subject, body string, ok bool) {
	switch event.Type {
	case bookingservice.EventBookingCreated:
		return "Booking received",
			fmt.Sprintf("Your booking %s has been received and is pending confirmation.", event.Reference), true
	case bookingservice.EventBookingConfirmed:
		return "Booking confirmed",
			fmt.Sprintf("Your booking %s is confirmed.", event.Reference), true
	case bookingservice.EventBookingCancelled:
		return "Booking cancelled",
			fmt.Sprintf("Your booking %s has been cancelled.", event.Reference), true
	case bookingservice.EventBookingCompleted:
		return "Thanks for travelling with us",
			fmt.Sprintf("Your booking %s is complete. We hope to see you again.", event.Reference), true
	}
	return "", "", false
}
