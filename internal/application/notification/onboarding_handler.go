package notification

import (
	"context"
	"fmt"

	"github.com/corebank/backend/internal/domain/account"
	"github.com/corebank/backend/internal/domain/customer"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sender delivers customer-facing notifications
type Sender interface {
	Send(ctx context.Context, customerID uuid.UUID, subject, body string) error
}

// LogSender writes notifications to the application log. It stands in until
// a real delivery channel (mail, SMS) is attached.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a log-backed notification sender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the notification
func (s *LogSender) Send(ctx context.Context, customerID uuid.UUID, subject, body string) error {
	s.logger.Info("notification sent",
		zap.String("customer_id", customerID.String()),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// OnboardingHandler listens for customer and account lifecycle events and
// sends the matching onboarding notifications.
type OnboardingHandler struct {
	sender Sender
	logger *zap.Logger
}

// NewOnboardingHandler creates a new handler for onboarding events
func NewOnboardingHandler(sender Sender, logger *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		sender: sender,
		logger: logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *OnboardingHandler) EventTypes() []string {
	return []string{
		customer.EventTypeCustomerRegistered,
		account.EventTypeAccountOpened,
	}
}

// Handle processes a customer registration or account opening event
func (h *OnboardingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *customer.CustomerRegisteredEvent:
		return h.handleCustomerRegistered(ctx, e)
	case *account.AccountOpenedEvent:
		return h.handleAccountOpened(ctx, e)
	default:
		h.logger.Error("unexpected event type",
			zap.String("event_type", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
}

func (h *OnboardingHandler) handleCustomerRegistered(ctx context.Context, e *customer.CustomerRegisteredEvent) error {
	h.logger.Info("processing customer registered event",
		zap.String("customer_id", e.CustomerID.String()),
	)

	body := fmt.Sprintf("Welcome to Corebank, %s. Your customer profile has been created.", e.FullName)
	return h.sender.Send(ctx, e.CustomerID, "Welcome to Corebank", body)
}

func (h *OnboardingHandler) handleAccountOpened(ctx context.Context, e *account.AccountOpenedEvent) error {
	h.logger.Info("processing account opened event",
		zap.String("account_id", e.AccountID.String()),
		zap.String("account_number", e.AccountNumber),
	)

	body := fmt.Sprintf("Your joint account %s has been opened with an initial balance of %s.",
		e.AccountNumber, e.InitialBalance.StringFixed(2))

	// Both holders receive the confirmation
	if err := h.sender.Send(ctx, e.PrimaryHolderID, "Joint account opened", body); err != nil {
		return err
	}
	return h.sender.Send(ctx, e.JointHolderID, "Joint account opened", body)
}

var _ shared.EventHandler = (*OnboardingHandler)(nil)
