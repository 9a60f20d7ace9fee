package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mrpavithran/WorkShop/internal/config"
	"github.com/mrpavithran/WorkShop/internal/domain"
)

// PaymentService simulates payment processing in front of registration.
// No real authorization happens; the configured delay stands in for
// gateway latency, after which the participant is registered.
type PaymentService struct {
	registrations *RegistrationService
	logger        *zap.Logger
	delay         time.Duration
}

// NewPaymentService constructs the simulator.
func NewPaymentService(registrations *RegistrationService, logger *zap.Logger, cfg config.PaymentConfig) *PaymentService {
	return &PaymentService{
		registrations: registrations,
		logger:        logger,
		delay:         cfg.ProcessingDelay(),
	}
}

// Process waits out the simulated payment step and registers the participant.
// Cancelling the context aborts before the ledger is touched.
func (s *PaymentService) Process(ctx context.Context, workshopID int64, input ParticipantInput) (domain.Registration, error) {
	if s.delay > 0 {
		s.logger.Debug("simulating payment processing",
			zap.Int64("workshop_id", workshopID),
			zap.Duration("delay", s.delay))
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return domain.Registration{}, ctx.Err()
		}
	}
	return s.registrations.Register(ctx, workshopID, input)
}
