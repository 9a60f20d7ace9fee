package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mrpavithran/WorkShop/internal/config"
	"github.com/mrpavithran/WorkShop/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventWorkshopCreated, n.handleWorkshopCreated)
	n.dispatcher.Subscribe(events.EventParticipantRegistered, n.handleParticipantRegistered)
	n.dispatcher.Subscribe(events.EventAttendanceUpdated, n.handleAttendanceUpdated)
	n.dispatcher.Subscribe(events.EventFeedbackSubmitted, n.handleFeedbackSubmitted)
}

func (n *NotificationService) handleWorkshopCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("WorkshopCreated", zap.Int64("workshop_id", event.WorkshopID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleParticipantRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("ParticipantRegistered", zap.Int64("workshop_id", event.WorkshopID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAttendanceUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("AttendanceUpdated", zap.Int64("workshop_id", event.WorkshopID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleFeedbackSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("FeedbackSubmitted", zap.Int64("workshop_id", event.WorkshopID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("workshop_id", event.WorkshopID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("workshop_id", event.WorkshopID),
		zap.String("event_type", string(event.Type)))
}
