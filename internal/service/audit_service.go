package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/events"
)

// AuditService writes admin and share link activity to the log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger.Named("audit")}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{
		events.EventAdminLoginSucceeded,
		events.EventAdminLogout,
		events.EventShareLinkCreated,
		events.EventShareLinkRevoked,
		events.EventContentUpdated,
		events.EventContentDeleted,
	} {
		a.dispatcher.Subscribe(t, a.record)
	}
	a.dispatcher.Subscribe(events.EventAdminLoginFailed, a.recordFailure)
}

func (a *AuditService) record(_ context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("remote_ip", event.RemoteIP),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) recordFailure(_ context.Context, event events.Event) error {
	a.logger.Warn(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("remote_ip", event.RemoteIP),
		zap.Time("at", event.Timestamp))
	return nil
}
