package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/events"
)

func publish(ctx context.Context, d events.Dispatcher, t events.EventType, remoteIP string, payload interface{}) {
	if d == nil {
		return
	}
	_ = d.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      t,
		RemoteIP:  remoteIP,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
