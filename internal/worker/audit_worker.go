package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/siga-edu/academic-service/internal/events"
)

// StartAuditWorker subscribes a logging handler to every audit event type so
// each committed mutation leaves an operational trace.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		logger.Info("audit",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("resource", event.Resource),
			zap.String("resource_id", event.ResourceID),
			zap.String("actor_id", event.ActorID),
			zap.Time("timestamp", event.Timestamp),
		)
		return nil
	}

	for _, t := range []events.EventType{
		events.EventEntityCreated,
		events.EventEntityUpdated,
		events.EventEntityDeleted,
		events.EventLoginSuccess,
		events.EventGrantChanged,
	} {
		dispatcher.Subscribe(t, handler)
	}
}
