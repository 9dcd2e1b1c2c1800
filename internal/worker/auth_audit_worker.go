package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/vet-clinic-service/internal/events"
	"github.com/spec-kit/vet-clinic-service/internal/observability"
)

// StartAuthAuditWorker registers handlers that log and count auth events.
func StartAuthAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	if dispatcher == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dispatcher.Subscribe(events.EventIdentityLookupFault, func(_ context.Context, event events.Event) error {
		source := "unknown"
		if payload, ok := event.Payload.(events.IdentityLookupFaultPayload); ok {
			source = payload.Source
			logger.Warn("identity store lookup fault",
				zap.String("event_id", event.ID),
				zap.String("request_id", event.RequestID),
				zap.String("source", payload.Source),
				zap.String("error", payload.Error),
			)
		}
		metrics.RecordAuthFault(string(event.Type), source)
		return nil
	})

	outcome := func(_ context.Context, event events.Event) error {
		code := "unknown"
		if payload, ok := event.Payload.(events.AuthOutcomePayload); ok {
			code = payload.Code
			logger.Info("authentication outcome",
				zap.String("event_id", event.ID),
				zap.String("type", string(event.Type)),
				zap.String("request_id", event.RequestID),
				zap.String("code", payload.Code),
				zap.String("path", payload.Path),
				zap.Int("status", payload.Status),
			)
		}
		metrics.RecordAuthFault(string(event.Type), code)
		return nil
	}
	events.SubscribeAll(dispatcher, outcome, events.EventAuthRejected, events.EventOptionalAuthSkipped)
}
