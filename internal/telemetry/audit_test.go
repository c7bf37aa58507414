package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chatroom-service/internal/mocks"
)

func TestEmitPublishesEnvelope(t *testing.T) {
	publisher := new(mocks.PublisherMock)
	emitter := NewAuditEmitter(publisher, "chatroom.audit_log", "chatroom-service", "test")

	publisher.On("Publish", mock.Anything, "chatroom.audit_log", mock.MatchedBy(func(event any) bool {
		envelope, ok := event.(AuditEnvelope)
		return ok &&
			envelope.EventType == "audit_log" &&
			envelope.Service == "chatroom-service" &&
			envelope.Environment == "test" &&
			envelope.RequestID == "req-1" &&
			envelope.Payload.Level == "INFO" &&
			envelope.Payload.Text == "user added"
	})).Return(nil).Once()

	emitter.Emit(context.Background(), "INFO", "user added", "req-1")
	publisher.AssertExpectations(t)
}

func TestEmitNilEmitterIsNoop(t *testing.T) {
	var emitter *AuditEmitter
	require.NotPanics(t, func() {
		emitter.Emit(context.Background(), "INFO", "ignored", "req-1")
	})
}
