package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.ViewInvalidatedEvent{
		RequestID:  "req-123",
		Views:      []entity.View{entity.ViewListings, entity.ViewAuctions},
		Reason:     "listings.soft_delete",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishViewInvalidated(context.Background(), event))

	assert.Equal(t, "req-123", requestIDHeader)
	assert.Equal(t, string(entity.FeedViewInvalidated), received.Message.Attributes[constants.AttributeEventType])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ViewInvalidatedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Views, decoded.Views)
	assert.Equal(t, event.Reason, decoded.Reason)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishViewInvalidated(context.Background(), &service.ViewInvalidatedEvent{
		Views: []entity.View{entity.ViewUsers},
	})
	assert.Error(t, err)
}

func TestMessageAttributes_OmitsEmptyRequestID(t *testing.T) {
	attributes := messageAttributes(&service.ViewInvalidatedEvent{Views: []entity.View{entity.ViewUsers}})

	assert.Equal(t, map[string]string{constants.AttributeEventType: "view.invalidated"}, attributes)
}
