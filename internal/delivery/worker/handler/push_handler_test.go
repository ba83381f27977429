package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"
	mockService "autobid/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*PushHandler, *mockService.MockFeedBroadcaster) {
	t.Helper()

	feed := mockService.NewMockFeedBroadcaster(t)

	return &PushHandler{
		feed:   feed,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return fixedNow },
	}, feed
}

func pushBody(t *testing.T, eventType string, payload any) string {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{
		constants.AttributeEventType: eventType,
		"request_id":                 "req-9",
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_RelaysBidPlaced(t *testing.T) {
	h, feed := newTestHandler(t)
	auctionID := uuid.New()

	feed.EXPECT().Publish(mock.MatchedBy(func(ev *entity.FeedEvent) bool {
		return ev.Type == entity.FeedBidPlaced &&
			ev.AuctionID != nil && *ev.AuctionID == auctionID &&
			ev.ReceivedAt.Equal(fixedNow)
	})).Return().Once()

	rec := doPush(t, h, pushBody(t, string(entity.FeedBidPlaced), entity.BidPlaced{
		AuctionID: auctionID,
		BidID:     uuid.New(),
		BidderID:  uuid.New(),
		Amount:    525000,
	}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RelaysViewInvalidated(t *testing.T) {
	h, feed := newTestHandler(t)

	feed.EXPECT().Publish(mock.MatchedBy(func(ev *entity.FeedEvent) bool {
		return ev.Type == entity.FeedViewInvalidated && ev.AuctionID == nil
	})).Return().Once()

	rec := doPush(t, h, pushBody(t, string(entity.FeedViewInvalidated), service.ViewInvalidatedEvent{
		Views:  []entity.View{entity.ViewListings},
		Reason: "listing deleted",
	}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body func(t *testing.T) string
		code int
	}{
		{
			name: "not json",
			body: func(*testing.T) string { return "{" },
			code: http.StatusBadRequest,
		},
		{
			name: "data not base64",
			body: func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			code: http.StatusBadRequest,
		},
		{
			name: "bid without auction",
			body: func(t *testing.T) string {
				return pushBody(t, string(entity.FeedBidPlaced), map[string]any{"amount": 1})
			},
			code: http.StatusBadRequest,
		},
		{
			name: "invalidation without views",
			body: func(t *testing.T) string {
				return pushBody(t, string(entity.FeedViewInvalidated), map[string]any{"reason": "x"})
			},
			code: http.StatusBadRequest,
		},
		{
			name: "unknown type is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, "listing.archived", map[string]any{})
			},
			code: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := doPush(t, h, tt.body(t), nil)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	validPayload := &idtoken.Payload{Issuer: "https://accounts.google.com"}

	tests := []struct {
		name      string
		header    http.Header
		validator tokenValidator
		code      int
	}{
		{
			name: "missing header",
			code: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: http.Header{"Authorization": {"Bearer bad"}},
			validator: func(context.Context, string, string) (*idtoken.Payload, error) {
				return nil, errors.New("expired")
			},
			code: http.StatusUnauthorized,
		},
		{
			name:   "wrong issuer",
			header: http.Header{"Authorization": {"Bearer t"}},
			validator: func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "evil.example"}, nil
			},
			code: http.StatusUnauthorized,
		},
		{
			name:   "valid token uses configured audience",
			header: http.Header{"Authorization": {"Bearer t"}},
			validator: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				if token != "t" || audience != "https://worker.autobid.ph/push" {
					return nil, errors.New("unexpected audience " + audience)
				}

				return validPayload, nil
			},
			code: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, feed := newTestHandler(t)
			h.verifyPushAuth = true
			h.audience = "https://worker.autobid.ph/push"
			h.validate = tt.validator
			if tt.code == http.StatusOK {
				feed.EXPECT().Publish(mock.Anything).Return().Once()
			}

			rec := doPush(t, h, pushBody(t, string(entity.FeedViewInvalidated), service.ViewInvalidatedEvent{
				Views: []entity.View{entity.ViewDashboard},
			}), tt.header)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
