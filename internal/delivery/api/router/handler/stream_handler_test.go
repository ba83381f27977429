package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autobid/internal/domain/entity"
	mockService "autobid/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamHandler_StreamAuctionBids(t *testing.T) {
	auctionID := uuid.New()
	feed := mockService.NewMockFeedBroadcaster(t)

	events := make(chan *entity.FeedEvent, 1)
	cancelled := false
	feed.EXPECT().
		Subscribe(entity.FeedFilter{AuctionID: &auctionID}).
		Return(events, func() { cancelled = true })

	h := &StreamHandler{
		feed:      feed,
		heartbeat: time.Hour,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	payload, err := json.Marshal(entity.BidPlaced{AuctionID: auctionID, Amount: 450000})
	require.NoError(t, err)
	events <- &entity.FeedEvent{Type: entity.FeedBidPlaced, AuctionID: &auctionID, Data: payload}
	close(events)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(auctionID.String())

	require.NoError(t, h.StreamAuctionBids(c))
	assert.True(t, cancelled)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "event: bid.placed\ndata: {"), body)
	assert.Contains(t, body, `"amount":450000`)
}

func TestStreamHandler_StopsOnClientDisconnect(t *testing.T) {
	feed := mockService.NewMockFeedBroadcaster(t)
	events := make(chan *entity.FeedEvent)
	feed.EXPECT().Subscribe(entity.FeedFilter{}).Return(events, func() {})

	h := &StreamHandler{feed: feed, heartbeat: time.Hour, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	require.NoError(t, h.StreamEvents(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
