package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeatInterval = 15 * time.Second

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Feed   service.FeedBroadcaster
	Logger *slog.Logger
}

// StreamHandler relays live feed events as Server-Sent Events
type StreamHandler struct {
	feed      service.FeedBroadcaster
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		feed:      params.Feed,
		heartbeat: defaultHeartbeatInterval,
		logger:    params.Logger,
	}
}

// StreamAuctionBids streams the bids of one auction.
func (h *StreamHandler) StreamAuctionBids(c echo.Context) error {
	auctionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return h.stream(c, entity.FeedFilter{AuctionID: &auctionID})
}

// StreamEvents streams every feed event.
func (h *StreamHandler) StreamEvents(c echo.Context) error {
	return h.stream(c, entity.FeedFilter{})
}

func (h *StreamHandler) stream(c echo.Context, filter entity.FeedFilter) error {
	events, cancel := h.feed.Subscribe(filter)
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(res, event); err != nil {
				h.logger.Debug("Stream client went away", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event *entity.FeedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Type, payload)

	return err
}
