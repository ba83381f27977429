package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"autobid/config"
	deliverycontext "autobid/internal/delivery/context"
	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// errMalformedEvent marks a push the sender must not redeliver.
var errMalformedEvent = errors.New("malformed event")

// tokenValidator checks a push OIDC token against the expected audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub pushes into live feed events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	feed           service.FeedBroadcaster
	logger         *slog.Logger
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Feed   service.FeedBroadcaster
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google pushes carry a token; local and develop setups post unsigned envelopes.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		feed:           params.Feed,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	eventType := entity.FeedEventType(pushMsg.Message.Attributes[constants.AttributeEventType])
	event, err := h.toFeedEvent(eventType, data)
	if err != nil {
		reqLogger.Error("[Worker] Rejected push message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("event_type", string(eventType)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}
	if event == nil {
		// Acknowledge so Pub/Sub stops redelivering a type this worker does not relay.
		reqLogger.Warn("[Worker] Ignoring unknown event type", slog.String("event_type", string(eventType)))

		return c.NoContent(http.StatusOK)
	}

	h.feed.Publish(event)
	reqLogger.Debug("[Worker] Relayed feed event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_type", string(event.Type)),
	)

	return c.NoContent(http.StatusOK)
}

// toFeedEvent validates the payload for its type. A nil event means the type is unknown.
func (h *PushHandler) toFeedEvent(eventType entity.FeedEventType, data []byte) (*entity.FeedEvent, error) {
	event := &entity.FeedEvent{
		Type:       eventType,
		Data:       json.RawMessage(data),
		ReceivedAt: h.now(),
	}

	switch eventType {
	case entity.FeedBidPlaced:
		var bid entity.BidPlaced
		if err := json.Unmarshal(data, &bid); err != nil {
			return nil, errors.Wrap(errMalformedEvent, err.Error())
		}
		if bid.AuctionID == uuid.Nil {
			return nil, errors.Wrap(errMalformedEvent, "bid without auction_id")
		}
		event.AuctionID = &bid.AuctionID

		return event, nil
	case entity.FeedViewInvalidated:
		var invalidated service.ViewInvalidatedEvent
		if err := json.Unmarshal(data, &invalidated); err != nil {
			return nil, errors.Wrap(errMalformedEvent, err.Error())
		}
		if len(invalidated.Views) == 0 {
			return nil, errors.Wrap(errMalformedEvent, "invalidation without views")
		}

		return event, nil
	default:
		return nil, nil
	}
}

// extractRequestID prefers the publisher's request_id so one trace spans both processes
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes[constants.AttributeRequestID]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
