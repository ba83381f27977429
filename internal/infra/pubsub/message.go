package pubsub

import (
	"encoding/json"

	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"

	"github.com/pkg/errors"
)

// localSubscription names the fake subscription of locally relayed pushes.
const localSubscription = "projects/local/subscriptions/admin-events"

// PushMessage is the envelope Pub/Sub posts to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeInvalidation returns the message body and attributes of an invalidation.
func encodeInvalidation(event *service.ViewInvalidatedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to marshal view invalidation")
	}

	return data, messageAttributes(event), nil
}

func messageAttributes(event *service.ViewInvalidatedEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeEventType: string(entity.FeedViewInvalidated),
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}
