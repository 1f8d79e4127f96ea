package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

const localPublishTimeout = 10 * time.Second

// PushMessage is the body Google Pub/Sub POSTs to push subscriptions. The
// local publisher sends the same shape so consumers need no special casing.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher delivers events synchronously to a development endpoint.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	client       *http.Client
	logger       *slog.Logger
}

func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	if topicID == "" {
		topicID = "product-events"
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID,
		client:       &http.Client{Timeout: localPublishTimeout},
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishProductEvent(ctx context.Context, event *service.ProductEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = p.subscription
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = event.EventID
	push.Message.OrderingKey = msg.orderingKey
	push.Message.PublishTime = event.OccurredAt.UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.Wrap(err, "marshal push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post event to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("Product event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", string(event.Type)),
		slog.Int64("product_id", event.ProductID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
