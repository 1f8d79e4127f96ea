package pubsub

import (
	"encoding/json"
	"strconv"

	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

// message is the provider-neutral form of a product event.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// newMessage serializes event. Events of one product share an ordering key so
// subscribers see created, detailed, activated and deleted in commit order.
func newMessage(event *service.ProductEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal product event")
	}

	productID := strconv.FormatInt(event.ProductID, 10)
	attributes := map[string]string{
		"event_type":  string(event.Type),
		"product_id":  productID,
		"merchant_id": strconv.FormatInt(event.MerchantID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &message{
		data:        data,
		attributes:  attributes,
		orderingKey: "product-" + productID,
	}, nil
}
