// Package notifier delivers order lifecycle events to an out-of-band sink.
// Delivery is best-effort and happens after the transition has been
// committed: a failed notification never affects order state.
package notifier

import (
	"context"

	"github.com/voyago/travel-order-service/internal/app/config"
	"github.com/voyago/travel-order-service/internal/app/entity"
)

type Notifier interface {
	Notify(ctx context.Context, event entity.OrderEvent)
	Close() error
}

type eventMessage struct {
	OrderID string  `json:"order_id"`
	OwnerID string  `json:"owner_id"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status,omitempty"`
}

func convertEventToMessage(event entity.OrderEvent) eventMessage {
	return eventMessage{
		OrderID: event.OrderID.String(),
		OwnerID: event.OwnerID.String(),
		Amount:  event.Amount,
		Status:  string(event.Status),
	}
}

func InitNotifier(config config.Config) Notifier {
	if len(config.KafkaAddr) == 0 {
		return NewLogNotifier()
	}

	return NewKafkaNotifier(config.KafkaAddr, config.KafkaTopic)
}
