package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/entity"
)

// LogNotifier is used when no broker is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, event entity.OrderEvent) {
	zap.L().Info(
		"order event emitted",
		zap.String("order_id", event.OrderID.String()),
		zap.String("owner_id", event.OwnerID.String()),
		zap.Float64("amount", event.Amount),
		zap.String("status", string(event.Status)),
	)
}

func (n *LogNotifier) Close() error {
	return nil
}
