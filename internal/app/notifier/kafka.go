package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/entity"
)

const writeTimeout = 10 * time.Second

type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(address, topic string) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(address),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}

	return &KafkaNotifier{
		writer: writer,
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event entity.OrderEvent) {
	payload, err := json.Marshal(convertEventToMessage(event))
	if err != nil {
		zap.L().Error("error while marshalling order event", zap.Error(err), zap.String("order_id", event.OrderID.String()))
		return
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
	if err != nil {
		zap.L().Error(
			"error while sending order event to kafka",
			zap.Error(err),
			zap.String("order_id", event.OrderID.String()),
		)
	}
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
