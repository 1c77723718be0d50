package notifier

import (
	"context"
	"encoding/json"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQReviewNotifier struct {
	Channel   *amqp.Channel
	Log       *zap.Logger
	QueueName string
}

// NewRabbitMQReviewNotifier opens a channel and declares the durable review
// queue so consumers can bind before the first analysis is flagged.
func NewRabbitMQReviewNotifier(conn *amqp.Connection, logger *zap.Logger, queueName string) (contracts.ReviewNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queueName)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queueName)
	}

	return &rabbitMQReviewNotifier{
		Channel:   ch,
		Log:       logger,
		QueueName: queueName,
	}, nil
}

func (n *rabbitMQReviewNotifier) PublishReviewRequest(ctx context.Context, message *requests.ReviewNotification) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = n.Channel.PublishWithContext(ctx, "", n.QueueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, n.QueueName)
	}

	n.Log.Info("Review request published",
		zap.String(constvars.LoggingQueueKey, n.QueueName),
		zap.String(constvars.LoggingImageIDKey, message.ImageID),
	)
	return nil
}
