package messaging

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"os_service_api/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
)

const (
	statusExchange = "os_status_changed"
	queueCapacity  = 64
	publishTimeout = 5 * time.Second
)

// RabbitStatusNotifier publishes status-change notifications to a fanout
// exchange. It is strictly best-effort: StatusChanged enqueues to an
// in-process buffer and returns immediately; one background goroutine drains
// the buffer, and publish failures (or a full buffer) are logged and dropped
// so the order lifecycle is never affected.

type RabbitStatusNotifier struct {
	ch    *amqp091.Channel
	queue chan interfaces.StatusNotification
}

var _ interfaces.INotifier = (*RabbitStatusNotifier)(nil)

func NewRabbitStatusNotifier(conn *amqp091.Connection) (*RabbitStatusNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		statusExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	n := &RabbitStatusNotifier{
		ch:    ch,
		queue: make(chan interfaces.StatusNotification, queueCapacity),
	}
	go n.run()
	return n, nil
}

func (n *RabbitStatusNotifier) StatusChanged(msg interfaces.StatusNotification) {
	select {
	case n.queue <- msg:
	default:
		log.Printf("[notify][rabbit] queue full, dropping notification order_id=%s status=%s", msg.OrderID, msg.Status)
	}
}

func (n *RabbitStatusNotifier) run() {
	for msg := range n.queue {
		n.publish(msg)
	}
}

func (n *RabbitStatusNotifier) publish(msg interfaces.StatusNotification) {
	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[notify][rabbit] marshal failed order_id=%s err=%v", msg.OrderID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = n.ch.PublishWithContext(ctx,
		statusExchange,
		"", // fanout ignores routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		log.Printf("[notify][rabbit] publish failed order_id=%s status=%s err=%v", msg.OrderID, msg.Status, err)
		return
	}
	log.Printf("[notify][rabbit] published order_id=%s order_number=%s status=%s", msg.OrderID, msg.OrderNumber, msg.Status)
}

// Close stops accepting notifications and releases the channel. Messages
// already buffered may be lost; callers should only close on shutdown.
func (n *RabbitStatusNotifier) Close() error {
	close(n.queue)
	return n.ch.Close()
}
