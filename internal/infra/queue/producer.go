package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

const (
	KindEnquiryFulfillment = "enquiry_fulfillment"
	KindSampleRequest      = "sample_request"
)

// LeadJob is the deferred side-effect chain for an already-validated lead.
// Products are re-resolved by the worker from the referenced IDs.
type LeadJob struct {
	Kind string      `json:"kind"`
	Lead entity.Lead `json:"lead"`
}

type QueueProducerInterface interface {
	PublishLeadJob(ctx context.Context, job LeadJob) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadJob(ctx context.Context, job LeadJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal lead job: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish lead job: %v", err)
	}

	return nil
}
