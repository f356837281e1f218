package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

// Worker drains deferred lead jobs. Failures are logged and the message is
// acked anyway: the client already got its 200, nothing downstream retries.
type Worker struct {
	Channel   *amqp.Channel
	Enquiries *usecase.ProductEnquiryUseCase
	Samples   *usecase.SampleRequestUseCase
}

func NewWorker(ch *amqp.Channel, enquiries *usecase.ProductEnquiryUseCase, samples *usecase.SampleRequestUseCase) *Worker {
	return &Worker{
		Channel:   ch,
		Enquiries: enquiries,
		Samples:   samples,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job LeadJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("❌ [WORKER] Invalid job payload: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Processing %s job for %s", job.Kind, job.Lead.Email)

			if err := w.process(context.Background(), job); err != nil {
				log.Printf("❌ [WORKER] %s job for %s failed: %v", job.Kind, job.Lead.Email, err)
			} else {
				log.Printf("✅ [WORKER] %s job for %s done", job.Kind, job.Lead.Email)
			}

			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) process(ctx context.Context, job LeadJob) error {
	lead := job.Lead

	switch job.Kind {
	case KindEnquiryFulfillment:
		return w.Enquiries.ExecuteJob(ctx, &lead)
	case KindSampleRequest:
		return w.Samples.Process(ctx, &lead)
	default:
		// Unknown kind: ack it away, nothing knows how to handle it.
		log.Printf("⚠️ [WORKER] Unknown job kind: %s", job.Kind)
		return nil
	}
}
