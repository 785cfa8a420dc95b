package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/crm-backend/internal/entity"
	"github.com/xavierca1/crm-backend/internal/infra/http/middleware"
)

// Worker consumes the lead-import queue and writes leads into the store.
// It is the only path in this service that creates leads.
type Worker struct {
	Channel *amqp.Channel
	Leads   entity.LeadRepositoryInterface
}

func NewWorker(ch *amqp.Channel, leads entity.LeadRepositoryInterface) *Worker {
	return &Worker{Channel: ch, Leads: leads}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("registering lead-import consumer: %s", err)
	}

	log.Printf("lead-import worker waiting on queue %q", queueName)

	for d := range msgs {
		var payload LeadImportPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("lead import: malformed message: %s", err)
			middleware.RecordLeadImport("malformed")
			// Poison message; reject without requeue so it dead-letters.
			d.Nack(false, false)
			continue
		}

		switch err := w.processMessage(context.Background(), payload); {
		case err == nil:
			middleware.RecordLeadImport("created")
			d.Ack(false)
		case errors.Is(err, entity.ErrDuplicateEmail):
			// Already imported; nothing left to do with this message.
			log.Printf("lead import: %s already exists", payload.Email)
			middleware.RecordLeadImport("duplicate")
			d.Ack(false)
		default:
			log.Printf("lead import: storing %s failed: %s", payload.Email, err)
			middleware.RecordLeadImport("failed")
			d.Nack(false, false)
		}
	}
}

func (w *Worker) processMessage(ctx context.Context, payload LeadImportPayload) error {
	lead := &entity.Lead{
		Name:   payload.Name,
		Email:  payload.Email,
		Phone:  payload.Phone,
		Source: payload.Source,
		Status: payload.Status,
	}
	if lead.Name == "" || lead.Email == "" {
		log.Printf("lead import: skipping record without name/email")
		return nil
	}
	if !entity.ValidSource(lead.Source) {
		lead.Source = entity.SourceWebsite
	}
	if !entity.ValidStatus(lead.Status) {
		lead.Status = entity.StatusNew
	}
	return w.Leads.Create(ctx, lead)
}
