package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"echosee-be/pkg/events"
	pkgNats "echosee-be/pkg/nats"
	"echosee-be/pkg/order"
)

type IPublisherService interface {
	PublishOrderCompleted(ctx context.Context, state order.State, receipt string) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	natsPub   *pkgNats.Publisher // optional, nil when NATS_URL is unset
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, natsPub *pkgNats.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		natsPub:   natsPub,
	}
}

// PublishOrderCompleted hands the confirmed order to the in-process bus for
// the confirmation mailer, and mirrors it to NATS when a bus is configured.
func (ps *publisherService) PublishOrderCompleted(ctx context.Context, state order.State, receipt string) error {
	event := events.NewOrderCompleted(state.Name, state.Email, string(state.Plan), string(state.PaymentType), receipt)

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return err
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		return err
	}

	if ps.natsPub != nil {
		if err := ps.natsPub.Publish(ctx, event); err != nil {
			// The local consumer already has the event; external mirroring
			// is best-effort.
			log.Printf("[WARN] Failed to mirror %s to NATS: %v", event.EventType(), err)
		}
	}

	return nil
}
