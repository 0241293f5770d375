package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"echosee-be/internal/pkg/mailer"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns ORDER_COMPLETED events into confirmation emails,
// off the request path so a slow SMTP server never delays the chat reply.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

type orderCompletedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Receipt string `json:"receipt"`
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload orderCompletedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal order event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.Email == "" {
		// Extraction never captured an address to mail to; nothing to do.
		log.Printf("[WARN] Order completed without an email address, skipping confirmation")
		msg.Ack()
		return
	}

	if err := cs.emailService.SendOrderConfirmation(payload.Email, payload.Name, payload.Receipt); err != nil {
		log.Printf("[ERROR] Failed to send confirmation email: %v", err)
		// Ack anyway: the receipt was already shown in the chat, retrying a
		// broken SMTP setup in a loop helps nobody.
	}

	msg.Ack()
}
