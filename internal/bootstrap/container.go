package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"echosee-be/internal/config"
	"echosee-be/internal/controller"
	"echosee-be/internal/pkg/logger"
	"echosee-be/internal/pkg/mailer"
	"echosee-be/internal/repository/memory"
	"echosee-be/internal/service"
	"echosee-be/pkg/gateway"
	"echosee-be/pkg/llm/factory"
	pkgNats "echosee-be/pkg/nats"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	PlanController    controller.IPlanController
	ContactController controller.IContactController

	// Exposed for the websocket transport and main.go
	ChatService     service.IChatService
	ConsumerService service.IConsumerService
	Logger          logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional external mirror for order events
	var natsPub *pkgNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Completion provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.GroqAPIKey,
		groqOrOllamaBaseURL(cfg),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	completionGateway := gateway.NewCompletionGateway(llmProvider)

	// 4. In-memory session storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Orders.SessionTTLMins) * time.Minute)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Orders.CompletedTopic, pubSub, natsPub)
	consumerService := service.NewConsumerService(pubSub, cfg.Orders.CompletedTopic, emailService)
	chatService := service.NewChatService(sessionRepo, completionGateway, publisherService, sysLogger)

	// 6. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		PlanController:    controller.NewPlanController(),
		ContactController: controller.NewContactController(emailService, cfg.Contact.InboxEmail, sysLogger),

		ChatService:     chatService,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

func groqOrOllamaBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.GroqBaseURL
}
