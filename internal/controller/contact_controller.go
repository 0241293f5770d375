package controller

import (
	"github.com/gofiber/fiber/v2"

	"echosee-be/internal/dto"
	"echosee-be/internal/pkg/logger"
	"echosee-be/internal/pkg/mailer"
	"echosee-be/internal/pkg/serverutils"
)

type IContactController interface {
	RegisterRoutes(api fiber.Router)
}

type contactController struct {
	emailService mailer.IEmailService
	inboxEmail   string
	log          logger.ILogger
}

func NewContactController(emailService mailer.IEmailService, inboxEmail string, log logger.ILogger) IContactController {
	return &contactController{
		emailService: emailService,
		inboxEmail:   inboxEmail,
		log:          log,
	}
}

func (c *contactController) RegisterRoutes(api fiber.Router) {
	api.Post("/contact", c.Submit)
}

// Submit relays a contact-form message to the support inbox.
func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.emailService.SendContactMessage(c.inboxEmail, req.Name, req.Email, req.Subject, req.Message); err != nil {
		c.log.Error("contact", "failed to relay contact message", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to send message"))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Message sent", nil))
}
