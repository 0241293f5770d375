// Controller for plan-related endpoints
package controller

import (
	"github.com/gofiber/fiber/v2"

	"echosee-be/internal/pkg/serverutils"
	"echosee-be/pkg/catalog"
)

type IPlanController interface {
	RegisterRoutes(api fiber.Router)
}

type planController struct{}

func NewPlanController() IPlanController {
	return &planController{}
}

func (c *planController) RegisterRoutes(api fiber.Router) {
	api.Get("/plans", c.GetAllPlans)
}

// GetAllPlans returns the static plan catalog used by the pricing page and
// the chat widget's plan cards.
func (c *planController) GetAllPlans(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", catalog.Plans()))
}
