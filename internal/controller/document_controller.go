package controller

import (
	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/pkg/serverutils"
	"github.com/Vaujx/BAAC/internal/pkg/validation"
	"github.com/Vaujx/BAAC/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	r.Post("/submit_document", serverutils.JwtMiddleware, c.Submit)
}

func (c *documentController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := currentUserID(ctx)
	if userID == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	res, err := c.service.Submit(ctx.Context(), *userID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Document request submitted",
		"data":    res,
	})
}
