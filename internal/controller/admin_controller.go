package controller

import (
	"errors"
	"strconv"

	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/pkg/logger"
	"github.com/Vaujx/BAAC/internal/pkg/serverutils"
	"github.com/Vaujx/BAAC/internal/pkg/validation"
	"github.com/Vaujx/BAAC/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	AiReport(ctx *fiber.Ctx) error
	ListDocuments(ctx *fiber.Ctx) error
	UpdateDocumentStatus(ctx *fiber.Ctx) error
	ReloadSettings(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService    service.IAdminService
	documentService service.IDocumentService
	logger          logger.ILogger
}

func NewAdminController(adminService service.IAdminService, documentService service.IDocumentService, sysLogger logger.ILogger) IAdminController {
	return &adminController{
		adminService:    adminService,
		documentService: documentService,
		logger:          sysLogger,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	r.Get("/admin_stats", serverutils.AdminSessionMiddleware, c.Stats)
	r.Get("/ai_report", serverutils.AdminSessionMiddleware, c.AiReport)

	admin := r.Group("/admin", serverutils.AdminSessionMiddleware)
	admin.Get("/documents", c.ListDocuments)
	admin.Patch("/documents/:id/status", c.UpdateDocumentStatus)
	admin.Post("/settings/reload", c.ReloadSettings)
	admin.Get("/logs", c.Logs)
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	res, err := c.adminService.Stats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}
	return ctx.JSON(res)
}

func (c *adminController) AiReport(ctx *fiber.Ctx) error {
	res, err := c.adminService.AiReport(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}
	return ctx.JSON(res)
}

func (c *adminController) ListDocuments(ctx *fiber.Ctx) error {
	res, err := c.documentService.List(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Documents retrieved",
		"data":    res,
	})
}

func (c *adminController) UpdateDocumentStatus(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var req dto.UpdateDocumentStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.documentService.UpdateStatus(ctx.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Status updated",
		"data":    nil,
	})
}

func (c *adminController) ReloadSettings(ctx *fiber.Ctx) error {
	res, err := c.adminService.ReloadSettings(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Settings reloaded",
		"data":    res,
	})
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logs retrieved",
		"data":    entries,
	})
}
