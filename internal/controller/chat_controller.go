package controller

import (
	"errors"

	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/pkg/serverutils"
	"github.com/Vaujx/BAAC/internal/pkg/validation"
	"github.com/Vaujx/BAAC/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Landing(ctx *fiber.Ctx) error
	GetResponse(ctx *fiber.Ctx) error
	ClearContext(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Landing)
	r.Post("/get_response", serverutils.OptionalJwtMiddleware, c.GetResponse)
	r.Post("/clear_context", c.ClearContext)

	chats := r.Group("/api/chats", serverutils.JwtMiddleware)
	chats.Post("/", c.CreateChat)
	chats.Get("/", c.ListChats)
	chats.Get("/:id", c.ChatHistory)
	chats.Delete("/:id", c.DeleteChat)
}

// Landing records a website visit and resets the visitor's anonymous
// conversation context, the same as reloading the page.
func (c *chatController) Landing(ctx *fiber.Ctx) error {
	sess, err := serverutils.GetSession(ctx)
	if err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}

	_ = c.service.LogVisit(ctx.Context(), sess.ID())

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Barangay Amungan Assistant Chatbot",
		"data":    nil,
	})
}

func (c *chatController) GetResponse(ctx *fiber.Ctx) error {
	var req dto.GetResponseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Prompt is required"})
	}

	sess, err := serverutils.GetSession(ctx)
	if err != nil {
		return err
	}

	userID := currentUserID(ctx)

	resp, err := c.service.SendMessage(ctx.Context(), sess.ID(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrompt) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Prompt is required"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}

	if resp.AdminAuthenticated {
		sess.Set(serverutils.SessionAdminKey, true)
	}
	if err := sess.Save(); err != nil {
		return err
	}

	return ctx.JSON(resp)
}

func (c *chatController) ClearContext(ctx *fiber.Ctx) error {
	sess, err := serverutils.GetSession(ctx)
	if err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}

	if err := c.service.ClearContext(ctx.Context(), sess.ID()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Context cleared",
		"data":    nil,
	})
}

func (c *chatController) CreateChat(ctx *fiber.Ctx) error {
	var req dto.CreateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	userID := currentUserID(ctx)
	if userID == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	res, err := c.service.CreateChat(ctx.Context(), *userID, req.Title)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Chat created",
		"data":    res,
	})
}

func (c *chatController) ListChats(ctx *fiber.Ctx) error {
	userID := currentUserID(ctx)
	if userID == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	res, err := c.service.ListChats(ctx.Context(), *userID)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Chats retrieved",
		"data":    res,
	})
}

func (c *chatController) ChatHistory(ctx *fiber.Ctx) error {
	userID := currentUserID(ctx)
	if userID == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	chatID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	res, err := c.service.ChatHistory(ctx.Context(), *userID, chatID)
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "History retrieved",
		"data":    res,
	})
}

func (c *chatController) DeleteChat(ctx *fiber.Ctx) error {
	userID := currentUserID(ctx)
	if userID == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	chatID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	if err := c.service.DeleteChat(ctx.Context(), *userID, chatID); err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Chat deleted",
		"data":    nil,
	})
}

// currentUserID reads the identity set by the JWT middleware; nil for
// anonymous callers.
func currentUserID(ctx *fiber.Ctx) *uuid.UUID {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
