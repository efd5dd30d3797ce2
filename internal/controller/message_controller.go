package controller

import (
	"strings"

	"groupchat-be/internal/dto"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type messageController struct {
	service service.IMessageService
}

func NewMessageController(service service.IMessageService) IMessageController {
	return &messageController{service: service}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/groups/v1/:groupId/messages")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
}

func (c *messageController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewValidationError("Invalid group id")
	}

	var req dto.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), groupId, userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create message", res))
}

func (c *messageController) List(ctx *fiber.Ctx) error {
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewValidationError("Invalid group id")
	}

	var query dto.ListMessagesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewValidationError("Invalid query parameters")
	}

	// topics= is a comma separated uuid list, parsed by hand so a single
	// malformed id fails the whole request instead of silently matching
	// nothing.
	if raw := ctx.Query("topics"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return serverutils.NewValidationError("Invalid topic id in topics filter")
			}
			query.Topics = append(query.Topics, id)
		}
	}

	res, err := c.service.List(ctx.Context(), groupId, &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}
