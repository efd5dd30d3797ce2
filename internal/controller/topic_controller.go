package controller

import (
	"groupchat-be/internal/dto"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITopicController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type topicController struct {
	service service.ITopicService
}

func NewTopicController(service service.ITopicService) ITopicController {
	return &topicController{service: service}
}

func (c *topicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/groups/v1/:groupId/topics")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
}

func (c *topicController) Create(ctx *fiber.Ctx) error {
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewValidationError("Invalid group id")
	}

	var req dto.CreateTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), groupId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create topic", res))
}

func (c *topicController) GetAll(ctx *fiber.Ctx) error {
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewValidationError("Invalid group id")
	}

	res, err := c.service.GetAll(ctx.Context(), groupId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all topics", res))
}
