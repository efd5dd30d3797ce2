package controller

import (
	"groupchat-be/internal/dto"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGroupController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type groupController struct {
	service service.IGroupService
}

func NewGroupController(service service.IGroupService) IGroupController {
	return &groupController{service: service}
}

func (c *groupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/groups/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":groupId", c.Show)
}

func (c *groupController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CreateGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create group", res))
}

func (c *groupController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all groups", res))
}

func (c *groupController) Show(ctx *fiber.Ctx) error {
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewValidationError("Invalid group id")
	}

	res, err := c.service.Show(ctx.Context(), groupId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show group", res))
}
