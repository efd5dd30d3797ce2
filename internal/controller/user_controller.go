package controller

import (
	"groupchat-be/internal/dto"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Upsert(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put("/me", c.Upsert)
	h.Get("/:id", c.Show)
}

// Upsert creates the caller's profile on first write and patches only the
// provided fields after that.
func (c *userController) Upsert(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.UpsertUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Upsert(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upsert user", res))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}
