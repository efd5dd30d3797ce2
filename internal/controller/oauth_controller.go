package controller

import (
	"fmt"
	"os"
	"time"

	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// oauthStateCookie holds the CSRF nonce between the login redirect and the
// provider callback.
const oauthStateCookie = "oauth_state"

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service service.IOAuthService
}

func NewOAuthController(service service.IOAuthService) IOAuthController {
	return &oauthController{service: service}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	// e.g., /oauth/google
	h := r.Group("/oauth")
	h.Get("/:provider", c.Login)
	h.Get("/:provider/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")

	url, state, err := c.service.GetLoginURL(provider)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error(), nil))
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return ctx.Redirect(url)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")
	code := ctx.Query("code")

	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Missing code", nil))
	}

	// The state must match the nonce planted at login time, otherwise the
	// callback was not initiated by this browser.
	state := ctx.Query("state")
	if state == "" || state != ctx.Cookies(oauthStateCookie) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid oauth state", nil))
	}
	ctx.ClearCookie(oauthStateCookie)

	res, err := c.service.HandleCallback(ctx.Context(), provider, code)
	if err != nil {
		return err
	}

	// Hand the token back to the frontend via redirect so the flow works
	// from a plain browser navigation.
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		return ctx.JSON(serverutils.SuccessResponse("Success login", res))
	}

	return ctx.Redirect(fmt.Sprintf("%s/auth/callback?token=%s", frontendURL, res.Token))
}
