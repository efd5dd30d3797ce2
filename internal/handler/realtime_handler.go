package handler

import (
	"os"

	"groupchat-be/internal/pkg/logger"
	internalWS "groupchat-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RealtimeHandler upgrades authenticated clients onto a group's websocket
// feed.
type RealtimeHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewRealtimeHandler(hub *internalWS.Hub, log logger.ILogger) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, logger: log}
}

func (h *RealtimeHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/v1/groups/:groupId", h.ServeWs)
}

// ServeWs handles websocket requests from the peer.
func (h *RealtimeHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the token is
	// accepted from the query string first, then the Authorization header.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("RealtimeHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group id"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("RealtimeHandler", "Starting WebSocket session", map[string]interface{}{
				"user_id": userID, "group_id": groupID,
			})
			internalWS.ServeWs(h.hub, conn, groupID, userID)
			h.logger.Info("RealtimeHandler", "WebSocket session ended", map[string]interface{}{
				"user_id": userID, "group_id": groupID,
			})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
