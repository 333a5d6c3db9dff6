package middleware

import (
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts
// for a game that exists, before the connection is upgraded.
func WebSocketUpgrade(gameService *service.GameService) fiber.Handler {
	requireGame := RequireGame(gameService)
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		// The game ID is copied into Locals so it survives the upgrade.
		return requireGame(c)
	}
}
