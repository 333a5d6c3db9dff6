package middleware

import (
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// GameIDKey is the Locals key under which the resolved game ID is stored.
const GameIDKey = "gameID"

// RequireGame resolves the :gameId route parameter against the registry and
// stops the request with 404 when the game does not exist.
func RequireGame(gameService *service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}

		if !gameService.GameExists(gameID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": service.ErrGameNotFound.Error(),
			})
		}

		c.Locals(GameIDKey, gameID)
		return c.Next()
	}
}
