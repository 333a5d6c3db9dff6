package controller

import (
	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api and the websocket endpoint
// under /ws. origins restricts websocket handshakes; empty allows any.
func SetupRoutes(app *fiber.App, gameService *service.GameService, origins []string) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)
	requireGame := middleware.RequireGame(gameService)

	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(gameService), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         origins,
	}))

	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/", gameController.ListGames)
	gameRoutes.Get("/:gameId", requireGame, gameController.GetGameState)
	gameRoutes.Delete("/:gameId", requireGame, gameController.DeleteGame)
	gameRoutes.Get("/:gameId/moves", requireGame, gameController.GetLegalMoves)
	gameRoutes.Post("/:gameId/move", requireGame, gameController.MakeMove)
	gameRoutes.Post("/:gameId/bot", requireGame, gameController.BotMove)
	gameRoutes.Post("/:gameId/reset", requireGame, gameController.ResetGame)
}
