package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

// errorStatus maps service and engine errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidFEN), errors.Is(err, model.ErrInvalidSquare):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrInvalidMove),
		errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrWrongTurn),
		errors.Is(err, model.ErrPromotionRequired),
		errors.Is(err, model.ErrInvalidPromotion),
		errors.Is(err, service.ErrNoLegalMove):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func gameID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.GameIDKey).(string); ok {
		return id
	}
	return c.Params("gameId")
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	snap, err := gc.gameService.GetGameState(gameID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	from := c.Query("from")
	moves, err := gc.gameService.LegalMoves(gameID(c), from)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from,
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req service.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	snap, err := gc.gameService.HandleMove(gameID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) BotMove(c *fiber.Ctx) error {
	snap, err := gc.gameService.BotMove(gameID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	snap, err := gc.gameService.ResetGame(gameID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(gameID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
