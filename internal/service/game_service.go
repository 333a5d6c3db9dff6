package service

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// MoveRequest is a move as clients send it: squares in algebraic form and an
// optional promotion piece ("queen" or "q").
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

func (r MoveRequest) toMove() (model.Move, error) {
	from, err := model.ParsePosition(r.From)
	if err != nil {
		return model.Move{}, err
	}
	to, err := model.ParsePosition(r.To)
	if err != nil {
		return model.Move{}, err
	}
	move := model.Move{From: from, To: to}
	if r.Promotion != "" {
		pt, ok := model.ParsePieceType(r.Promotion)
		if !ok {
			return model.Move{}, fmt.Errorf("%w: %q", model.ErrInvalidPromotion, r.Promotion)
		}
		move.PromotesTo = pt
	}
	return move, nil
}

type GameService struct {
	gameManager *GameManager
	bot         Bot
}

func NewGameService(gameManager *GameManager, bot Bot) *GameService {
	return &GameService{
		gameManager: gameManager,
		bot:         bot,
	}
}

// CreateGame starts a game from the initial position, or from fen when it is
// not empty, and returns its ID.
func (gs *GameService) CreateGame(fen string) (string, error) {
	game := model.NewGame()
	if fen != "" {
		var err error
		if game, err = model.NewGameFromFEN(fen); err != nil {
			return "", err
		}
	}

	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID, game); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) GameExists(gameID string) bool {
	return gs.gameManager.HasGame(gameID)
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.ListGames()
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	return gs.gameManager.GetGameState(gameID)
}

// LegalMoves lists the legal moves from one square, or for the whole side to
// move when from is empty.
func (gs *GameService) LegalMoves(gameID, from string) ([]model.Move, error) {
	var moves []model.Move
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		if from == "" {
			moves = g.AllLegalMoves()
			return nil
		}
		pos, err := model.ParsePosition(from)
		if err != nil {
			return err
		}
		moves, err = g.LegalMoves(pos)
		return err
	})
	return moves, err
}

func (gs *GameService) HandleMove(gameID string, req MoveRequest) (model.Snapshot, error) {
	move, err := req.toMove()
	if err != nil {
		return model.Snapshot{}, err
	}
	ply, snap, err := gs.gameManager.MakeMove(gameID, move)
	if err != nil {
		log.Warnf("move %s%s rejected in game %s: %v", req.From, req.To, gameID, err)
		return model.Snapshot{}, err
	}
	log.Infow("move played", "gameId", gameID, "move", ply.Notation, "status", snap.Status.String())
	return snap, nil
}

// BotMove lets the configured bot play one move for the side to move.
func (gs *GameService) BotMove(gameID string) (model.Snapshot, error) {
	var (
		ply  model.Ply
		snap model.Snapshot
	)
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		if st := g.Status(); st.IsTerminal() {
			return fmt.Errorf("%w: %s", model.ErrGameOver, st)
		}
		move, ok := gs.bot.ChooseMove(g.AllLegalMoves())
		if !ok {
			return ErrNoLegalMove
		}
		var err error
		if ply, err = g.ApplyMove(move); err != nil {
			return err
		}
		snap = g.Snapshot()
		return nil
	})
	if err != nil {
		return model.Snapshot{}, err
	}
	log.Infow("bot moved", "gameId", gameID, "move", ply.Notation, "status", snap.Status.String())
	return snap, nil
}

func (gs *GameService) ResetGame(gameID string) (model.Snapshot, error) {
	var snap model.Snapshot
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		g.Reset()
		snap = g.Snapshot()
		return nil
	})
	if err == nil {
		log.Infow("game reset", "gameId", gameID)
	}
	return snap, err
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}
