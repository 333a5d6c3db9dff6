package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrNoLegalMove  = errors.New("no legal move available")
)

// session serializes access to one game. Games never share a session, so
// moves in different games never wait on each other.
type session struct {
	mu   sync.Mutex
	game *model.Game
}

// GameManager is the registry of live games. Its lock only guards the map;
// each game carries its own.
type GameManager struct {
	games map[string]*session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*session),
	}
}

func (gm *GameManager) CreateGame(gameID string, game *model.Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	gm.games[gameID] = &session{game: game}
	log.Infow("game registered", "gameId", gameID, "games", len(gm.games))
	return nil
}

func (gm *GameManager) getSession(gameID string) (*session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return s, nil
}

func (gm *GameManager) HasGame(gameID string) bool {
	_, err := gm.getSession(gameID)
	return err == nil
}

// ListGames returns the IDs of all live games in sorted order.
func (gm *GameManager) ListGames() []string {
	gm.mu.RLock()
	ids := maps.Keys(gm.games)
	gm.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(gm.games, gameID)
	log.Infow("game deleted", "gameId", gameID, "games", len(gm.games))
	return nil
}

// WithGame runs fn while holding the game's lock. fn must not keep the game
// after it returns.
func (gm *GameManager) WithGame(gameID string, fn func(*model.Game) error) error {
	s, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

func (gm *GameManager) GetGameState(gameID string) (model.Snapshot, error) {
	var snap model.Snapshot
	err := gm.WithGame(gameID, func(g *model.Game) error {
		snap = g.Snapshot()
		return nil
	})
	return snap, err
}

func (gm *GameManager) MakeMove(gameID string, move model.Move) (model.Ply, model.Snapshot, error) {
	var (
		ply  model.Ply
		snap model.Snapshot
	)
	err := gm.WithGame(gameID, func(g *model.Game) error {
		var err error
		if ply, err = g.ApplyMove(move); err != nil {
			return err
		}
		snap = g.Snapshot()
		return nil
	})
	return ply, snap, err
}
