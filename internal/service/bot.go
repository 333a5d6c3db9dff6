package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// Bot picks one of the legal moves it is handed, or reports false when there
// is nothing to pick. Promotion moves must come back with PromotesTo set.
type Bot interface {
	ChooseMove(moves []model.Move) (model.Move, bool)
}

// RandomBot plays a uniformly random legal move and always promotes to a queen.
type RandomBot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomBot seeds the bot; a zero seed picks one from the clock.
func NewRandomBot(seed uint64) *RandomBot {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomBot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *RandomBot) ChooseMove(moves []model.Move) (model.Move, bool) {
	if len(moves) == 0 {
		return model.Move{}, false
	}
	b.mu.Lock()
	m := moves[b.rng.IntN(len(moves))]
	b.mu.Unlock()

	if m.Kind == model.Promotion {
		m.PromotesTo = model.Queen
	}
	return m, true
}
