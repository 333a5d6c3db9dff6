package ws

import (
	"encoding/json"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// requests
	MessageTypeMove       MessageType = "move"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeState      MessageType = "state"
	MessageTypeBot        MessageType = "bot"

	// replies; legalMoves doubles as its own reply type
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload carries a move request in algebraic squares.
type MovePayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// LegalMovesPayload is both the request (From only, empty for every move) and
// the reply.
type LegalMovesPayload struct {
	From  string       `json:"from,omitempty"`
	Moves []model.Move `json:"moves,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorMessage never fails: the payload is a plain string.
func ErrorMessage(err error) Message {
	raw, _ := json.Marshal(ErrorPayload{Error: err.Error()})
	return Message{Type: MessageTypeError, Payload: raw}
}
