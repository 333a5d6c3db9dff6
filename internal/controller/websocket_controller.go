package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection serves one connection. Every text message gets exactly one
// reply on the same connection; nothing is pushed unprompted.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals(middleware.GameIDKey).(string)
	if gameID == "" {
		gameID = c.Params("gameId")
	}
	log.Infow("websocket connected", "gameId", gameID)
	defer log.Infow("websocket closed", "gameId", gameID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("read error in game %s: %v", gameID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var reply ws.Message
		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			reply = ws.ErrorMessage(fmt.Errorf("malformed message: %w", err))
		} else {
			reply = wsc.handleMessage(gameID, msg)
		}

		if err := c.WriteJSON(reply); err != nil {
			log.Warnf("write error in game %s: %v", gameID, err)
			return
		}
	}
}

// handleMessage dispatches one request and builds its reply.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) ws.Message {
	reply, err := wsc.dispatch(gameID, msg)
	if err != nil {
		return ws.ErrorMessage(err)
	}
	return reply
}

func (wsc *WebSocketController) dispatch(gameID string, msg ws.Message) (ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return ws.Message{}, fmt.Errorf("malformed move: %w", err)
		}
		snap, err := wsc.gameService.HandleMove(gameID, service.MoveRequest{
			From:      move.From,
			To:        move.To,
			Promotion: move.Promotion,
		})
		if err != nil {
			return ws.Message{}, err
		}
		return ws.NewMessage(ws.MessageTypeGameState, snap)

	case ws.MessageTypeLegalMoves:
		var req ws.LegalMovesPayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				return ws.Message{}, fmt.Errorf("malformed legal moves request: %w", err)
			}
		}
		moves, err := wsc.gameService.LegalMoves(gameID, req.From)
		if err != nil {
			return ws.Message{}, err
		}
		return ws.NewMessage(ws.MessageTypeLegalMoves, ws.LegalMovesPayload{From: req.From, Moves: moves})

	case ws.MessageTypeState:
		snap, err := wsc.gameService.GetGameState(gameID)
		if err != nil {
			return ws.Message{}, err
		}
		return ws.NewMessage(ws.MessageTypeGameState, snap)

	case ws.MessageTypeBot:
		snap, err := wsc.gameService.BotMove(gameID)
		if err != nil {
			return ws.Message{}, err
		}
		return ws.NewMessage(ws.MessageTypeGameState, snap)

	default:
		return ws.Message{}, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
