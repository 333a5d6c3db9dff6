package controller

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

func newWSController(t *testing.T) (*WebSocketController, string) {
	t.Helper()
	gs := service.NewGameService(service.NewGameManager(), service.NewRandomBot(5))
	id, err := gs.CreateGame("")
	if err != nil {
		t.Fatal(err)
	}
	return NewWebSocketController(gs), id
}

func request(t *testing.T, typ ws.MessageType, payload any) ws.Message {
	t.Helper()
	if payload == nil {
		return ws.Message{Type: typ}
	}
	msg, err := ws.NewMessage(typ, payload)
	if err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestWebSocketMoveReply(t *testing.T) {
	wsc, id := newWSController(t)

	reply := wsc.handleMessage(id, request(t, ws.MessageTypeMove, ws.MovePayload{From: "d2", To: "d4"}))
	if reply.Type != ws.MessageTypeGameState {
		t.Fatalf("reply %s: %s", reply.Type, reply.Payload)
	}
	snap := decodeSnapshot(t, reply.Payload)
	if snap.MoveText != "1. d4" || snap.ToMove != model.Black {
		t.Fatalf("unexpected state %+v", snap)
	}

	reply = wsc.handleMessage(id, request(t, ws.MessageTypeMove, ws.MovePayload{From: "d4", To: "d5"}))
	if reply.Type != ws.MessageTypeError {
		t.Fatalf("expected error reply for wrong turn, got %s", reply.Type)
	}
	var errPayload ws.ErrorPayload
	if err := json.Unmarshal(reply.Payload, &errPayload); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errPayload.Error, model.ErrWrongTurn.Error()) {
		t.Fatalf("error payload %q", errPayload.Error)
	}
}

func TestWebSocketLegalMoves(t *testing.T) {
	wsc, id := newWSController(t)

	reply := wsc.handleMessage(id, request(t, ws.MessageTypeLegalMoves, ws.LegalMovesPayload{From: "b1"}))
	if reply.Type != ws.MessageTypeLegalMoves {
		t.Fatalf("reply %s: %s", reply.Type, reply.Payload)
	}
	var payload ws.LegalMovesPayload
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.From != "b1" || len(payload.Moves) != 2 {
		t.Fatalf("payload %+v", payload)
	}

	reply = wsc.handleMessage(id, request(t, ws.MessageTypeLegalMoves, nil))
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Moves) != 20 {
		t.Fatalf("all moves: %d", len(payload.Moves))
	}
}

func TestWebSocketStateAndBot(t *testing.T) {
	wsc, id := newWSController(t)

	reply := wsc.handleMessage(id, request(t, ws.MessageTypeState, nil))
	if reply.Type != ws.MessageTypeGameState {
		t.Fatalf("state reply %s", reply.Type)
	}
	if snap := decodeSnapshot(t, reply.Payload); snap.FEN != model.InitialFEN {
		t.Fatalf("state %s", snap.FEN)
	}

	reply = wsc.handleMessage(id, request(t, ws.MessageTypeBot, nil))
	if reply.Type != ws.MessageTypeGameState {
		t.Fatalf("bot reply %s: %s", reply.Type, reply.Payload)
	}
	if snap := decodeSnapshot(t, reply.Payload); snap.ToMove != model.Black {
		t.Fatalf("bot did not move")
	}
}

func TestWebSocketBadRequests(t *testing.T) {
	wsc, id := newWSController(t)

	tests := []struct {
		name string
		game string
		msg  ws.Message
	}{
		{"unknown type", id, ws.Message{Type: "resign"}},
		{"malformed move", id, ws.Message{Type: ws.MessageTypeMove, Payload: json.RawMessage(`"e2e4"`)}},
		{"unknown game", "missing", ws.Message{Type: ws.MessageTypeState}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if reply := wsc.handleMessage(tt.game, tt.msg); reply.Type != ws.MessageTypeError {
				t.Fatalf("expected error reply, got %s", reply.Type)
			}
		})
	}
}
