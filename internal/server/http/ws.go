package httpserver

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// MessageType represents the different kinds of messages the socket handles
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeState     MessageType = "state"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeTurn      MessageType = "turn"
	MessageTypeError     MessageType = "error"
)

type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WebSocketUpgrade rejects plain HTTP requests to socket endpoints.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// HandleConnection serves one client for one game until the socket closes.
func (h *Handler) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	logger := h.logger.With().Str("game_id", gameID).Logger()

	g, err := h.games.Get(gameID)
	if err != nil {
		h.sendError(c, err.Error())
		c.Close()
		return
	}
	logger.Debug().Msg("websocket connected")
	h.send(c, MessageTypeGameState, stateOf(g))

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			logger.Debug().Err(err).Msg("websocket closed")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(c, "bad json")
			continue
		}
		if err := h.handleMessage(c, gameID, msg); err != nil {
			logger.Warn().Err(err).Str("type", string(msg.Type)).Msg("websocket message failed")
			h.sendError(c, err.Error())
		}
	}
}

func (h *Handler) handleMessage(c *websocket.Conn, gameID string, msg Message) error {
	switch msg.Type {
	case MessageTypeMove:
		var move MoveDTO
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		resp, err := h.playTurn(gameID, move)
		if err != nil {
			return err
		}
		h.send(c, MessageTypeTurn, resp)
		return nil

	case MessageTypeState:
		g, err := h.games.Get(gameID)
		if err != nil {
			return err
		}
		h.send(c, MessageTypeGameState, stateOf(g))
		return nil

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (h *Handler) send(c *websocket.Conn, t MessageType, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal websocket payload")
		return
	}
	if err := c.WriteJSON(Message{Type: t, Payload: payload}); err != nil {
		h.logger.Debug().Err(err).Msg("websocket write")
	}
}

func (h *Handler) sendError(c *websocket.Conn, errorMsg string) {
	h.send(c, MessageTypeError, fiber.Map{"error": errorMsg})
}
