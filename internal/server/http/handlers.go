package httpserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
)

// Handler 持有对局和引擎；一个 Engine 可以被并发请求共用
type Handler struct {
	games  *game.Manager
	engine *engine.Engine
	logger zerolog.Logger
}

func NewHandler(games *game.Manager, eng *engine.Engine) *Handler {
	return &Handler{
		games:  games,
		engine: eng,
		logger: log.Logger.With().Str("component", "http").Logger(),
	}
}

func (h *Handler) Games() *game.Manager { return h.games }

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, checkers.ErrInvalidBoard):
		return fiber.StatusBadRequest
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotYourTurn):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

func (h *Handler) NewGame(c *fiber.Ctx) error {
	g := h.games.NewGame()
	h.logger.Info().Str("game_id", g.ID).Msg("game created")
	return c.JSON(stateOf(g))
}

func (h *Handler) State(c *fiber.Ctx) error {
	var req StateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "bad json")
	}
	return h.writeState(c, req.GameID)
}

func (h *Handler) GetState(c *fiber.Ctx) error {
	return h.writeState(c, c.Params("gameId"))
}

func (h *Handler) writeState(c *fiber.Ctx, gameID string) error {
	g, err := h.games.Get(gameID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stateOf(g))
}

func (h *Handler) Play(c *fiber.Ctx) error {
	var req PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "bad json")
	}
	resp, err := h.playTurn(req.GameID, req.Move)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// playTurn 人类走一步，对局没结束就让电脑接着走。HTTP 和 websocket 共用。
func (h *Handler) playTurn(gameID string, move MoveDTO) (PlayResponse, error) {
	g, err := h.games.Get(gameID)
	if err != nil {
		return PlayResponse{}, err
	}

	human, err := g.PlayHuman(move.From, move.To)
	if err != nil {
		return PlayResponse{}, err
	}
	resp := PlayResponse{HumanMove: moveToDTO(human)}

	if !g.Status().Over {
		res, err := g.PlayComputer(h.engine)
		switch {
		case err == nil:
			dto := moveToDTO(res.BestMove)
			resp.ComputerMove = &dto
			resp.Score = res.Score
			resp.Nodes = res.Nodes
			resp.TimeMs = res.TimeUsed.Milliseconds()
		case errors.Is(err, game.ErrNoMoves), errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotYourTurn):
			// 别的连接已经替电脑走过了
		default:
			return PlayResponse{}, err
		}
	}

	resp.State = stateOf(g)
	if resp.State.Status != "ongoing" {
		h.logger.Info().Str("game_id", g.ID).Str("status", resp.State.Status).Msg("game finished")
	}
	return resp, nil
}

// AiMove 无状态分析：给局面和执棋方，返回引擎的选择，不落子
func (h *Handler) AiMove(c *fiber.Ctx) error {
	var req AiMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "bad json")
	}
	if req.Position == "" {
		return badRequest(c, "missing position")
	}
	b, err := checkers.DecodeBoard(req.Position)
	if err != nil {
		return writeError(c, err)
	}

	side := checkers.Black
	if req.ToMove != "" {
		if side, err = checkers.ParseSide(req.ToMove); err != nil {
			return badRequest(c, err.Error())
		}
	}

	res := h.engine.BestMove(b, side)
	resp := AiMoveResponse{
		BestMove: moveToDTO(res.BestMove),
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
		Status:   "ok",
	}
	if res.BestMove.IsNone() {
		resp.Status = "no_moves"
	}
	return c.JSON(resp)
}
