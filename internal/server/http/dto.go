package httpserver

import (
	"checkers/internal/checkers"
	"checkers/internal/game"
)

// 前端用的招法结构
type MoveDTO struct {
	From     checkers.Position   `json:"from"`
	To       checkers.Position   `json:"to"`
	Captured []checkers.Position `json:"captured,omitempty"`
}

func moveToDTO(m checkers.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To, Captured: m.Captured}
}

func movesToDTO(ms []checkers.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// NewGame / State 返回
type StateResponse struct {
	GameID      string    `json:"game_id"`
	Position    string    `json:"position"` // Board.Encode()
	ToMove      string    `json:"to_move"`  // "white" / "black"
	LegalMoves  []MoveDTO `json:"legal_moves"`
	Status      string    `json:"status"` // "ongoing" / "white_wins" / "black_wins"
	WhitePieces int       `json:"white_pieces"`
	BlackPieces int       `json:"black_pieces"`
	Moves       int       `json:"moves"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求：人类的一步，只需要起点和终点
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// Play 返回：人类这一步 + 电脑的回应（对局已结束则没有）
type PlayResponse struct {
	HumanMove    MoveDTO       `json:"human_move"`
	ComputerMove *MoveDTO      `json:"computer_move,omitempty"`
	Score        int           `json:"score"`
	Nodes        int64         `json:"nodes"`
	TimeMs       int64         `json:"time_ms"`
	State        StateResponse `json:"state"`
}

// AiMoveRequest 只思考不落子，局面由请求带过来
type AiMoveRequest struct {
	Position string `json:"position"`
	ToMove   string `json:"to_move"` // 缺省为 black
}

type AiMoveResponse struct {
	BestMove MoveDTO `json:"best_move"`
	Score    int     `json:"score"`
	Depth    int     `json:"depth"`
	Nodes    int64   `json:"nodes"`
	TimeMs   int64   `json:"time_ms"`
	Status   string  `json:"status"` // "ok" / "no_moves"
}

func statusString(st game.Status) string {
	if !st.Over {
		return "ongoing"
	}
	if st.Winner == checkers.White {
		return "white_wins"
	}
	return "black_wins"
}

func stateOf(g *game.Game) StateResponse {
	snap := g.Snapshot()

	legal := []checkers.Move{}
	if !snap.Status.Over {
		legal = snap.Board.GetAllMoves(snap.ToMove)
	}
	return StateResponse{
		GameID:      g.ID,
		Position:    snap.Board.Encode(),
		ToMove:      snap.ToMove.String(),
		LegalMoves:  movesToDTO(legal),
		Status:      statusString(snap.Status),
		WhitePieces: snap.Status.WhitePieces,
		BlackPieces: snap.Status.BlackPieces,
		Moves:       snap.Moves,
	}
}
