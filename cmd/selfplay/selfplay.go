package main

import (
	"time"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// turn 一步棋的记录
type turn struct {
	Side   checkers.Side
	Result engine.SearchResult
}

type gameResult struct {
	Winner      checkers.Side // 和棋为 NoSide
	Moves       int
	WhitePieces int
	BlackPieces int
	Turns       []turn
}

func (r gameResult) Outcome() string {
	switch r.Winner {
	case checkers.White:
		return "white wins"
	case checkers.Black:
		return "black wins"
	}
	return "draw"
}

// playGame 双方都用 BestMove，白先。走满 maxMoves 步算和棋。
func playGame(e *engine.Engine, maxMoves int, onTurn func(ply int, t turn)) gameResult {
	b := checkers.NewBoard()
	side := checkers.White
	res := gameResult{Winner: checkers.NoSide}

	for res.Moves < maxMoves {
		if w := b.Winner(); w != checkers.NoSide {
			res.Winner = w
			break
		}

		sr := e.BestMove(b, side)
		if sr.BestMove.IsNone() {
			// 无子可动，当前方输
			res.Winner = checkers.Opposite(side)
			break
		}
		if !b.MakeMove(sr.BestMove) {
			break
		}
		res.Moves++

		t := turn{Side: side, Result: sr}
		res.Turns = append(res.Turns, t)
		if onTurn != nil {
			onTurn(res.Moves, t)
		}
		side = checkers.Opposite(side)
	}
	if res.Winner == checkers.NoSide {
		res.Winner = b.Winner()
	}

	res.WhitePieces = b.CountPieces(checkers.White)
	res.BlackPieces = b.CountPieces(checkers.Black)
	return res
}

type benchResult struct {
	Positions int
	Nodes     int64
	Elapsed   time.Duration
}

func (b benchResult) NPS() int64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return int64(float64(b.Nodes) / b.Elapsed.Seconds())
}

// runBench 跑一盘自对弈，把每步的搜索时间和节点数累加起来
func runBench(e *engine.Engine, positions int) benchResult {
	var out benchResult
	playGame(e, positions, func(_ int, t turn) {
		out.Positions++
		out.Nodes += t.Result.Nodes
		out.Elapsed += t.Result.TimeUsed
	})
	return out
}
