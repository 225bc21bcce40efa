package engine

import (
	"math"
	"time"

	"checkers/internal/checkers"
)

const (
	// SearchDepth 根节点每个候选走法之后再往下搜的层数，固定不变
	SearchDepth = 3

	// WinScore 终局分：黑胜为正，白胜为负
	WinScore = 1000
)

// 搜索结果
type SearchResult struct {
	BestMove checkers.Move // 没有走法时为 checkers.NoMove
	Score    int           // 黑方视角
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

// 一次搜索的局部状态
type searcher struct {
	nodes int64
}

// BestComputerMove 电脑固定执黑。没有可走的棋时返回 checkers.NoMove，调用方要先判断。
func (e *Engine) BestComputerMove(b *checkers.Board) checkers.Move {
	return e.BestMove(b, checkers.Black).BestMove
}

// BestMove 为任意一方选棋：黑方取最大分，白方取最小分；分数相同保留先出现的走法。
// 调用方的棋盘不会被修改。
func (e *Engine) BestMove(b *checkers.Board, side checkers.Side) SearchResult {
	start := time.Now()
	s := &searcher{}
	res := s.root(b, side)
	res.TimeUsed = time.Since(start)

	e.logger.Debug().
		Stringer("side", side).
		Stringer("move", res.BestMove).
		Int("score", res.Score).
		Int("depth", res.Depth).
		Int64("nodes", res.Nodes).
		Dur("elapsed", res.TimeUsed).
		Msg("search finished")
	return res
}

// Minimax 固定深度极小极大，不剪枝。maximizing 为 true 时轮到黑方。
func (e *Engine) Minimax(b checkers.Board, depth int, maximizing bool) int {
	s := &searcher{}
	return s.minimax(b, depth, maximizing)
}

func (s *searcher) root(b *checkers.Board, side checkers.Side) SearchResult {
	moves := b.GetAllMoves(side)
	if len(moves) == 0 {
		return SearchResult{
			BestMove: checkers.NoMove,
			Score:    Evaluate(b),
			Depth:    SearchDepth,
		}
	}

	maximizing := side == checkers.Black
	bestMove := checkers.NoMove
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}

	for _, mv := range moves {
		child := *b
		child.MakeMove(mv)

		// 走完这一步轮到对方
		score := s.minimax(child, SearchDepth, !maximizing)
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = mv
		}
	}

	return SearchResult{
		BestMove: bestMove,
		Score:    bestScore,
		Depth:    SearchDepth,
		Nodes:    s.nodes,
	}
}

// b 按值传入，每一层都是独立的一份棋盘
func (s *searcher) minimax(b checkers.Board, depth int, maximizing bool) int {
	s.nodes++

	if over, whiteWins := b.IsGameOver(); over {
		if whiteWins {
			return -WinScore
		}
		return WinScore
	}
	if depth <= 0 {
		return Evaluate(&b)
	}

	if maximizing {
		best := math.MinInt
		for _, mv := range b.GetAllMoves(checkers.Black) {
			child := b
			child.MakeMove(mv)
			if score := s.minimax(child, depth-1, false); score > best {
				best = score
			}
		}
		return best
	}

	best := math.MaxInt
	for _, mv := range b.GetAllMoves(checkers.White) {
		child := b
		child.MakeMove(mv)
		if score := s.minimax(child, depth-1, true); score < best {
			best = score
		}
	}
	return best
}
