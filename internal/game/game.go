package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// 人类固定执白先走，电脑执黑
const (
	HumanSide    = checkers.White
	ComputerSide = checkers.Black
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrNoMoves      = errors.New("no moves available")
)

// Searcher 给电脑选棋，*engine.Engine 实现了它
type Searcher interface {
	BestMove(b *checkers.Board, side checkers.Side) engine.SearchResult
}

type Status struct {
	Over        bool
	Winner      checkers.Side // 未结束为 NoSide
	WhitePieces int
	BlackPieces int
}

// Game 一局棋：持有唯一的“活”棋盘，所有修改都经过这里
type Game struct {
	ID string

	mu         sync.Mutex
	board      checkers.Board
	toMove     checkers.Side
	history    []checkers.Move
	lastActive time.Time
}

// Snapshot 同一把锁下取出的一致状态
type Snapshot struct {
	Board  checkers.Board
	ToMove checkers.Side
	Moves  int
	Status Status
}

func New(id string) *Game {
	return NewWithBoard(id, *checkers.NewBoard(), HumanSide)
}

// NewWithBoard 从任意局面开局，调试和测试用
func NewWithBoard(id string, b checkers.Board, toMove checkers.Side) *Game {
	return &Game{
		ID:         id,
		board:      b,
		toMove:     toMove,
		lastActive: time.Now(),
	}
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		Board:  g.board,
		ToMove: g.toMove,
		Moves:  len(g.history),
		Status: statusOf(&g.board),
	}
}

// LastActive 最后一次落子或重开的时间
func (g *Game) LastActive() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActive
}

// Board 返回棋盘的拷贝
func (g *Game) Board() checkers.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

func (g *Game) ToMove() checkers.Side {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

func (g *Game) History() []checkers.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]checkers.Move, len(g.history))
	copy(out, g.history)
	return out
}

// LegalMoves 当前轮到的一方的全部合法走法
func (g *Game) LegalMoves() []checkers.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.GetAllMoves(g.toMove)
}

// FindMove 在人类的合法走法里找 (from, to)。吃子步的 Captured 由生成器给出。
func (g *Game) FindMove(from, to checkers.Position) (checkers.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return findMove(&g.board, HumanSide, from, to)
}

func findMove(b *checkers.Board, side checkers.Side, from, to checkers.Position) (checkers.Move, bool) {
	for _, mv := range b.GetAllMoves(side) {
		if mv.From == from && mv.To == to {
			return mv, true
		}
	}
	return checkers.NoMove, false
}

// PlayHuman 校验并执行人类的一步
func (g *Game) PlayHuman(from, to checkers.Position) (checkers.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if over, _ := g.board.IsGameOver(); over {
		return checkers.NoMove, ErrGameOver
	}
	if g.toMove != HumanSide {
		return checkers.NoMove, ErrNotYourTurn
	}
	mv, ok := findMove(&g.board, HumanSide, from, to)
	if !ok {
		return checkers.NoMove, fmt.Errorf("%w: %s->%s", ErrIllegalMove, from, to)
	}
	g.apply(mv)
	return mv, nil
}

// PlayComputer 让电脑走一步并落子
func (g *Game) PlayComputer(s Searcher) (engine.SearchResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if over, _ := g.board.IsGameOver(); over {
		return engine.SearchResult{BestMove: checkers.NoMove}, ErrGameOver
	}
	if g.toMove != ComputerSide {
		return engine.SearchResult{BestMove: checkers.NoMove}, ErrNotYourTurn
	}
	res := s.BestMove(&g.board, ComputerSide)
	if res.BestMove.IsNone() {
		return res, ErrNoMoves
	}
	g.apply(res.BestMove)
	return res, nil
}

func (g *Game) apply(mv checkers.Move) {
	g.board.MakeMove(mv)
	g.history = append(g.history, mv)
	g.toMove = checkers.Opposite(g.toMove)
	g.lastActive = time.Now()
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return statusOf(&g.board)
}

func statusOf(b *checkers.Board) Status {
	winner := b.Winner()
	return Status{
		Over:        winner != checkers.NoSide,
		Winner:      winner,
		WhitePieces: b.CountPieces(checkers.White),
		BlackPieces: b.CountPieces(checkers.Black),
	}
}

// Reset 重新开局
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board.Reset()
	g.toMove = HumanSide
	g.history = nil
	g.lastActive = time.Now()
}
