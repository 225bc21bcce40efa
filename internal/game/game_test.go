package game

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

type fakeSearcher struct {
	calls int
	move  checkers.Move
}

func (f *fakeSearcher) BestMove(b *checkers.Board, side checkers.Side) engine.SearchResult {
	f.calls++
	return engine.SearchResult{BestMove: f.move, Depth: engine.SearchDepth}
}

func at(r, c int) checkers.Position { return checkers.Position{Row: r, Col: c} }

func TestGame_HumanThenComputer(t *testing.T) {
	g := New("g1")
	require.Equal(t, checkers.White, g.ToMove())
	require.Len(t, g.LegalMoves(), 7)

	mv, err := g.PlayHuman(at(5, 2), at(4, 3))
	require.NoError(t, err)
	assert.Equal(t, at(4, 3), mv.To)
	assert.Equal(t, checkers.Black, g.ToMove())

	// 电脑回合人类不能走
	_, err = g.PlayHuman(at(5, 4), at(4, 5))
	require.ErrorIs(t, err, ErrNotYourTurn)

	e := engine.NewEngine(engine.WithLogger(zerolog.Nop()))
	res, err := g.PlayComputer(e)
	require.NoError(t, err)
	assert.False(t, res.BestMove.IsNone())
	assert.Equal(t, checkers.White, g.ToMove())
	assert.Len(t, g.History(), 2)

	b := g.Board()
	assert.Equal(t, checkers.BlackPawn, b.Get(res.BestMove.To.Row, res.BestMove.To.Col))
}

func TestGame_IllegalHumanMove(t *testing.T) {
	g := New("g1")
	before := g.Board()

	_, err := g.PlayHuman(at(5, 2), at(3, 4))
	require.ErrorIs(t, err, ErrIllegalMove)

	// 黑子不是人类的
	_, err = g.PlayHuman(at(2, 1), at(3, 0))
	require.ErrorIs(t, err, ErrIllegalMove)

	assert.Equal(t, before, g.Board())
	assert.Equal(t, checkers.White, g.ToMove())
}

func TestGame_MandatoryCaptureForHuman(t *testing.T) {
	b, err := checkers.DecodeBoard("8/8/8/8/5x2/4o3/8/o7")
	require.NoError(t, err)
	g := NewWithBoard("g1", *b, HumanSide)

	_, ok := g.FindMove(at(7, 0), at(6, 1))
	assert.False(t, ok)

	mv, err := g.PlayHuman(at(5, 4), at(3, 6))
	require.NoError(t, err)
	assert.Equal(t, []checkers.Position{at(4, 5)}, mv.Captured)
	gb := g.Board()
	assert.Equal(t, checkers.Empty, gb.Get(4, 5))

	st := g.Status()
	assert.True(t, st.Over)
	assert.Equal(t, checkers.White, st.Winner)
	assert.Equal(t, 0, st.BlackPieces)

	_, err = g.PlayComputer(&fakeSearcher{})
	require.ErrorIs(t, err, ErrGameOver)
}

func TestGame_ComputerTurnChecks(t *testing.T) {
	g := New("g1")
	f := &fakeSearcher{move: checkers.NoMove}

	_, err := g.PlayComputer(f)
	require.ErrorIs(t, err, ErrNotYourTurn)
	assert.Zero(t, f.calls)

	_, err = g.PlayHuman(at(5, 0), at(4, 1))
	require.NoError(t, err)

	_, err = g.PlayComputer(f)
	require.ErrorIs(t, err, ErrNoMoves)
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, checkers.Black, g.ToMove())
}

func TestGame_Reset(t *testing.T) {
	g := New("g1")
	_, err := g.PlayHuman(at(5, 0), at(4, 1))
	require.NoError(t, err)

	g.Reset()
	assert.Equal(t, *checkers.NewBoard(), g.Board())
	assert.Equal(t, checkers.White, g.ToMove())
	assert.Empty(t, g.History())
}

func TestManager(t *testing.T) {
	m := NewManager()
	g := m.NewGame()
	require.NotEmpty(t, g.ID)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	other := m.NewGame()
	assert.NotEqual(t, g.ID, other.ID)

	m.Remove(g.ID)
	_, err = m.Get(g.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
	assert.Equal(t, 1, m.Len())

	m.Add(NewWithBoard("custom", checkers.Board{}, HumanSide))
	_, err = m.Get("custom")
	require.NoError(t, err)
}

func TestGame_SnapshotIsConsistent(t *testing.T) {
	g := New("g1")
	_, err := g.PlayHuman(at(5, 0), at(4, 1))
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, g.Board(), snap.Board)
	assert.Equal(t, checkers.Black, snap.ToMove)
	assert.Equal(t, 1, snap.Moves)
	assert.False(t, snap.Status.Over)
	assert.Equal(t, 12, snap.Status.WhitePieces)

	// 快照是拷贝，后续落子不影响它
	_, err = g.PlayComputer(engine.NewEngine(engine.WithLogger(zerolog.Nop())))
	require.NoError(t, err)
	assert.Equal(t, checkers.Black, snap.ToMove)
	assert.NotEqual(t, g.Board(), snap.Board)
}

func TestGame_LastActiveAdvances(t *testing.T) {
	g := New("g1")
	first := g.LastActive()
	require.False(t, first.IsZero())

	time.Sleep(2 * time.Millisecond)
	_, err := g.PlayHuman(at(5, 0), at(4, 1))
	require.NoError(t, err)
	assert.True(t, g.LastActive().After(first))
}

func TestManager_EvictIdle(t *testing.T) {
	m := NewManager()
	old := m.NewGame()
	time.Sleep(2 * time.Millisecond)
	cutoff := time.Now()
	time.Sleep(2 * time.Millisecond)
	fresh := m.NewGame()

	evicted := m.EvictIdle(cutoff)
	assert.Equal(t, []string{old.ID}, evicted)
	assert.Equal(t, 1, m.Len())

	_, err := m.Get(old.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
	_, err = m.Get(fresh.ID)
	require.NoError(t, err)

	assert.Empty(t, m.EvictIdle(cutoff))
}

func TestManager_RunJanitor(t *testing.T) {
	m := NewManager()
	m.NewGame()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunJanitor(ctx, 5*time.Millisecond, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}

	// 参数非法时直接返回
	m.RunJanitor(context.Background(), 0, time.Minute)
}
