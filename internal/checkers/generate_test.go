package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mv(fr, fc, tr, tc int, captured ...Position) Move {
	m := Move{From: Position{fr, fc}, To: Position{tr, tc}}
	if len(captured) > 0 {
		m.Captured = captured
	}
	return m
}

func TestGetAllMoves_InitialPosition(t *testing.T) {
	b := NewBoard()

	white := b.GetAllMoves(White)
	assert.Equal(t, []Move{
		mv(5, 0, 4, 1),
		mv(5, 2, 4, 1), mv(5, 2, 4, 3),
		mv(5, 4, 4, 3), mv(5, 4, 4, 5),
		mv(5, 6, 4, 5), mv(5, 6, 4, 7),
	}, white)

	black := b.GetAllMoves(Black)
	assert.Equal(t, []Move{
		mv(2, 1, 3, 0), mv(2, 1, 3, 2),
		mv(2, 3, 3, 2), mv(2, 3, 3, 4),
		mv(2, 5, 3, 4), mv(2, 5, 3, 6),
		mv(2, 7, 3, 6),
	}, black)
	assert.Empty(t, b.CaptureMoves(White))
	assert.Empty(t, b.CaptureMoves(Black))
}

func TestGetAllMoves_PawnBackwardCapture(t *testing.T) {
	b := &Board{}
	b.Set(3, 4, WhitePawn)
	b.Set(4, 5, BlackPawn)

	moves := b.GetAllMoves(White)
	require.Equal(t, []Move{mv(3, 4, 5, 6, Position{4, 5})}, moves)
}

func TestGetAllMoves_PawnDoesNotMoveBackward(t *testing.T) {
	b := &Board{}
	b.Set(3, 4, WhitePawn)
	b.Set(3, 2, BlackPawn)

	assert.Equal(t, []Move{mv(3, 4, 2, 3), mv(3, 4, 2, 5)}, b.GetAllMoves(White))
	assert.Equal(t, []Move{mv(3, 2, 4, 1), mv(3, 2, 4, 3)}, b.GetAllMoves(Black))
}

func TestGetAllMoves_CaptureIsMandatoryGlobally(t *testing.T) {
	b := &Board{}
	b.Set(5, 0, WhitePawn) // 自己只能普通走子
	b.Set(7, 6, WhiteKing)
	b.Set(5, 4, WhitePawn)
	b.Set(4, 5, BlackPawn)

	moves := b.GetAllMoves(White)
	require.Equal(t, []Move{mv(5, 4, 3, 6, Position{4, 5})}, moves)
	assert.NotEmpty(t, b.RegularMoves(White))
}

func TestGetAllMoves_PawnCaptureNeedsEmptyLanding(t *testing.T) {
	b := &Board{}
	b.Set(5, 4, WhitePawn)
	b.Set(4, 5, BlackPawn)
	b.Set(3, 6, BlackPawn)

	assert.Empty(t, b.CaptureMoves(White))
	assert.Equal(t, []Move{mv(5, 4, 4, 3)}, b.GetAllMoves(White))
}

func TestGetAllMoves_PawnCannotCaptureOwnPiece(t *testing.T) {
	b := &Board{}
	b.Set(5, 4, WhitePawn)
	b.Set(4, 5, WhitePawn)

	assert.Empty(t, b.CaptureMoves(White))
}

func TestKingMoves_FlyAlongDiagonal(t *testing.T) {
	b := &Board{}
	b.Set(7, 0, WhiteKing)
	b.Set(0, 1, BlackPawn)

	moves := b.GetAllMoves(White)
	assert.Equal(t, []Move{
		mv(7, 0, 6, 1), mv(7, 0, 5, 2), mv(7, 0, 4, 3), mv(7, 0, 3, 4),
		mv(7, 0, 2, 5), mv(7, 0, 1, 6), mv(7, 0, 0, 7),
	}, moves)
}

func TestKingMoves_StopBeforeObstruction(t *testing.T) {
	b := &Board{}
	b.Set(4, 3, BlackKing)
	b.Set(2, 1, BlackPawn) // 挡住左上
	b.Set(7, 6, WhitePawn) // 右下贴边，后面没有落点，吃不了

	moves := b.RegularMoves(Black)
	var fromKing []Move
	for _, m := range moves {
		if m.From == (Position{4, 3}) {
			fromKing = append(fromKing, m)
		}
	}
	assert.Equal(t, []Move{
		mv(4, 3, 3, 2),
		mv(4, 3, 3, 4), mv(4, 3, 2, 5), mv(4, 3, 1, 6), mv(4, 3, 0, 7),
		mv(4, 3, 5, 2), mv(4, 3, 6, 1), mv(4, 3, 7, 0),
		mv(4, 3, 5, 4), mv(4, 3, 6, 5),
	}, fromKing)
}

func TestKingCaptures(t *testing.T) {
	t.Run("EveryLandingBeyondEnemy", func(t *testing.T) {
		b := &Board{}
		b.Set(7, 0, WhiteKing)
		b.Set(5, 2, BlackPawn)

		enemy := Position{5, 2}
		assert.Equal(t, []Move{
			mv(7, 0, 4, 3, enemy), mv(7, 0, 3, 4, enemy), mv(7, 0, 2, 5, enemy),
			mv(7, 0, 1, 6, enemy), mv(7, 0, 0, 7, enemy),
		}, b.GetAllMoves(White))
	})

	t.Run("LandingStopsAtNextPiece", func(t *testing.T) {
		b := &Board{}
		b.Set(7, 0, WhiteKing)
		b.Set(5, 2, BlackPawn)
		b.Set(2, 5, BlackPawn)

		enemy := Position{5, 2}
		assert.Equal(t, []Move{mv(7, 0, 4, 3, enemy), mv(7, 0, 3, 4, enemy)}, b.GetAllMoves(White))
	})

	t.Run("NoCaptureThroughTwoEnemies", func(t *testing.T) {
		b := &Board{}
		b.Set(7, 0, WhiteKing)
		b.Set(5, 2, BlackPawn)
		b.Set(4, 3, BlackKing)

		assert.Empty(t, b.CaptureMoves(White))
	})

	t.Run("OwnPieceBlocksRay", func(t *testing.T) {
		b := &Board{}
		b.Set(7, 0, WhiteKing)
		b.Set(6, 1, WhitePawn)
		b.Set(4, 3, BlackPawn)
		b.Set(3, 4, BlackPawn) // 兵 (6,1) 也吃不到：(4,3) 不相邻

		assert.Empty(t, b.CaptureMoves(White))
	})

	t.Run("EnemyRightAtEdgeHasNoLanding", func(t *testing.T) {
		b := &Board{}
		b.Set(2, 5, BlackKing)
		b.Set(0, 7, WhitePawn)

		assert.Empty(t, b.CaptureMoves(Black))
	})

	t.Run("BackwardRays", func(t *testing.T) {
		b := &Board{}
		b.Set(1, 2, BlackKing)
		b.Set(3, 4, WhitePawn)

		enemy := Position{3, 4}
		assert.Equal(t, []Move{
			mv(1, 2, 4, 5, enemy), mv(1, 2, 5, 6, enemy), mv(1, 2, 6, 7, enemy),
		}, b.GetAllMoves(Black))
	})
}

// 随手走一段棋，每一步都检查生成和执行的性质
func TestMoveProperties_AlongPlayout(t *testing.T) {
	b := NewBoard()
	side := White

	for ply := 0; ply < 80; ply++ {
		if over, _ := b.IsGameOver(); over {
			break
		}
		moves := b.GetAllMoves(side)
		require.NotEmpty(t, moves)

		if len(b.CaptureMoves(side)) > 0 {
			for _, m := range moves {
				require.True(t, m.IsCapture(), "regular move %v offered while a capture exists", m)
			}
		}

		for _, m := range moves {
			if m.IsCapture() {
				require.Len(t, m.Captured, 1)
				for _, cp := range m.Captured {
					require.Equal(t, Opposite(side), b.Get(cp.Row, cp.Col).Side())
				}
			}
			checkApplied(t, b, m)
		}

		next := moves[(ply*7)%len(moves)]
		require.True(t, b.MakeMove(next))
		requireDarkOnly(t, b)
		side = Opposite(side)
	}
}

func checkApplied(t *testing.T, b *Board, m Move) {
	t.Helper()
	c := b.Clone()
	moving := c.Get(m.From.Row, m.From.Col)
	require.True(t, c.MakeMove(m))

	assert.Equal(t, Empty, c.Get(m.From.Row, m.From.Col))
	for _, cp := range m.Captured {
		assert.Equal(t, Empty, c.Get(cp.Row, cp.Col))
	}
	want := moving
	if moving == WhitePawn && m.To.Row == 0 {
		want = WhiteKing
	}
	if moving == BlackPawn && m.To.Row == Size-1 {
		want = BlackKing
	}
	assert.Equal(t, want, c.Get(m.To.Row, m.To.Col))
}

func requireDarkOnly(t *testing.T, b *Board) {
	t.Helper()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Get(r, c) != Empty {
				require.True(t, IsDarkSquare(r, c), "piece on light square (%d,%d)", r, c)
			}
		}
	}
}
