package checkers

// MakeMove 执行走子：这里默认传进来的就是合法招（由上层从 GetAllMoves 里取），不再校验。
// 起点为空时返回 false，棋盘不变。
func (b *Board) MakeMove(m Move) bool {
	if !onBoard(m.From.Row, m.From.Col) || !onBoard(m.To.Row, m.To.Col) {
		return false
	}
	pc := b.Squares[m.From.Row][m.From.Col]
	if pc == Empty {
		return false
	}

	b.Squares[m.To.Row][m.To.Col] = pc
	b.Squares[m.From.Row][m.From.Col] = Empty
	for _, cp := range m.Captured {
		b.Set(cp.Row, cp.Col, Empty)
	}

	b.promote(m.To.Row, m.To.Col)
	return true
}

// 只看落点这一格
func (b *Board) promote(row, col int) {
	switch pc := b.Squares[row][col]; {
	case pc == WhitePawn && row == promotionRow(White):
		b.Squares[row][col] = WhiteKing
	case pc == BlackPawn && row == promotionRow(Black):
		b.Squares[row][col] = BlackKing
	}
}
