package checkers

// IsGameOver 先看子数，再看有没有棋可走；白方的判断优先。
func (b *Board) IsGameOver() (over bool, whiteWins bool) {
	if b.CountPieces(White) == 0 {
		return true, false
	}
	if b.CountPieces(Black) == 0 {
		return true, true
	}
	if len(b.GetAllMoves(White)) == 0 {
		return true, false
	}
	if len(b.GetAllMoves(Black)) == 0 {
		return true, true
	}
	return false, false
}

// Winner 对局结束时返回赢家，没结束返回 NoSide
func (b *Board) Winner() Side {
	over, whiteWins := b.IsGameOver()
	if !over {
		return NoSide
	}
	if whiteWins {
		return White
	}
	return Black
}
