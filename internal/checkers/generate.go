package checkers

// GetAllMoves 某一方的全部合法走法。
// 只要全盘有任何一步吃子，就只返回吃子步（强制吃子）；否则返回普通走子。
func (b *Board) GetAllMoves(side Side) []Move {
	if captures := b.CaptureMoves(side); len(captures) > 0 {
		return captures
	}
	return b.RegularMoves(side)
}

// CaptureMoves 全部吃子步，每步只吃一个子，不做连跳
func (b *Board) CaptureMoves(side Side) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pc := b.Squares[row][col]
			if pc == Empty || pc.Side() != side {
				continue
			}
			if pc.IsKing() {
				genKingCaptures(b, row, col, &moves)
			} else {
				genPawnCaptures(b, row, col, &moves)
			}
		}
	}
	return moves
}

// RegularMoves 全部不吃子的走法（不考虑强制吃子）
func (b *Board) RegularMoves(side Side) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pc := b.Squares[row][col]
			if pc == Empty || pc.Side() != side {
				continue
			}
			if pc.IsKing() {
				genKingMoves(b, row, col, &moves)
			} else {
				genPawnMoves(b, row, col, &moves)
			}
		}
	}
	return moves
}

// MovesFrom 从某一格出发的合法走法（已经应用强制吃子规则），界面高亮用
func (b *Board) MovesFrom(side Side, from Position) []Move {
	var out []Move
	for _, mv := range b.GetAllMoves(side) {
		if mv.From == from {
			out = append(out, mv)
		}
	}
	return out
}
