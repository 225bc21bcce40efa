package checkers

// 兵：只能向前斜走一格
func genPawnMoves(b *Board, row, col int, moves *[]Move) {
	pc := b.Squares[row][col]
	dir := pawnDir(pc.Side())
	for _, dc := range []int{-1, +1} {
		r, c := row+dir, col+dc
		if !onBoard(r, c) || !IsDarkSquare(r, c) {
			continue
		}
		if b.Squares[r][c] != Empty {
			continue
		}
		*moves = append(*moves, Move{From: pos(row, col), To: pos(r, c)})
	}
}

// 兵吃子：四个方向都可以（可以往回吃，但不能往回走）
func genPawnCaptures(b *Board, row, col int, moves *[]Move) {
	side := b.Squares[row][col].Side()
	for _, d := range diagDirs {
		er, ec := row+d[0], col+d[1]
		lr, lc := row+2*d[0], col+2*d[1]
		if !onBoard(er, ec) || !onBoard(lr, lc) || !IsDarkSquare(lr, lc) {
			continue
		}
		if b.Squares[lr][lc] != Empty {
			continue
		}
		if !isEnemy(b.Squares[er][ec], side) {
			continue
		}
		*moves = append(*moves, Move{
			From:     pos(row, col),
			To:       pos(lr, lc),
			Captured: []Position{pos(er, ec)},
		})
	}
}
