package checkers

// 王（飞王）：沿斜线任意距离，遇子或出界即停
func genKingMoves(b *Board, row, col int, moves *[]Move) {
	for _, d := range diagDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) && IsDarkSquare(r, c) {
			if b.Squares[r][c] != Empty {
				break
			}
			*moves = append(*moves, Move{From: pos(row, col), To: pos(r, c)})
			r += d[0]
			c += d[1]
		}
	}
}

// 王吃子：每条射线上遇到的第一个子必须是敌子，
// 其后的每个空格都是一个落点（各自一步，只吃这一个子）；
// 再碰到任何子就停，不能隔两个子吃。
func genKingCaptures(b *Board, row, col int, moves *[]Move) {
	side := b.Squares[row][col].Side()
	for _, d := range diagDirs {
		var enemy Position
		found := false

		r, c := row+d[0], col+d[1]
		for onBoard(r, c) && IsDarkSquare(r, c) {
			pc := b.Squares[r][c]
			if pc != Empty {
				if found || !isEnemy(pc, side) {
					break
				}
				enemy = pos(r, c)
				found = true
			} else if found {
				*moves = append(*moves, Move{
					From:     pos(row, col),
					To:       pos(r, c),
					Captured: []Position{enemy},
				})
			}
			r += d[0]
			c += d[1]
		}
	}
}
