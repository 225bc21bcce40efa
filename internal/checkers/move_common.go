package checkers

// 四个斜向，顺序固定，生成结果的顺序也因此固定
var diagDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

func isEnemy(pc Piece, side Side) bool {
	return pc != Empty && pc.Side() == Opposite(side)
}

func pos(row, col int) Position { return Position{Row: row, Col: col} }
