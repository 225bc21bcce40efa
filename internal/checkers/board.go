package checkers

const (
	Size = 8

	blackHomeRows = 3 // 第 0..2 行放黑子
	whiteHomeRow  = 5 // 第 5..7 行放白子
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsDarkSquare 只有深色格 (row+col 为奇数) 能放子
func IsDarkSquare(row, col int) bool {
	return (row+col)%2 == 1
}

func Opposite(side Side) Side {
	if side == White {
		return Black
	}
	if side == Black {
		return White
	}
	return NoSide
}

// 兵的前进方向：白向上(-1)，黑向下(+1)
func pawnDir(side Side) int {
	if side == White {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 升变行：白到第 0 行，黑到第 7 行
func promotionRow(side Side) int {
	if side == White {
		return 0
	}
	return Size - 1
}

// NewBoard 返回标准开局
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset 清空并摆回开局
func (b *Board) Reset() {
	b.Squares = [Size][Size]Piece{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !IsDarkSquare(row, col) {
				continue
			}
			switch {
			case row < blackHomeRows:
				b.Squares[row][col] = BlackPawn
			case row >= whiteHomeRow:
				b.Squares[row][col] = WhitePawn
			}
		}
	}
}

// Get 越界返回 Empty，方便调用方直接探邻格
func (b *Board) Get(row, col int) Piece {
	if !onBoard(row, col) {
		return Empty
	}
	return b.Squares[row][col]
}

// Set 越界直接忽略。只给摆局面/测试用，走子请用 MakeMove。
func (b *Board) Set(row, col int, p Piece) {
	if !onBoard(row, col) {
		return
	}
	b.Squares[row][col] = p
}

// Clone 整盘拷贝，搜索时每个分支各用一份
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

func (b *Board) CountPieces(side Side) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pc := b.Squares[row][col]
			if pc != Empty && pc.Side() == side {
				n++
			}
		}
	}
	return n
}
