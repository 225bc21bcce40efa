package checkers

type Side int8

const (
	NoSide Side = -1
	White  Side = 0 // 人类，向上走（行号减小）
	Black  Side = 1 // 电脑，向下走（行号增大）
)

// Piece 格子状态。数值与棋盘文本编码无关，只在内存里用。
type Piece int8

const (
	Empty     Piece = 0
	WhitePawn Piece = 1
	BlackPawn Piece = 2
	WhiteKing Piece = 3
	BlackKing Piece = 4
)

func (p Piece) Side() Side {
	switch p {
	case WhitePawn, WhiteKing:
		return White
	case BlackPawn, BlackKing:
		return Black
	}
	return NoSide
}

func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// Position 行列坐标，合法范围 [0,8)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move 一步棋。Captured 按吃子顺序记录被吃的子，普通走子为空。
type Move struct {
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captured []Position `json:"captured,omitempty"`
}

// NoMove 表示“没有可走的棋”，From/To 都在棋盘外。
var NoMove = Move{From: Position{Row: -1, Col: -1}, To: Position{Row: -1, Col: -1}}

func (m Move) IsCapture() bool { return len(m.Captured) > 0 }

// IsNone 判断是否为 NoMove 这类棋盘外的哨兵走法
func (m Move) IsNone() bool {
	return !onBoard(m.From.Row, m.From.Col) || !onBoard(m.To.Row, m.To.Col)
}

// Board 8x8 格子，值语义：直接赋值就是整盘深拷贝。
type Board struct {
	Squares [Size][Size]Piece
}
