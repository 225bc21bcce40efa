package checkers

import (
	"errors"
	"fmt"
	"strings"
)

var pieceChars = map[Piece]byte{
	WhitePawn: 'o',
	WhiteKing: 'O',
	BlackPawn: 'x',
	BlackKing: 'X',
}

func pieceToChar(p Piece) byte {
	if ch, ok := pieceChars[p]; ok {
		return ch
	}
	return '.'
}

func charToPiece(ch rune) (Piece, bool) {
	for p, c := range pieceChars {
		if rune(c) == ch {
			return p, true
		}
	}
	return Empty, false
}

// Encode 简单 FEN-like：8 行用“/”隔开，空位用数字压缩。
// 开局为 "1x1x1x1x/x1x1x1x1/1x1x1x1x/8/8/o1o1o1o1/1o1o1o1o/o1o1o1o1"
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			pc := b.Squares[r][c]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

var ErrInvalidBoard = errors.New("invalid board")

// DecodeBoard 解析 Encode 的格式，空位也接受 '.'；浅色格上有子视为非法。
func DecodeBoard(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}
	var b Board
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Size {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidBoard, r)
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidBoard, ch)
			}
			if !IsDarkSquare(r, c) {
				return nil, fmt.Errorf("%w: piece on light square (%d,%d)", ErrInvalidBoard, r, c)
			}
			b.Squares[r][c] = pc
			c++
		}
		if c != Size {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidBoard, r, c)
		}
	}
	return &b, nil
}

// String 控制台盘面，带行列号；浅色格留空
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n  ")
	for c := 0; c < Size; c++ {
		fmt.Fprintf(&sb, "  %d ", c)
	}
	sb.WriteByte('\n')
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Size; c++ {
			if IsDarkSquare(r, c) {
				fmt.Fprintf(&sb, "[%c]", pieceToChar(b.Squares[r][c]))
			} else {
				sb.WriteString("   ")
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w", "0":
		return White, nil
	case "black", "b", "1":
		return Black, nil
	}
	return NoSide, fmt.Errorf("unknown side %q", s)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (m Move) String() string {
	if len(m.Captured) == 0 {
		return m.From.String() + "->" + m.To.String()
	}
	caps := make([]string, len(m.Captured))
	for i, cp := range m.Captured {
		caps[i] = cp.String()
	}
	return m.From.String() + "x" + m.To.String() + " [" + strings.Join(caps, " ") + "]"
}
