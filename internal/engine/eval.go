package engine

import "checkers/internal/checkers"

// 黑方（电脑）视角：正数黑方好，负数白方好
var pieceValue = map[checkers.Piece]int{
	checkers.BlackPawn: 10,
	checkers.BlackKing: 30,
	checkers.WhitePawn: -10,
	checkers.WhiteKing: -30,
}

const centerBonus = 2

// 中央 4x4：第 2..5 行、第 2..5 列
func inCenter(row, col int) bool {
	return row >= 2 && row <= 5 && col >= 2 && col <= 5
}

// Evaluate 子力 + 中心位置。只看盘面，不看历史，没有随机。
func Evaluate(b *checkers.Board) int {
	score := 0
	for row := 0; row < checkers.Size; row++ {
		for col := 0; col < checkers.Size; col++ {
			pc := b.Squares[row][col]
			if pc == checkers.Empty {
				continue
			}
			score += pieceValue[pc]
			if !inCenter(row, col) {
				continue
			}
			switch pc.Side() {
			case checkers.Black:
				score += centerBonus
			case checkers.White:
				score -= centerBonus
			}
		}
	}
	return score
}
