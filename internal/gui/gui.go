package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
)

// 窗口 800x900：上面 100 像素是信息栏，下面是 8x8 棋盘
const (
	ScreenWidth  = 800
	ScreenHeight = 900
	squareSize   = 100
	boardOffsetY = ScreenHeight - squareSize*checkers.Size
	pieceRadius  = squareSize * 0.4
)

var (
	lightSquare = color.RGBA{0xee, 0xd7, 0xb0, 0xff}
	darkSquare  = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	selectColor = color.RGBA{0xf0, 0xe0, 0x40, 0xff}
	targetColor = color.RGBA{0x60, 0xc0, 0x60, 0xff}
	whitePiece  = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	blackPiece  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	kingRing    = color.RGBA{0xd4, 0xaf, 0x37, 0xff}
	overlay     = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

type computerResult struct {
	res engine.SearchResult
	err error
}

// Game 实现 ebiten.Game
type Game struct {
	game   *game.Game
	engine *engine.Engine
	logger zerolog.Logger

	selected    *checkers.Position
	targets     []checkers.Move
	showHelp    bool
	thinking    bool
	computerRes chan computerResult
	message     string
}

func NewGame(eng *engine.Engine) *Game {
	return &Game{
		game:        game.New("gui"),
		engine:      eng,
		logger:      log.Logger.With().Str("component", "gui").Logger(),
		showHelp:    true,
		computerRes: make(chan computerResult, 1),
	}
}

// Run 打开窗口，直到窗口关闭
func Run(eng *engine.Engine) error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Checkers")
	return ebiten.RunGame(NewGame(eng))
}

// squareAt 屏幕坐标转棋盘格，落在棋盘外返回 false
func squareAt(x, y int) (checkers.Position, bool) {
	y -= boardOffsetY
	if x < 0 || y < 0 || x >= squareSize*checkers.Size || y >= squareSize*checkers.Size {
		return checkers.Position{}, false
	}
	return checkers.Position{Row: y / squareSize, Col: x / squareSize}, true
}

func (g *Game) restart() {
	if g.thinking {
		return
	}
	g.game.Reset()
	g.clearSelection()
	g.message = "new game"
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.targets = nil
}

// click 处理一次棋盘点击：先选白子，再点目标格
func (g *Game) click(p checkers.Position) {
	if g.thinking || g.game.Status().Over || g.game.ToMove() != game.HumanSide {
		return
	}

	if g.selected != nil {
		// 再点一次已选中的子就取消选择
		if *g.selected == p {
			g.clearSelection()
			return
		}
		for _, mv := range g.targets {
			if mv.To == p {
				g.playHuman(mv)
				return
			}
		}
	}

	b := g.game.Board()
	pc := b.Get(p.Row, p.Col)
	if pc == checkers.Empty || pc.Side() != game.HumanSide {
		g.clearSelection()
		return
	}
	sel := p
	g.selected = &sel
	g.targets = b.MovesFrom(game.HumanSide, p)
	if len(g.targets) == 0 {
		g.message = "that piece has no legal moves"
	}
}

func (g *Game) playHuman(mv checkers.Move) {
	g.clearSelection()
	played, err := g.game.PlayHuman(mv.From, mv.To)
	if err != nil {
		g.message = err.Error()
		return
	}
	g.message = "you played " + played.String()
	if g.game.Status().Over {
		return
	}

	g.thinking = true
	go func(gm *game.Game, eng *engine.Engine, out chan<- computerResult) {
		res, err := gm.PlayComputer(eng)
		out <- computerResult{res: res, err: err}
	}(g.game, g.engine, g.computerRes)
}

// pollComputer 电脑算完就收结果，不阻塞画面
func (g *Game) pollComputer() {
	if !g.thinking {
		return
	}
	select {
	case r := <-g.computerRes:
		g.thinking = false
		switch {
		case r.err == nil:
			g.message = "computer played " + r.res.BestMove.String()
		case errors.Is(r.err, game.ErrNoMoves), errors.Is(r.err, game.ErrGameOver):
		default:
			g.logger.Error().Err(r.err).Msg("computer move")
			g.message = r.err.Error()
		}
	default:
	}
}

func (g *Game) Update() error {
	g.pollComputer()

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
	if g.showHelp {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.showHelp = false
		}
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p, ok := squareAt(ebiten.CursorPosition()); ok {
			g.click(p)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x30, 0x30, 0x30, 0xff})
	g.drawInfo(screen)
	g.drawBoard(screen)

	st := g.game.Status()
	switch {
	case g.showHelp:
		drawOverlay(screen, instructions)
	case st.Over:
		msg := "BLACK WINS"
		if st.Winner == checkers.White {
			msg = "WHITE WINS"
		}
		drawOverlay(screen, fmt.Sprintf("GAME OVER: %s\n\nPress R to play again", msg))
	}
}

func (g *Game) drawInfo(screen *ebiten.Image) {
	st := g.game.Status()
	turn := "your move (white)"
	if g.thinking {
		turn = "computer is thinking..."
	}
	text := fmt.Sprintf("CHECKERS   white: %d   black: %d\n%s\n%s\nR: restart  H: instructions",
		st.WhitePieces, st.BlackPieces, turn, g.message)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	b := g.game.Board()
	for row := 0; row < checkers.Size; row++ {
		for col := 0; col < checkers.Size; col++ {
			x := float32(col * squareSize)
			y := float32(boardOffsetY + row*squareSize)

			clr := lightSquare
			if checkers.IsDarkSquare(row, col) {
				clr = darkSquare
			}
			if g.selected != nil && g.selected.Row == row && g.selected.Col == col {
				clr = selectColor
			}
			vector.DrawFilledRect(screen, x, y, squareSize, squareSize, clr, false)

			for _, mv := range g.targets {
				if mv.To.Row == row && mv.To.Col == col {
					vector.StrokeRect(screen, x+3, y+3, squareSize-6, squareSize-6, 4, targetColor, false)
				}
			}

			drawPiece(screen, b.Get(row, col), x+squareSize/2, y+squareSize/2)
		}
	}
}

func drawPiece(screen *ebiten.Image, pc checkers.Piece, cx, cy float32) {
	if pc == checkers.Empty {
		return
	}
	fill, edge := whitePiece, blackPiece
	if pc.Side() == checkers.Black {
		fill, edge = blackPiece, whitePiece
	}
	vector.DrawFilledCircle(screen, cx, cy, pieceRadius, fill, true)
	vector.StrokeCircle(screen, cx, cy, pieceRadius, 2, edge, true)
	if pc.IsKing() {
		vector.StrokeCircle(screen, cx, cy, pieceRadius*0.6, 5, kingRing, true)
	}
}

func drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 100, 300, 600, 300, overlay, false)
	ebitenutil.DebugPrintAt(screen, text, 130, 330)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

const instructions = `HOW TO PLAY

You are white, the computer is black.
Click one of your pieces, then click a highlighted square.

- pieces move diagonally on dark squares
- pawns step forward, kings fly any distance
- captures are mandatory, pawns may capture backwards
- reach the far row to become a king

Click or press H to start.`
