package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mazedash/shared/protocol"
)

var (
	platform   = "desktop"
	playerName string
)

// SetPlatform is called by the platform entrypoints before New.
func SetPlatform(p string) { platform = p }

// New builds the game and kicks off the background fetches. An optional
// arg either names the platform or pre-fills the player name.
func New(args ...string) ebiten.Game {
	if len(args) > 0 {
		switch args[0] {
		case "android", "ios", "desktop":
			platform = args[0]
		default:
			playerName = args[0]
		}
	}

	g := &Game{
		scr:       screenLoading,
		nameInput: playerName,

		mazeCh:   make(chan mazeResult, 1),
		boardCh:  make(chan boardResult, 4),
		submitCh: make(chan submitResult, 1),
		connCh:   make(chan connResult, 1),
		connSt:   stateIdle,
	}

	if platform == "desktop" {
		fitToScreen()
		ebiten.SetWindowResizable(true)
		ebiten.SetWindowTitle("Maze Dash")
	}

	g.retryFetchMaze()
	g.refreshBoard()
	g.retryConnect()
	return g
}

func (g *Game) Update() error {
	select {
	case res := <-g.mazeCh:
		if res.err != nil {
			log.Printf("NET: maze fetch failed: %v", res.err)
			g.mazeErrMsg = res.err.Error()
		} else {
			g.grid = res.grid
			g.startRun()
		}
	default:
	}

	select {
	case res := <-g.boardCh:
		if res.err != nil {
			log.Printf("NET: board fetch failed: %v", res.err)
			g.boardStale = true
		} else {
			g.board = res.board
			g.boardStale = false
		}
	default:
	}

	select {
	case res := <-g.connCh:
		if res.err != nil {
			g.connSt = stateFailed
		} else {
			g.net = res.n
			g.connSt = stateConnected
		}
	default:
	}

	select {
	case res := <-g.submitCh:
		g.submitting = false
		if res.err != nil {
			g.statusMsg = res.err.Error()
		} else {
			g.submitted = true
			g.statusMsg = res.ack.Message
			if g.connSt != stateConnected {
				// no live push coming, refetch over REST
				g.refreshBoard()
			}
		}
	default:
	}

	// a dropped socket degrades to REST refreshes, no redial loop
	if g.connSt == stateConnected && g.net.IsClosed() {
		g.connSt = stateFailed
		g.boardStale = true
	}

	if g.net != nil && !g.net.IsClosed() {
		for {
			select {
			case env := <-g.net.inCh:
				g.handle(env)
			default:
				goto afterMessages
			}
		}
	}
afterMessages:

	switch g.scr {
	case screenLoading:
		g.updateLoading()
	case screenPlaying:
		g.updatePlaying()
	case screenEscaped:
		g.updateEscaped()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)

	g.drawTopBar(screen)
	g.drawBoardPanel(screen)

	switch g.scr {
	case screenLoading:
		g.drawLoading(screen)
	case screenPlaying:
		g.drawMaze(screen)
	case screenEscaped:
		g.drawMaze(screen)
		g.drawEscapedOverlay(screen)
	}
}

func (g *Game) Layout(w, h int) (int, int) { return protocol.ScreenW, protocol.ScreenH }

func fitToScreen() {
	mw, mh := ebiten.ScreenSizeInFullscreen()
	w, h := protocol.ScreenW, protocol.ScreenH

	margin := 48
	maxW, maxH := mw-margin, mh-margin

	scale := 1.0
	if w > maxW || h > maxH {
		sx := float64(maxW) / float64(w)
		sy := float64(maxH) / float64(h)
		scale = mathMin(sx, sy)
	}

	ww := int(float64(w) * scale)
	wh := int(float64(h) * scale)

	if ww < protocol.ScreenW/2 {
		ww = protocol.ScreenW / 2
	}
	if wh < protocol.ScreenH/2 {
		wh = protocol.ScreenH / 2
	}

	ebiten.SetWindowSize(ww, wh)
}

func mathMin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
