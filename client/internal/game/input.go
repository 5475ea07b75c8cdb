package game

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mazedash/shared/game/maze"
	"mazedash/shared/protocol"
)

// ---------- loading / error screen ----------

func (g *Game) updateLoading() {
	if g.mazeErrMsg == "" {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.retryFetchMaze()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if g.retryBtn.hit(mx, my) {
			g.retryFetchMaze()
		}
	}
}

// ---------- the run itself ----------

func (g *Game) updatePlaying() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.sess.Move(maze.Up)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.sess.Move(maze.Down)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.sess.Move(maze.Left)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.sess.Move(maze.Right)
	}

	if g.sess.Escaped() {
		g.scr = screenEscaped
		g.inputFocus = true
	}
}

// ---------- escape modal ----------

func (g *Game) updateEscaped() {
	if g.inputFocus {
		g.typeName()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.trySubmit()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		switch {
		case g.nameBox.hit(mx, my):
			g.inputFocus = true
		case g.submitBtn.hit(mx, my):
			g.trySubmit()
		case g.againBtn.hit(mx, my):
			g.startRun()
		default:
			g.inputFocus = false
		}
	}
}

func (g *Game) typeName() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= 32 && len(g.nameInput) < protocol.MaxNameLen {
			g.nameInput += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.nameInput) > 0 {
		g.nameInput = g.nameInput[:len(g.nameInput)-1]
	}

	// Handle paste functionality (Ctrl+V / Cmd+V)
	if (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if pastedText, err := clipboard.ReadAll(); err == nil {
			for _, r := range pastedText {
				if r >= 32 && len(g.nameInput) < protocol.MaxNameLen {
					g.nameInput += string(r)
				}
			}
		} else {
			g.statusMsg = "Paste failed (no clipboard access)."
		}
	}
}

func (g *Game) trySubmit() {
	if g.submitting || g.submitted {
		return
	}
	name := strings.TrimSpace(g.nameInput)
	if name == "" {
		g.statusMsg = "Enter a name first."
		return
	}
	g.submitting = true
	g.statusMsg = "Submitting..."
	g.submitScoreAsync(name, g.sess.Seconds())
}
