package mobile

import (
	"mazedash/client/internal/game"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

// Bound into the Android app with ebitenmobile; the gomobile entry
// lives here so the game package stays build-tag free.
func init() {
	mobile.SetGame(game.New("android"))
}

func Dummy() {}
