//go:build android

package main

import (
	"mazedash/client/internal/game"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	mobile.SetGame(game.New("android"))
}
func main() {}
