//go:build !android

package main

import (
	"log"

	"mazedash/client/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	game.SetPlatform("desktop")
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
