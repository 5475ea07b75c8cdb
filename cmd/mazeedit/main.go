package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mazedash/shared/game/maze"

	"github.com/hajimehoshi/ebiten/v2"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	var path string
	var size int
	flag.StringVar(&path, "f", getenv("MAZE_LAYOUT_FILE", "maze_layout.json"), "layout file (loaded if it exists, created on save)")
	flag.IntVar(&size, "size", 0, "start from a blank NxN layout instead of loading")
	flag.Parse()
	log.SetFlags(0)

	ed := &editor{path: path, tool: toolWall}
	switch {
	case size > 0:
		ed.grid = blankGrid(size)
		n := ed.grid.Size()
		ed.status = fmt.Sprintf("new %dx%d layout", n, n)
	default:
		if err := ed.load(); err != nil {
			if !os.IsNotExist(err) {
				log.Fatal(err)
			}
			ed.grid = maze.Default()
			ed.status = "new layout from the built-in default"
		}
	}

	ebiten.SetWindowTitle("Maze Layout Editor")
	ebiten.SetWindowSize(760, 560)
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(ed); err != nil {
		log.Fatal(err)
	}
}
