package maze

// Default returns the built-in 5x5 layout used to seed an empty store.
func Default() Grid {
	o, w := CellOpen, CellWall
	return Grid{
		{CellStart, o, w, o, CellExit},
		{o, w, o, o, o},
		{o, o, o, w, o},
		{w, o, w, o, o},
		{o, o, o, o, o},
	}
}
