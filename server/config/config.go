package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"mazedash/shared/protocol"
)

// Config holds the server's runtime settings.
type Config struct {
	Addr       string // HTTP listen address
	DataDir    string // directory holding the JSON stores
	LayoutFile string // optional layout file used to seed an empty maze store
	BoardLimit int    // entries returned per leaderboard read
}

// Load reads settings from the environment, after loading a .env file
// when one is present. Every variable has a default, so a bare process
// start works.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("CONFIG: skipping .env: %v", err)
	}
	return Config{
		Addr:       getenv("MAZE_ADDR", ":8080"),
		DataDir:    getenv("MAZE_DATA_DIR", "data"),
		LayoutFile: getenv("MAZE_LAYOUT_FILE", ""),
		BoardLimit: getenvInt("MAZE_BOARD_LIMIT", protocol.DefaultBoardLimit),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("CONFIG: %s=%q is not an integer, using %d", k, v, def)
		return def
	}
	return n
}
