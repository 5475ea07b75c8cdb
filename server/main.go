package main

import (
	"log"
	"net/http"
	"time"

	"mazedash/server/config"
	"mazedash/server/srv"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func wsHandler(h *srv.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		h.HandleWS(conn)
	}
}

func main() {
	cfg := config.Load()

	mazes, err := srv.NewMazeStore(cfg.DataDir, cfg.LayoutFile)
	if err != nil {
		log.Fatal("maze store: ", err)
	}
	board, err := srv.NewBoardStore(cfg.DataDir)
	if err != nil {
		log.Fatal("board store: ", err)
	}

	hub := srv.NewHub(board, cfg.BoardLimit)
	api := &srv.API{Mazes: mazes, Board: board, Hub: hub, Limit: cfg.BoardLimit}

	mux := http.NewServeMux()
	mux.HandleFunc("/maze", api.HandleMaze)
	mux.HandleFunc("/leaderboard", api.HandleLeaderboard)
	mux.HandleFunc("/ws", wsHandler(hub))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })

	s := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Println("server listening on", cfg.Addr)
	log.Fatal(s.ListenAndServe())
}
