package game

import (
	"log"

	net "mazedash/client/internal/game/net"
	"mazedash/client/internal/netcfg"
	"mazedash/shared/game/maze"
	"mazedash/shared/protocol"
)

// ---------- maze fetch ----------

func (g *Game) retryFetchMaze() {
	if g.mazeInFlight {
		return
	}
	g.mazeErrMsg = ""
	g.mazeInFlight = true
	go g.fetchMazeAsync()
}

func (g *Game) fetchMazeAsync() {
	resp, err := net.GetJSON[protocol.Maze]("/maze")
	if err == nil {
		err = resp.Layout.Validate()
	}
	g.mazeCh <- mazeResult{grid: resp.Layout, err: err}
	g.mazeInFlight = false
}

// ---------- leaderboard over REST ----------

// refreshBoard is the fallback path when the live socket is down, and
// the initial fill before it connects.
func (g *Game) refreshBoard() {
	go func() {
		board, err := net.GetJSON[protocol.Leaderboard]("/leaderboard")
		g.boardCh <- boardResult{board: board, err: err}
	}()
}

// ---------- score submission ----------

func (g *Game) submitScoreAsync(name string, seconds int) {
	go func() {
		ack, err := net.PostJSON[protocol.SubmitScore, protocol.SubmitAck](
			protocol.SubmitScore{PlayerName: name, TimeTaken: float64(seconds)},
			"/leaderboard",
		)
		g.submitCh <- submitResult{ack: ack, err: err}
	}()
}

// ---------- live board socket ----------

func (g *Game) retryConnect() {
	if g.connectInFlight {
		return
	}
	g.connSt = stateConnecting
	g.connectInFlight = true
	go g.connectAsync()
}

func (g *Game) connectAsync() {
	// Single in-flight dial guarded by connectInFlight
	n, err := NewNet(netcfg.ServerURL)
	// send result without blocking forever; drop oldest on overflow
	select {
	case g.connCh <- connResult{n: n, err: err}:
	default:
		select {
		case <-g.connCh:
		default:
		}
		g.connCh <- connResult{n: n, err: err}
	}
	g.connectInFlight = false
}

// ---------- session reset ----------

func (g *Game) startRun() {
	sess, err := maze.NewSession(g.grid)
	if err != nil {
		// Server-side validation should make this unreachable
		log.Printf("GAME: bad grid: %v", err)
		g.mazeErrMsg = err.Error()
		g.scr = screenLoading
		return
	}
	sess.Start()
	g.sess = sess
	g.submitting = false
	g.submitted = false
	g.statusMsg = ""
	g.scr = screenPlaying
}
