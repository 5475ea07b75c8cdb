package metrics

// Stub implementations for game metrics - wire to Prometheus when available
// TODO: Replace with github.com/prometheus/client_golang/prometheus when wired

import (
	"log"
)

// Stub implementations that log metrics until Prometheus is wired
type StubCounterVec struct{ name string }
type StubGaugeVec struct{ name string }

type StubInc struct{}
type StubSet struct{}

var MazeFetches = StubCounterVec{name: "maze_fetches_total"}
var ScoreSubmissions = StubCounterVec{name: "score_submissions_total"}
var ScoreRejections = StubCounterVec{name: "score_rejections_total"}
var BoardReads = StubCounterVec{name: "board_reads_total"}
var BoardSubscribers = StubGaugeVec{name: "board_subscribers"}

func (s StubCounterVec) WithLabelValues(values ...string) StubInc {
	log.Printf("METRIC %s: %v", s.name, values)
	return StubInc{}
}

func (s StubGaugeVec) WithLabelValues(values ...string) StubSet {
	log.Printf("METRIC %s set: %v", s.name, values)
	return StubSet{}
}

func (s StubInc) Inc() {}

func (s StubSet) Set(v float64) {}
