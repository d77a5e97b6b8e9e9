package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search invocation: a graph search or a single agent decision.
type SearchMetric struct {
	Algorithm string
	Depth     int
	Duration  time.Duration
	Nodes     int // Game-tree nodes visited or graph states expanded
	Pruned    int // Alpha-beta cutoffs
}

type MoveMetric struct {
	Step   int
	Agent  int // Agent index, 0 is Pacman
	Action string
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Won        bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	pruned    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters so one collector can be reused across decisions.
func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
	m.pruned.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPrune() {
	m.pruned.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Pruned:    int(m.pruned.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddPrune()                         {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
