package game

// Action is an opaque transition token. The grid world uses the five directions below.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// PacmanIndex is the agent index of the maximizing agent.
const PacmanIndex = 0

// State should be immutable - Successor always returns a new copy.
type State interface {
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	NumAgents() int
	IsWin() bool
	IsLose() bool
}

// Evaluate scores a state from Pacman's perspective; higher is better.
type Evaluate func(State) float64

// ActionEvaluate scores taking action from state, for one-ply agents.
type ActionEvaluate func(State, Action) float64

// Sentinel extremes returned by evaluation functions. They are finite so that averaging over
// chance nodes never produces NaN.
const (
	Losing  = -1e9
	Winning = 1e9
)
