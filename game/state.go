package game

import (
	"fmt"
	"slices"
	"strings"
)

// Ghost is the dynamic state of one adversary.
type Ghost struct {
	Position    Position
	Start       Position
	Direction   Action // Last move, Stop before the first one
	ScaredTimer int    // Remaining ghost moves during which the ghost can be eaten
}

func (g Ghost) Scared() bool {
	return g.ScaredTimer > 0
}

// GameState is the dynamic state of the game at any point. Everything static lives in Layout.
// Values are never mutated after construction; Successor copies what it changes.
type GameState struct {
	layout   *Layout
	rules    *Rules
	pacman   Position
	ghosts   []Ghost
	food     []bool // Indexed like Layout.walls, shared until a successor eats
	foodLeft int
	capsules []Position
	score    float64
	win      bool
	lose     bool
}

// NewGameState places Pacman, the food, the capsules and the first numGhosts ghosts of the
// layout. A negative numGhosts keeps every ghost.
func NewGameState(layout *Layout, rules *Rules, numGhosts int) *GameState {
	if rules == nil {
		rules = NewStandardRules()
	}
	starts := layout.GhostStarts
	if numGhosts >= 0 && numGhosts < len(starts) {
		starts = starts[:numGhosts]
	}
	gs := &GameState{
		layout:   layout,
		rules:    rules,
		pacman:   layout.PacmanStart,
		ghosts:   make([]Ghost, len(starts)),
		food:     make([]bool, layout.Width*layout.Height),
		foodLeft: len(layout.Food),
		capsules: slices.Clone(layout.Capsules),
	}
	for i, start := range starts {
		gs.ghosts[i] = Ghost{Position: start, Start: start, Direction: Stop}
	}
	for _, p := range layout.Food {
		gs.food[layout.index(p)] = true
	}
	return gs
}

func (gs *GameState) NumAgents() int {
	return 1 + len(gs.ghosts)
}

func (gs *GameState) IsWin() bool { return gs.win }

func (gs *GameState) IsLose() bool { return gs.lose }

// LegalActions returns the moves available to agent. Terminal states have none. Pacman may always
// stop; ghosts may not, and only turn back when nothing else is open.
func (gs *GameState) LegalActions(agent int) []Action {
	if gs.win || gs.lose {
		return nil
	}
	if agent == PacmanIndex {
		return append(gs.layout.Exits(gs.pacman), Stop)
	}

	ghost := gs.ghost(agent)
	exits := gs.layout.Exits(ghost.Position)
	if len(exits) > 1 {
		reverse := Reverse(ghost.Direction)
		exits = slices.DeleteFunc(exits, func(a Action) bool { return a == reverse })
	}
	return exits
}

// Successor returns the state after agent takes action. It panics on terminal states and illegal
// actions; callers pick from LegalActions.
func (gs *GameState) Successor(agent int, action Action) State {
	return gs.successor(agent, action)
}

func (gs *GameState) successor(agent int, action Action) *GameState {
	if gs.win || gs.lose {
		panic("cannot generate a successor of a terminal state")
	}
	if !slices.Contains(gs.LegalActions(agent), action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := *gs
	next.ghosts = slices.Clone(gs.ghosts)

	if agent == PacmanIndex {
		next.movePacman(action)
		for i := range next.ghosts {
			next.checkCollision(i)
		}
	} else {
		i := agent - 1
		ghost := &next.ghosts[i]
		if ghost.ScaredTimer > 0 {
			ghost.ScaredTimer--
		}
		ghost.Position = ghost.Position.Move(action)
		ghost.Direction = action
		next.checkCollision(i)
	}
	return &next
}

func (gs *GameState) movePacman(action Action) {
	gs.pacman = gs.pacman.Move(action)
	gs.score -= gs.rules.TimePenalty

	if idx := gs.layout.index(gs.pacman); gs.food[idx] {
		gs.food = slices.Clone(gs.food)
		gs.food[idx] = false
		gs.foodLeft--
		gs.score += gs.rules.FoodReward
		if gs.foodLeft == 0 {
			gs.score += gs.rules.WinReward
			gs.win = true
		}
	}

	if i := slices.Index(gs.capsules, gs.pacman); i >= 0 {
		gs.capsules = slices.Delete(slices.Clone(gs.capsules), i, i+1)
		for g := range gs.ghosts {
			gs.ghosts[g].ScaredTimer = gs.rules.ScaredTime
		}
	}
}

func (gs *GameState) checkCollision(i int) {
	ghost := &gs.ghosts[i]
	if ghost.Position != gs.pacman || gs.win || gs.lose {
		return
	}
	if ghost.Scared() {
		gs.score += gs.rules.GhostReward
		ghost.Position = ghost.Start
		ghost.Direction = Stop
		ghost.ScaredTimer = 0
		gs.checkCollision(i) // Pacman may be standing on the start cell
		return
	}
	gs.score -= gs.rules.LosePenalty
	gs.lose = true
}

func (gs *GameState) ghost(agent int) Ghost {
	if agent < 1 || agent > len(gs.ghosts) {
		panic(fmt.Sprintf("agent %d is not a ghost", agent))
	}
	return gs.ghosts[agent-1]
}

func (gs *GameState) Layout() *Layout { return gs.layout }

func (gs *GameState) PacmanPosition() Position { return gs.pacman }

// Ghosts returns a copy of every ghost's state, ordered by agent index.
func (gs *GameState) Ghosts() []Ghost { return slices.Clone(gs.ghosts) }

func (gs *GameState) Capsules() []Position { return slices.Clone(gs.capsules) }

func (gs *GameState) Score() float64 { return gs.score }

func (gs *GameState) FoodCount() int { return gs.foodLeft }

func (gs *GameState) HasFood(p Position) bool {
	return !gs.layout.IsWall(p) && gs.food[gs.layout.index(p)]
}

// FoodPositions lists the remaining food in row-major order.
func (gs *GameState) FoodPositions() []Position {
	positions := make([]Position, 0, gs.foodLeft)
	for idx, ok := range gs.food {
		if ok {
			positions = append(positions, Position{idx % gs.layout.Width, idx / gs.layout.Width})
		}
	}
	return positions
}

func (gs *GameState) String() string {
	rows := strings.Split(strings.TrimRight(gs.layout.String(), "\n"), "\n")
	grid := make([][]byte, len(rows))
	for y, row := range rows {
		grid[y] = []byte(row)
	}
	for _, p := range gs.FoodPositions() {
		grid[p.Y][p.X] = '.'
	}
	for _, p := range gs.capsules {
		grid[p.Y][p.X] = 'o'
	}
	for _, g := range gs.ghosts {
		mark := byte('G')
		if g.Scared() {
			mark = 'S'
		}
		grid[g.Position.Y][g.Position.X] = mark
	}
	grid[gs.pacman.Y][gs.pacman.X] = 'P'

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Score: %g\n", gs.score)
	return b.String()
}
