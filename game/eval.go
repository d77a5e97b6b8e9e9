package game

// Observation is what the evaluation functions read from a state.
type Observation interface {
	State
	PacmanPosition() Position
	Ghosts() []Ghost
	FoodPositions() []Position
	Capsules() []Position
	Score() float64
}

func observe(s State) Observation {
	obs, ok := s.(Observation)
	if !ok {
		panic("unexpected state type")
	}
	return obs
}

// EvaluateScore returns the raw game score. It is the default evaluation for adversarial agents.
func EvaluateScore(s State) float64 {
	return observe(s).Score()
}

// EvaluateBetter eats scared ghosts, avoids live ghosts and heads for nearby food, on top of the
// game score.
func EvaluateBetter(s State) float64 {
	obs := observe(s)
	pos := obs.PacmanPosition()
	score := obs.Score()

	for _, ghost := range obs.Ghosts() {
		d := float64(Manhattan(pos, ghost.Position))
		switch {
		case d == 0 && !ghost.Scared():
			return Losing
		case d == 0:
			score += 300
		case ghost.Scared() && d < 10:
			score += 300 / d
		case !ghost.Scared() && d < 3:
			score -= 1 / d
		}
	}

	if d, ok := nearest(pos, obs.FoodPositions()); ok && d > 0 {
		score += 2 / float64(d)
	}
	return score
}

// EvaluateReflex scores Pacman taking action from s without looking further ahead.
func EvaluateReflex(s State, action Action) float64 {
	if action == Stop {
		return Losing
	}
	current := observe(s)
	next := observe(current.Successor(PacmanIndex, action))
	before := current.PacmanPosition()
	after := next.PacmanPosition()

	ghosts := next.Ghosts()
	for _, ghost := range ghosts {
		touching := ghost.Position == after || ghost.Position == before
		if touching && !ghost.Scared() {
			return Losing
		}
	}

	// Food is read before the move so that eating scores as distance 0
	foodDist, _ := nearest(after, current.FoodPositions())
	if len(ghosts) == 0 {
		return -float64(foodDist)
	}

	closest := ghosts[0]
	ghostDist := Manhattan(after, closest.Position)
	for _, ghost := range ghosts[1:] {
		if d := Manhattan(after, ghost.Position); d < ghostDist {
			closest, ghostDist = ghost, d
		}
	}

	// Grab a capsule when a live ghost closes in and one is within reach
	if capsuleDist, ok := nearest(after, next.Capsules()); ok && !closest.Scared() && capsuleDist < 5 && ghostDist < 5 {
		return -float64(capsuleDist)
	}

	// Hunt a scared ghost while there is time to catch it
	if closest.ScaredTimer > 20 && ghostDist < 3 {
		return -float64(ghostDist)
	}

	return -float64(foodDist)
}
