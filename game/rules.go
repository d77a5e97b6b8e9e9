package game

// Rules holds the scoring constants and timers of a game.
type Rules struct {
	TimePenalty float64 // Charged on every Pacman move, including Stop
	FoodReward  float64
	WinReward   float64 // Awarded when the last food is eaten
	GhostReward float64 // Awarded for eating a scared ghost
	LosePenalty float64 // Charged on contact with a live ghost
	ScaredTime  int     // Ghost moves a capsule keeps ghosts scared
}

func NewStandardRules() *Rules {
	return &Rules{
		TimePenalty: 1,
		FoodReward:  10,
		WinReward:   500,
		GhostReward: 200,
		LosePenalty: 500,
		ScaredTime:  40,
	}
}
