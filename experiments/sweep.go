package experiments

import (
	"fmt"

	"pacai/config"
)

// DepthSweep returns one agent per kind and depth from 1 to maxDepth, all using evaluation.
func DepthSweep(kinds []string, maxDepth int, evaluation string) []config.AgentConfig {
	agents := make([]config.AgentConfig, 0, len(kinds)*maxDepth)
	for _, kind := range kinds {
		for depth := 1; depth <= maxDepth; depth++ {
			agents = append(agents, config.AgentConfig{
				Name:       fmt.Sprintf("%s-%d", kind, depth),
				Kind:       kind,
				Evaluation: evaluation,
				Depth:      depth,
			})
		}
	}
	return agents
}
