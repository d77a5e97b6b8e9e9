package experiments

import (
	"fmt"

	"pacai/config"
	"pacai/engine"
	"pacai/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Result holds the records of an experiment and the directory they were written to.
type Result struct {
	Dir     string
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// Run plays the configured number of games with every configured agent and writes the records
// under the configured output directory. Game i uses the same ghost seed for every agent, and up
// to the configured number of workers play games at once.
func Run(name string, c *config.Config) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msgf("starting %s experiment on %s...", name, c.Game.Layout)

	type played struct {
		game  metrics.GameMetric
		moves []metrics.MoveMetric
	}
	games := make([]played, len(c.Agents)*c.Game.Games)

	g := new(errgroup.Group)
	g.SetLimit(max(c.Game.Workers, 1))
	for ai, agent := range c.Agents {
		log.Info().Msgf("scheduling agent %d of %d: %+v", ai+1, len(c.Agents), agent)

		for i := 0; i < c.Game.Games; i++ {
			slot := ai*c.Game.Games + i
			g.Go(func() error {
				gameMetric, moveMetrics, err := runGame(c, agent, uint64(c.Game.Seed+i+1))
				if err != nil {
					return err
				}
				games[slot] = played{game: gameMetric, moves: moveMetrics}

				log.Info().Msgf("completed agent %s game %d of %d: won=%t score=%.0f", agent.Name, i+1, c.Game.Games, gameMetric.Won, gameMetric.Score)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for ai, agent := range c.Agents {
		result.Configs = append(result.Configs, agent.Record(ai+1))
	}
	for slot, p := range games {
		id := slot + 1
		result.Games = append(result.Games, metrics.GameRecord{
			ID:         id,
			Agent:      slot/c.Game.Games + 1,
			GameMetric: p.game,
		})
		for _, mm := range p.moves {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := write(name, c.Game.Output, result)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

func runGame(c *config.Config, agent config.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := c.Game.NewState()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	collector := metrics.NewCollector()
	pacman, err := agent.NewAgent(seed, collector)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocal(state, pacman, config.NewGhosts(state, seed),
		engine.WithMaxMoves(c.Game.MaxMoves),
		engine.WithCollector(collector),
	)
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func write(name, root string, result *Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(result.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
