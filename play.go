package main

import (
	"fmt"

	"pacai/config"
	"pacai/engine"
	"pacai/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type PlayCmd struct {
	Config string `default:"pacai.hcl" help:"HCL configuration file" type:"path"`
	Agent  string `help:"Configured agent to play with (default: the first)"`
	Layout string `help:"Override the configured layout"`
	Seed   int    `default:"-1" help:"Override the configured seed"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	agent := cfg.Agents[0]
	if c.Agent != "" {
		var ok bool
		if agent, ok = cfg.Agent(c.Agent); !ok {
			return fmt.Errorf("no agent named %q in %s", c.Agent, c.Config)
		}
	}

	state, err := cfg.Game.NewState()
	if err != nil {
		return err
	}
	seed := uint64(cfg.Game.Seed)
	collector := metrics.NewCollector()
	pacman, err := agent.NewAgent(seed, collector)
	if err != nil {
		return err
	}

	e := engine.NewLocal(state, pacman, config.NewGhosts(state, seed),
		engine.WithMaxMoves(cfg.Game.MaxMoves),
		engine.WithCollector(collector),
	)
	gameMetric, moveMetrics := e.Run()

	nodes := 0
	for _, m := range moveMetrics {
		nodes += m.Nodes
	}
	log.Debug().Msgf("final state:\n%s", e.State())
	log.Info().
		Str("agent", agent.Name).
		Bool("won", gameMetric.Won).
		Float64("score", gameMetric.Score).
		Int("moves", gameMetric.TotalMoves).
		Int("nodes", nodes).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
	return nil
}

func (c *PlayCmd) load() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Layout != "" {
		cfg.Game.Layout = c.Layout
	}
	if c.Seed >= 0 {
		cfg.Game.Seed = c.Seed
	}
	return cfg, cfg.Validate()
}
