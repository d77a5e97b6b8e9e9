package main

import (
	"pacai/config"
	"pacai/experiments"

	"github.com/rs/zerolog/log"
)

type ExperimentCmd struct {
	Name       string   `arg:"" default:"experiment" help:"Experiment name, used for the output directory"`
	Config     string   `default:"pacai.hcl" help:"HCL configuration file" type:"path"`
	Games      int      `help:"Override the configured number of games per agent"`
	Output     string   `help:"Override the configured output directory"`
	Workers    int      `help:"Override the configured number of games played at once"`
	SweepDepth int      `help:"Replace the configured agents with one per kind and depth up to this bound"`
	Kinds      []string `default:"minimax,alphabeta,expectimax" help:"Agent kinds for a depth sweep"`
	Evaluation string   `default:"better" help:"Evaluation function for a depth sweep"`
}

func (c *ExperimentCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Games > 0 {
		cfg.Game.Games = c.Games
	}
	if c.Output != "" {
		cfg.Game.Output = c.Output
	}
	if c.Workers > 0 {
		cfg.Game.Workers = c.Workers
	}
	if c.SweepDepth > 0 {
		cfg.Agents = experiments.DepthSweep(c.Kinds, c.SweepDepth, c.Evaluation)
	}

	result, err := experiments.Run(c.Name, cfg)
	if err != nil {
		return err
	}

	wins := 0
	for _, record := range result.Games {
		if record.Won {
			wins++
		}
	}
	log.Info().Str("dir", result.Dir).Int("games", len(result.Games)).Int("wins", wins).Msg("experiment written")
	return nil
}
