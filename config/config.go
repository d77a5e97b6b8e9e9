package config

import (
	"fmt"
	"os"
	"runtime"

	"pacai/engine"
	"pacai/experiments/metrics"
	"pacai/game"
	"pacai/searcher"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultLayout   = "smallClassic"
	DefaultGames    = 10
	DefaultOutput   = "results"
	DefaultKind     = "alphabeta"
	DefaultEvaluate = "better"
	ReflexKind      = "reflex"
)

// Config describes the game to play and the Pacman agents to play it with.
type Config struct {
	Game   *GameSettings `hcl:"game,block"`
	Agents []AgentConfig `hcl:"agent,block"`
}

type GameSettings struct {
	Layout   string `hcl:"layout,optional"`
	MaxMoves int    `hcl:"max_moves,optional"`
	Seed     int    `hcl:"seed,optional"`
	Ghosts   *int   `hcl:"ghosts,optional"` // Unset keeps every ghost of the layout
	Games    int    `hcl:"games,optional"`  // Per agent in experiments
	Output   string `hcl:"output,optional"` // Experiment results directory
	Workers  int    `hcl:"workers,optional"` // Experiment games played at once
}

type AgentConfig struct {
	Name       string `hcl:"name,label"`
	Kind       string `hcl:"kind,optional"`
	Evaluation string `hcl:"evaluation,optional"`
	Depth      int    `hcl:"depth,optional"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse reads configuration from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Layout == "" {
		c.Game.Layout = DefaultLayout
	}
	if c.Game.MaxMoves == 0 {
		c.Game.MaxMoves = engine.MaxMoves
	}
	if c.Game.Games == 0 {
		c.Game.Games = DefaultGames
	}
	if c.Game.Output == "" {
		c.Game.Output = DefaultOutput
	}
	if c.Game.Workers == 0 {
		c.Game.Workers = runtime.NumCPU()
	}

	if len(c.Agents) == 0 {
		c.Agents = []AgentConfig{{Name: "pacman"}}
	}
	for i := range c.Agents {
		if c.Agents[i].Kind == "" {
			c.Agents[i].Kind = DefaultKind
		}
		if c.Agents[i].Evaluation == "" && c.Agents[i].Kind != ReflexKind {
			c.Agents[i].Evaluation = DefaultEvaluate
		}
		if c.Agents[i].Depth == 0 && c.Agents[i].Kind != ReflexKind {
			c.Agents[i].Depth = searcher.DefaultDepth
		}
	}
}

// Validate checks every name against the built-in layouts, agent kinds and evaluations.
func (c *Config) Validate() error {
	if _, err := game.LoadLayout(c.Game.Layout); err != nil {
		return err
	}
	if c.Game.MaxMoves < 0 {
		return fmt.Errorf("max_moves must be positive: %d", c.Game.MaxMoves)
	}
	if c.Game.Seed < 0 {
		return fmt.Errorf("seed must not be negative: %d", c.Game.Seed)
	}
	if c.Game.Ghosts != nil && *c.Game.Ghosts < 0 {
		return fmt.Errorf("ghosts must not be negative: %d", *c.Game.Ghosts)
	}
	if c.Game.Games < 0 {
		return fmt.Errorf("games must be positive: %d", c.Game.Games)
	}
	if c.Game.Workers < 0 {
		return fmt.Errorf("workers must be positive: %d", c.Game.Workers)
	}

	names := make(map[string]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if names[agent.Name] {
			return fmt.Errorf("agent %s: duplicate name", agent.Name)
		}
		names[agent.Name] = true

		if agent.Kind == ReflexKind {
			continue
		}
		if _, err := searcher.ParseKind(agent.Kind); err != nil {
			return fmt.Errorf("agent %s: %w", agent.Name, err)
		}
		if _, err := game.LookupEvaluation(agent.Evaluation); err != nil {
			return fmt.Errorf("agent %s: %w", agent.Name, err)
		}
		if agent.Depth < 1 {
			return fmt.Errorf("agent %s: depth must be positive: %d", agent.Name, agent.Depth)
		}
	}
	return nil
}

// Agent returns the agent configuration with the given name.
func (c *Config) Agent(name string) (AgentConfig, bool) {
	for _, agent := range c.Agents {
		if agent.Name == name {
			return agent, true
		}
	}
	return AgentConfig{}, false
}

// NewState builds the starting state of the configured game.
func (g *GameSettings) NewState() (*game.GameState, error) {
	layout, err := game.LoadLayout(g.Layout)
	if err != nil {
		return nil, err
	}
	ghosts := -1
	if g.Ghosts != nil {
		ghosts = *g.Ghosts
	}
	return game.NewGameState(layout, nil, ghosts), nil
}

// NewAgent builds the Pacman agent. Searching agents report to collector.
func (a AgentConfig) NewAgent(seed uint64, collector metrics.Collector) (searcher.Agent, error) {
	if a.Kind == ReflexKind {
		return searcher.NewReflexAgent(nil, seed), nil
	}

	kind, err := searcher.ParseKind(a.Kind)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", a.Name, err)
	}
	evaluate, err := game.LookupEvaluation(a.Evaluation)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", a.Name, err)
	}
	return searcher.New(kind,
		searcher.WithDepth(a.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithCollector(collector),
	), nil
}

// Record describes the agent in experiment output.
func (a AgentConfig) Record(id int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         id,
		Name:       a.Name,
		Kind:       a.Kind,
		Evaluation: a.Evaluation,
		Depth:      a.Depth,
	}
}

// NewGhosts builds a random ghost for every ghost in state, seeded from seed.
func NewGhosts(state game.State, seed uint64) []searcher.Agent {
	ghosts := make([]searcher.Agent, 0, state.NumAgents()-1)
	for i := 1; i < state.NumAgents(); i++ {
		ghosts = append(ghosts, searcher.NewRandomGhost(i, seed+uint64(i)))
	}
	return ghosts
}
