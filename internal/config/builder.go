package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets the move picker for the side to move (white in self-play).
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Search.Mode = mode
	return b
}

// WithBlackMode sets black's move picker for self-play.
func (b *ConfigBuilder) WithBlackMode(mode Mode) *ConfigBuilder {
	b.cfg.Match.BlackMode = mode
	return b
}

// WithDepth sets the minimax depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of root-search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithSeed sets the random mover's seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithMaxPlies sets the self-play ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = n
	return b
}

// WithRepetitionLimit sets how many occurrences of a position end a game.
func (b *ConfigBuilder) WithRepetitionLimit(n int) *ConfigBuilder {
	b.cfg.Match.RepetitionLimit = n
	return b
}

// WithFiftyMoveLimit sets the halfmove clock that ends a game.
func (b *ConfigBuilder) WithFiftyMoveLimit(plies int) *ConfigBuilder {
	b.cfg.Match.FiftyMoveLimit = plies
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard enables the ASCII board diagram.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
