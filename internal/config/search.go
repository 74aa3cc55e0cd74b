package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Mode selects how a player picks moves.
type Mode int

const (
	Minimax Mode = iota // Fixed-depth minimax
	Random              // Uniform random legal move
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Minimax:
		return "minimax"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as accepted by the -mode flag.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax", "":
		return Minimax, nil
	case "random":
		return Random, nil
	default:
		return Minimax, invalid("unknown mode %q", s)
	}
}

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	// Mode is the move picker for the side to move.
	Mode Mode

	// Depth is the minimax depth in plies.
	Depth int

	// Workers splits the root moves across goroutines when above 1.
	Workers int

	// Seed drives the random mover.
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Mode:    Minimax,
		Depth:   2,
		Workers: 1,
		Seed:    1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	var result *multierror.Error
	if s.Depth < 1 {
		result = multierror.Append(result, invalid("search depth %d < 1", s.Depth))
	}
	if s.Workers < 1 {
		result = multierror.Append(result, invalid("workers %d < 1", s.Workers))
	}
	if s.Mode != Minimax && s.Mode != Random {
		result = multierror.Append(result, invalid("unknown mode %v", s.Mode))
	}
	return result.ErrorOrNil()
}

// invalid builds an error that matches errors.ErrInvalidConfig.
func invalid(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, errors.ErrInvalidConfig)...)
}
