package config

import "github.com/hashicorp/go-multierror"

// MatchConfig holds settings for self-play games.
type MatchConfig struct {
	// MaxPlies ends the game as a draw after this many plies (0 = no limit).
	MaxPlies int

	// BlackMode is the move picker for black. White uses Search.Mode.
	BlackMode Mode

	// RepetitionLimit ends the game when a position occurs this many times
	// (0 disables the check).
	RepetitionLimit int

	// StopOnInsufficientMaterial ends the game when neither side can mate.
	StopOnInsufficientMaterial bool

	// FiftyMoveLimit ends the game when the halfmove clock reaches this many
	// plies (0 disables the check).
	FiftyMoveLimit int
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		MaxPlies:                   200,
		BlackMode:                  Minimax,
		RepetitionLimit:            3,
		StopOnInsufficientMaterial: true,
		FiftyMoveLimit:             100,
	}
}

// Validate checks that the match configuration is valid.
func (m *MatchConfig) Validate() error {
	var result *multierror.Error
	if m.MaxPlies < 0 {
		result = multierror.Append(result, invalid("max plies %d is negative", m.MaxPlies))
	}
	if m.RepetitionLimit < 0 || m.RepetitionLimit == 1 {
		result = multierror.Append(result, invalid("repetition limit %d must be 0 or at least 2", m.RepetitionLimit))
	}
	if m.FiftyMoveLimit < 0 {
		result = multierror.Append(result, invalid("fifty-move limit %d is negative", m.FiftyMoveLimit))
	}
	if m.BlackMode != Minimax && m.BlackMode != Random {
		result = multierror.Append(result, invalid("unknown black mode %v", m.BlackMode))
	}
	return result.ErrorOrNil()
}
