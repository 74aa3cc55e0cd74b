// Package config provides configuration for the chess engine CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Search *SearchConfig
	Match  *MatchConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Match:      NewMatchConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every sub-config and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Verbosity < 0 {
		result = multierror.Append(result, invalid("verbosity %d is negative", c.Verbosity))
	}
	if err := c.Search.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Match.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
