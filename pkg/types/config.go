package types

import (
	"errors"
	"fmt"
)

// Config holds the parameters for opening a store registry.
type Config struct {
	// FixturesDir is the directory holding the seed JSON files. When empty,
	// the registry seeds from its embedded default fixtures.
	FixturesDir string `json:"fixtures_dir" yaml:"fixtures_dir"`

	// LatencyScale multiplies each operation's base simulated latency.
	// 0 (the default) disables the artificial delay entirely; 1.0 applies
	// the full per-operation delays.
	LatencyScale float64 `json:"latency_scale" yaml:"latency_scale"`

	// User is the acting user attributed to new feedback and checked by the
	// ownership affordance.
	User User `json:"user" yaml:"user"`
}

// User identifies the acting user, attributed to new feedback.
type User struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Role   string `json:"role" yaml:"role"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// Config validation errors.
var (
	ErrLatencyScaleNegative = errors.New("latency scale must not be negative")
	ErrUserRoleUnknown      = fmt.Errorf("user role: %w", ErrRoleInvalid)
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.LatencyScale < 0 {
		return ErrLatencyScaleNegative
	}
	if c.User.Role != "" && !validRoles[c.User.Role] {
		return ErrUserRoleUnknown
	}
	return nil
}
