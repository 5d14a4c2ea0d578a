// File: internal/checks/suite.go
package checks

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/vantage/api/schemas"
)

// ErrInvalidSuite is wrapped by every structural problem found while loading a suite.
var ErrInvalidSuite = errors.New("invalid check suite")

// Check is one declarative assertion. Which fields apply depends on Kind.
type Check struct {
	Name string            `mapstructure:"name"`
	Kind schemas.CheckKind `mapstructure:"kind"`

	// Element is the handle for the single-element kinds.
	Element   string   `mapstructure:"element"`
	Subject   string   `mapstructure:"subject"`
	Reference string   `mapstructure:"reference"`
	Elements  []string `mapstructure:"elements"`

	// in_viewport
	FullyVisible   bool          `mapstructure:"fully_visible"`
	Threshold      float64       `mapstructure:"threshold"`
	Padding        float64       `mapstructure:"padding"`
	ScrollIntoView bool          `mapstructure:"scroll_into_view"`
	ScrollTimeout  time.Duration `mapstructure:"scroll_timeout"`

	// position and distance
	Direction        string  `mapstructure:"direction"`
	Gap              float64 `mapstructure:"gap"`
	OverlapRatio     float64 `mapstructure:"overlap_ratio"`
	Logical          string  `mapstructure:"logical"`
	WritingDirection string  `mapstructure:"writing_direction"`

	// aligned
	Axis string `mapstructure:"axis"`
	Mode string `mapstructure:"mode"`

	// order
	Order string `mapstructure:"order"`

	// Tolerance applies to position, aligned and order. A nil tolerance on an
	// aligned check uses the engine's configured default.
	Tolerance *float64 `mapstructure:"tolerance"`

	// Min and Max bound the value of the numeric kinds.
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

// Suite is an ordered list of checks.
type Suite struct {
	Checks []Check `mapstructure:"checks"`
}

// Load reads a suite from any file format viper understands.
func Load(path string) (*Suite, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand suite path %s: %w", path, err)
	}
	v := viper.New()
	v.SetConfigFile(expanded)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read suite %s: %w", expanded, err)
	}
	return fromViper(v)
}

// Decode reads a suite in the given format ("yaml", "json", "toml").
func Decode(r io.Reader, format string) (*Suite, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to parse %s suite: %w", format, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Suite, error) {
	var s Suite
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode suite: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every check names a known kind and the handles that
// kind needs. Unnamed checks are given a positional name. Option values are
// left to the engine, so a bad option fails only its own check.
func (s *Suite) Validate() error {
	if len(s.Checks) == 0 {
		return fmt.Errorf("%w: no checks defined", ErrInvalidSuite)
	}
	for i := range s.Checks {
		c := &s.Checks[i]
		c.Kind = schemas.CheckKind(strings.ToLower(strings.TrimSpace(string(c.Kind))))
		if c.Name == "" {
			c.Name = fmt.Sprintf("check-%d", i+1)
		}
		if err := c.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSuite, c.Name, err)
		}
	}
	return nil
}

func (c *Check) validate() error {
	switch c.Kind {
	case schemas.CheckInViewport, schemas.CheckVisibleRatio:
		if c.Element == "" {
			return errors.New("element is required")
		}
	case schemas.CheckPosition, schemas.CheckAligned, schemas.CheckDistance, schemas.CheckIntersectionRatio:
		if c.Subject == "" || c.Reference == "" {
			return errors.New("subject and reference are required")
		}
	case schemas.CheckOrder:
		if len(c.Elements) == 0 {
			return errors.New("elements must not be empty")
		}
		if c.Order == "" {
			return errors.New("order is required")
		}
	case "":
		return errors.New("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		return fmt.Errorf("min %v exceeds max %v", *c.Min, *c.Max)
	}
	return nil
}

func (c *Check) tolerance() float64 {
	if c.Tolerance == nil {
		return 0
	}
	return *c.Tolerance
}
