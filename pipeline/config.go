package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opd-ai/nv21/transform"
)

// Step operation names accepted in StepConfig.Op.
const (
	OpRotate = "rotate"
	OpFlip   = "flip"
	OpResize = "resize"
)

// ErrUnknownStep indicates a step configuration with an unrecognised op.
var ErrUnknownStep = errors.New("unknown pipeline step")

// StepConfig describes one step of a chain in a configuration file.
type StepConfig struct {
	Op      string `koanf:"op" yaml:"op"`
	Degrees int    `koanf:"degrees" yaml:"degrees,omitempty"`
	Axis    string `koanf:"axis" yaml:"axis,omitempty"`
	Width   int    `koanf:"width" yaml:"width,omitempty"`
	Height  int    `koanf:"height" yaml:"height,omitempty"`
}

// ParseAxis converts "vertical" or "horizontal" (case-insensitive) to an Axis.
func ParseAxis(s string) (transform.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return transform.Vertical, nil
	case "horizontal", "h":
		return transform.Horizontal, nil
	}
	return 0, fmt.Errorf("unknown flip axis %q", s)
}

// NewStep builds the step described by cfg.
func NewStep(cfg StepConfig) (Step, error) {
	switch strings.ToLower(cfg.Op) {
	case OpRotate:
		return NewRotateStep(cfg.Degrees), nil
	case OpFlip:
		axis, err := ParseAxis(cfg.Axis)
		if err != nil {
			return nil, err
		}
		return NewFlipStep(axis), nil
	case OpResize:
		return NewResizeStep(cfg.Width, cfg.Height), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStep, cfg.Op)
}

// Build creates a chain from step configurations, in order.
func Build(configs []StepConfig) (*Chain, error) {
	chain := NewChain()
	for i, cfg := range configs {
		step, err := NewStep(cfg)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		chain.AddStep(step)
	}
	return chain, nil
}
