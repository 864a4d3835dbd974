// Package pipeline chains NV21 frame transforms.
//
// A Chain applies an ordered list of steps to a frame. Each step returns a
// new frame and leaves its input unchanged, so a chain can be run on a
// caller's buffer without side effects.
package pipeline

import (
	"fmt"

	"github.com/opd-ai/nv21/frame"
	"github.com/sirupsen/logrus"
)

// Step represents a frame transform that can be applied in a chain.
type Step interface {
	// Apply processes a frame and returns the transformed frame
	Apply(f frame.Frame) (frame.Frame, error)
	// GetName returns the step name for identification
	GetName() string
}

// Chain manages multiple steps applied in sequence.
type Chain struct {
	steps []Step
}

// NewChain creates a new, empty step chain.
func NewChain() *Chain {
	return &Chain{
		steps: make([]Step, 0),
	}
}

// AddStep appends a step to the chain.
func (c *Chain) AddStep(step Step) {
	c.steps = append(c.steps, step)
}

// Apply processes a frame through all steps in the chain.
func (c *Chain) Apply(f frame.Frame) (frame.Frame, error) {
	if err := f.Validate(); err != nil {
		return frame.Frame{}, fmt.Errorf("invalid input frame: %w", err)
	}

	// If no steps, return a copy
	if len(c.steps) == 0 {
		return f.Clone(), nil
	}

	current := f
	for i, step := range c.steps {
		logrus.WithFields(logrus.Fields{
			"function": "Chain.Apply",
			"step":     i,
			"name":     step.GetName(),
			"input":    current.String(),
		}).Debug("Applying pipeline step")

		result, err := step.Apply(current)
		if err != nil {
			return frame.Frame{}, fmt.Errorf("step %d (%s) failed: %w", i, step.GetName(), err)
		}
		current = result
	}

	return current, nil
}

// GetStepCount returns the number of steps in the chain.
func (c *Chain) GetStepCount() int {
	return len(c.steps)
}

// GetStepNames returns the names of the steps in order.
func (c *Chain) GetStepNames() []string {
	names := make([]string, len(c.steps))
	for i, step := range c.steps {
		names[i] = step.GetName()
	}
	return names
}

// Clear removes all steps from the chain.
func (c *Chain) Clear() {
	c.steps = c.steps[:0]
}
