package series

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSteps is wrapped by every *ConfigError.
var ErrInvalidSteps = errors.New("invalid steps configuration")

// ConfigError reports a malformed steps configuration.
type ConfigError struct {
	MinPages int
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: breakpoint %d: %s", ErrInvalidSteps, e.MinPages, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidSteps
}

// Size is the shape of a series: pages at the head, pages before and after
// the current one, and pages at the tail.
type Size struct {
	Head   int `json:"head"   yaml:"head"`
	Before int `json:"before" yaml:"before"`
	After  int `json:"after"  yaml:"after"`
	Tail   int `json:"tail"   yaml:"tail"`
}

// DefaultSize is the series shape used when no steps are configured.
//
//nolint:gochecknoglobals // Read-only default.
var DefaultSize = Size{Head: 1, Before: 3, After: 3, Tail: 1}

// SizeFromSlice converts a [head, before, after, tail] tuple.
func SizeFromSlice(tuple []int) (Size, error) {
	const tupleLen = 4
	if len(tuple) != tupleLen {
		return Size{}, fmt.Errorf("%w: size must have %d entries, got %d", ErrInvalidSteps, tupleLen, len(tuple))
	}
	return Size{Head: tuple[0], Before: tuple[1], After: tuple[2], Tail: tuple[3]}, nil
}

// Slice returns the size as a [head, before, after, tail] tuple.
func (s Size) Slice() []int {
	return []int{s.Head, s.Before, s.After, s.Tail}
}

func (s Size) validate() string {
	if s.Head < 1 || s.Before < 1 || s.After < 1 || s.Tail < 1 {
		return fmt.Sprintf("size entries must be >= 1, got %v", s.Slice())
	}
	return ""
}

// Step maps a breakpoint, the minimum number of total pages, to a series shape.
type Step struct {
	MinPages int
	Size     Size
}

// Steps is an ordered, validated list of breakpoints.
type Steps []Step

// NewSteps validates a breakpoint map and returns it sorted by breakpoint.
// A breakpoint of 0 is required so that every page count selects a size.
func NewSteps(m map[int]Size) (Steps, error) {
	if len(m) == 0 {
		return DefaultSteps(), nil
	}

	steps := make(Steps, 0, len(m))
	for minPages, size := range m {
		steps = append(steps, Step{MinPages: minPages, Size: size})
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].MinPages < steps[j].MinPages })

	if err := steps.Validate(); err != nil {
		return nil, err
	}
	return steps, nil
}

// DefaultSteps returns a single breakpoint at 0 with DefaultSize.
func DefaultSteps() Steps {
	return Steps{{MinPages: 0, Size: DefaultSize}}
}

// Validate checks that breakpoints start at 0, strictly increase and carry positive sizes.
func (s Steps) Validate() error {
	if len(s) == 0 {
		return &ConfigError{Reason: "at least one breakpoint is required"}
	}
	if s[0].MinPages != 0 {
		return &ConfigError{MinPages: s[0].MinPages, Reason: "the first breakpoint must be 0"}
	}
	for i, step := range s {
		if i > 0 && step.MinPages <= s[i-1].MinPages {
			return &ConfigError{MinPages: step.MinPages, Reason: "breakpoints must be strictly increasing"}
		}
		if reason := step.Size.validate(); reason != "" {
			return &ConfigError{MinPages: step.MinPages, Reason: reason}
		}
	}
	return nil
}

// SizeFor returns the size of the greatest breakpoint <= pages.
func (s Steps) SizeFor(pages int) Size {
	size := DefaultSize
	for _, step := range s {
		if step.MinPages > pages {
			break
		}
		size = step.Size
	}
	return size
}
