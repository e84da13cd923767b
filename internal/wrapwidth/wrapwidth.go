// Package wrapwidth describes Markdown wrap widths and the fixture layout
// used to check rendered Markdown against expected output for each width.
package wrapwidth

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// WrapWidth is the column at which rendered Markdown is wrapped.
// NoWrap (0) disables wrapping and Unlimited stands for an infinite width.
type WrapWidth int

const (
	NoWrap    WrapWidth = 0
	Unlimited WrapWidth = math.MaxInt
)

// DefaultWidths returns the widths every fixture is rendered with.
func DefaultWidths() []WrapWidth {
	return []WrapWidth{10, 40, 80, Unlimited, NoWrap}
}

// ParseWrapWidth parses a non-negative integer or one of "inf", "infinity"
// and "unlimited".
func ParseWrapWidth(s string) (WrapWidth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "infinity", "unlimited", "+inf":
		return Unlimited, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid wrap width %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid wrap width %q: must not be negative", s)
	}
	return WrapWidth(n), nil
}

// Wraps reports whether lines are actually wrapped at this width.
func (w WrapWidth) Wraps() bool {
	return w != NoWrap && w != Unlimited
}

func (w WrapWidth) String() string {
	if w == Unlimited {
		return "inf"
	}
	return strconv.Itoa(int(w))
}

// Suffix is the width component of an expectation file name. Widths that
// do not wrap share the "inf" suffix.
func (w WrapWidth) Suffix() string {
	if !w.Wraps() {
		return "inf"
	}
	return w.String()
}

func (w WrapWidth) MarshalYAML() (interface{}, error) {
	if w == Unlimited {
		return "inf", nil
	}
	return int(w), nil
}

func (w *WrapWidth) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: wrap width must be a scalar", value.Line)
	}
	parsed, err := ParseWrapWidth(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*w = parsed
	return nil
}
