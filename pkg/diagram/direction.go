package diagram

import (
	"strings"

	"github.com/diagraph/diagraph/pkg/errors"
)

// Direction controls the layout flow hint passed to the render backend.
// It has no effect on model correctness, only on visual arrangement.
type Direction string

// Layout directions, named after Graphviz rankdir values.
const (
	TopToBottom Direction = "TB"
	LeftToRight Direction = "LR"
	BottomToTop Direction = "BT"
	RightToLeft Direction = "RL"
)

// DefaultDirection is used when no direction is specified.
const DefaultDirection = TopToBottom

// directionAliases maps accepted spellings to canonical directions.
var directionAliases = map[string]Direction{
	"tb": TopToBottom, "top-to-bottom": TopToBottom,
	"lr": LeftToRight, "left-to-right": LeftToRight,
	"bt": BottomToTop, "bottom-to-top": BottomToTop,
	"rl": RightToLeft, "right-to-left": RightToLeft,
}

// ParseDirection converts a string to a Direction. It accepts the short
// Graphviz forms ("TB", "LR", "BT", "RL") and the long forms
// ("top-to-bottom", ...), case-insensitively. An empty string parses to
// DefaultDirection.
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return DefaultDirection, nil
	}
	if d, ok := directionAliases[strings.ToLower(s)]; ok {
		return d, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection,
		"invalid direction: %q (must be one of TB, LR, BT, RL or top-to-bottom, left-to-right, bottom-to-top, right-to-left)", s)
}

// Rankdir returns the Graphviz rankdir attribute value.
func (d Direction) Rankdir() string { return string(d) }
