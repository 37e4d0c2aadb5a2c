// Package render draws environment observations, either to a terminal window
// through tcell or to an in-memory RGB frame.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a render mode outside the recognised set.
var ErrUnknownMode = errors.New("render: unknown mode")

// Mode selects what rendering does.
type Mode int

const (
	// ModeNone disables rendering.
	ModeNone Mode = iota
	// ModeHuman draws to a terminal window, paced to a fixed frame rate.
	ModeHuman
	// ModeRGBArray returns a pixel frame.
	ModeRGBArray
)

// Modes lists the modes that produce output, as advertised in environment metadata.
var Modes = []Mode{ModeHuman, ModeRGBArray}

// ParseMode converts a configuration string into a Mode.
// The empty string and "none" both mean ModeNone.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return ModeNone, nil
	case "human":
		return ModeHuman, nil
	case "rgb_array":
		return ModeRGBArray, nil
	default:
		return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeHuman:
		return "human"
	case ModeRGBArray:
		return "rgb_array"
	default:
		return "unknown"
	}
}
