// Package components defines ECS components for the arena simulation.
package components

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes organisms by where their heading comes from.
type Kind uint8

const (
	KindPlayer Kind = iota // heading from pointer input
	KindBot                // heading from the bot policy
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBot:
		return "bot"
	}
	return "unknown"
}

// Color is an 8-bit RGBA colour. Presentation only.
type Color struct {
	R, G, B, A uint8
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
