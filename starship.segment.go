package starship

import (
	"strings"
)

// Segment is the engine's output unit: literal text plus an opaque style
// spec. An empty Style means the segment is unstyled. Ordering within a
// segment sequence matches source order of the format string.
type Segment struct {
	Text  string
	Style string
}

// Plain returns the segment text without any styling applied
func (s Segment) Plain() string {
	return s.Text
}

// Render translates the segment's style spec to terminal attributes and
// returns the ANSI-styled text. An invalid style spec is a resolution error.
func (s Segment) Render() (string, error) {
	if s.Style == "" {
		return s.Text, nil
	}
	style, err := ParseStyle(s.Style)
	if err != nil {
		return "", err
	}
	return style.Render(s.Text), nil
}

// RenderSegments renders a segment sequence into a single ANSI-styled string
func RenderSegments(segments []Segment) (string, error) {
	var sb strings.Builder
	for _, seg := range segments {
		rendered, err := seg.Render()
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}

// PlainSegments concatenates segment text without styling, for tests and
// terminals without color support
func PlainSegments(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}
