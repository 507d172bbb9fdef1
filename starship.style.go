package starship

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style keyword constants
const (
	StyleKeywordBold          = "bold"
	StyleKeywordItalic        = "italic"
	StyleKeywordUnderline     = "underline"
	StyleKeywordDimmed        = "dimmed"
	StyleKeywordInverted      = "inverted"
	StyleKeywordBlink         = "blink"
	StyleKeywordStrikethrough = "strikethrough"
	StyleKeywordNone          = "none"
)

// Color token prefixes
const (
	StylePrefixFg     = "fg:"
	StylePrefixBg     = "bg:"
	StylePrefixBright = "bright-"
	StylePrefixHex    = "#"
)

// namedColors maps the base color names to their ANSI palette index.
// bright- variants sit eight entries above.
var namedColors = map[string]int{
	"black":  0,
	"red":    1,
	"green":  2,
	"yellow": 3,
	"blue":   4,
	"purple": 5,
	"cyan":   6,
	"white":  7,
}

// ParseStyle translates a whitespace-separated style spec such as
// "bold yellow" or "fg:#af87ff bg:blue dimmed" into a lipgloss style.
// Unknown keywords are a resolution error, not a parse error: the format
// grammar does not know which keywords the terminal collaborator accepts.
func ParseStyle(spec string) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	for _, token := range strings.Fields(spec) {
		switch token {
		case StyleKeywordNone:
			// none cancels all attributes
			return lipgloss.NewStyle(), nil
		case StyleKeywordBold:
			style = style.Bold(true)
		case StyleKeywordItalic:
			style = style.Italic(true)
		case StyleKeywordUnderline:
			style = style.Underline(true)
		case StyleKeywordDimmed:
			style = style.Faint(true)
		case StyleKeywordInverted:
			style = style.Reverse(true)
		case StyleKeywordBlink:
			style = style.Blink(true)
		case StyleKeywordStrikethrough:
			style = style.Strikethrough(true)
		default:
			var err error
			style, err = applyColorToken(style, token)
			if err != nil {
				return lipgloss.NewStyle(), err
			}
		}
	}

	return style, nil
}

// applyColorToken applies a color token, honoring fg:/bg: prefixes
func applyColorToken(style lipgloss.Style, token string) (lipgloss.Style, error) {
	background := false
	value := token

	switch {
	case strings.HasPrefix(token, StylePrefixFg):
		value = strings.TrimPrefix(token, StylePrefixFg)
	case strings.HasPrefix(token, StylePrefixBg):
		value = strings.TrimPrefix(token, StylePrefixBg)
		background = true
	}

	color, err := parseColor(value)
	if err != nil {
		return style, err
	}

	if background {
		return style.Background(color), nil
	}
	return style.Foreground(color), nil
}

// parseColor resolves a color value: a named color, a bright- variant, an
// ANSI 0-255 index, or a #rrggbb hex triplet.
func parseColor(value string) (lipgloss.Color, error) {
	if strings.HasPrefix(value, StylePrefixHex) {
		if !isHexColor(value) {
			return lipgloss.Color(""), NewStyleColorError(value)
		}
		return lipgloss.Color(value), nil
	}

	if idx, err := strconv.Atoi(value); err == nil {
		if idx < 0 || idx > 255 {
			return lipgloss.Color(""), NewStyleColorError(value)
		}
		return lipgloss.Color(value), nil
	}

	name := value
	offset := 0
	if strings.HasPrefix(name, StylePrefixBright) {
		name = strings.TrimPrefix(name, StylePrefixBright)
		offset = 8
	}

	idx, ok := namedColors[name]
	if !ok {
		return lipgloss.Color(""), NewStyleKeywordError(value)
	}
	return lipgloss.Color(strconv.Itoa(idx + offset)), nil
}

// isHexColor validates a #rrggbb triplet
func isHexColor(value string) bool {
	if len(value) != 7 {
		return false
	}
	for _, ch := range value[1:] {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}

// ValidateStyle checks a style spec without building a terminal style,
// used by modules to surface configuration mistakes as render errors.
func ValidateStyle(spec string) error {
	_, err := ParseStyle(spec)
	return err
}
