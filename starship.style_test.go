package starship

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	valid := []struct {
		name string
		spec string
	}{
		{name: "empty spec", spec: ""},
		{name: "single keyword", spec: "bold"},
		{name: "all keywords", spec: "bold italic underline dimmed inverted blink strikethrough"},
		{name: "named color", spec: "yellow"},
		{name: "bright color", spec: "bright-green"},
		{name: "fg prefix", spec: "fg:blue"},
		{name: "bg prefix", spec: "bg:red"},
		{name: "ansi index", spec: "149"},
		{name: "hex color", spec: "#af87ff"},
		{name: "uppercase hex", spec: "#AF87FF"},
		{name: "mixed spec", spec: "bold fg:#af87ff bg:blue dimmed"},
		{name: "none", spec: "none"},
		{name: "none after attributes", spec: "bold none"},
	}

	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStyle(tt.spec)
			assert.NoError(t, err)
		})
	}

	invalid := []struct {
		name string
		spec string
	}{
		{name: "unknown keyword", spec: "sparkly"},
		{name: "unknown bright name", spec: "bright-mauve"},
		{name: "ansi index out of range", spec: "256"},
		{name: "negative ansi index", spec: "-1"},
		{name: "short hex", spec: "#fff"},
		{name: "non-hex digits", spec: "#zzzzzz"},
		{name: "bad color behind fg prefix", spec: "fg:mauve"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStyle(tt.spec)
			require.Error(t, err)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))
			code, ok := customErr.GetMetadata(MetaKeyCode)
			require.True(t, ok)
			assert.Equal(t, ErrCodeStyle, code)
		})
	}
}

func TestParseStyle_NoneWins(t *testing.T) {
	// none yields an attribute-free style even when other tokens precede it
	style, err := ParseStyle("bold red none")
	require.NoError(t, err)
	assert.Equal(t, "text", style.Render("text"))
}

func TestValidateStyle(t *testing.T) {
	assert.NoError(t, ValidateStyle("bold yellow"))
	assert.NoError(t, ValidateStyle(""))
	assert.Error(t, ValidateStyle("bold nonsense"))
}
