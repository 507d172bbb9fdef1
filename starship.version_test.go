package starship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		format   string
		expected string
	}{
		{name: "default format", raw: "5.26.1", format: "", expected: "v5.26.1"},
		{name: "raw placeholder", raw: "5.26.1", format: "${raw}", expected: "5.26.1"},
		{name: "component placeholders", raw: "5.26.1", format: "${major}.${minor}", expected: "5.26"},
		{name: "patch placeholder", raw: "0.38.1", format: "${patch}", expected: "1"},
		{name: "missing components", raw: "5", format: "${major}.${minor}.${patch}", expected: "5.."},
		{name: "v prefix stripped for components", raw: "v1.2.3", format: "${major}", expected: "1"},
		{name: "v prefix kept in raw", raw: "v1.2.3", format: "${raw}", expected: "v1.2.3"},
		{name: "surrounding whitespace trimmed", raw: "  5.26.1\n", format: "${raw}", expected: "5.26.1"},
		{name: "literal text preserved", raw: "5.26.1", format: "perl ${major}", expected: "perl 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatVersion(ModuleNamePerl, tt.raw, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatVersion_EmptyRaw(t *testing.T) {
	_, err := FormatVersion(ModuleNamePerl, "", "${raw}")
	require.Error(t, err)

	_, err = FormatVersion(ModuleNamePerl, "   \n", "${raw}")
	require.Error(t, err)
}
