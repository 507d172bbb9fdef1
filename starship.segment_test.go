package starship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	t.Run("plain strips nothing", func(t *testing.T) {
		seg := Segment{Text: "via ", Style: "bold"}
		assert.Equal(t, "via ", seg.Plain())
	})

	t.Run("unstyled render is the raw text", func(t *testing.T) {
		seg := Segment{Text: "via "}
		out, err := seg.Render()
		require.NoError(t, err)
		assert.Equal(t, "via ", out)
	})

	t.Run("styled render keeps the text", func(t *testing.T) {
		seg := Segment{Text: "v5.26.1", Style: "bold yellow"}
		out, err := seg.Render()
		require.NoError(t, err)
		assert.Contains(t, out, "v5.26.1")
	})

	t.Run("invalid style spec fails render", func(t *testing.T) {
		seg := Segment{Text: "x", Style: "bold nonsense"}
		_, err := seg.Render()
		require.Error(t, err)
	})
}

func TestRenderSegments(t *testing.T) {
	segments := []Segment{
		{Text: "on "},
		{Text: "dev", Style: "bold yellow"},
		{Text: " "},
	}

	out, err := RenderSegments(segments)
	require.NoError(t, err)
	assert.Contains(t, out, "on ")
	assert.Contains(t, out, "dev")

	_, err = RenderSegments([]Segment{{Text: "x", Style: "sparkly"}})
	require.Error(t, err)
}

func TestPlainSegments(t *testing.T) {
	segments := []Segment{
		{Text: "via "},
		{Text: "🐪 ", Style: "bold 149"},
		{Text: "v5.26.1", Style: "bold 149"},
	}
	assert.Equal(t, "via 🐪 v5.26.1", PlainSegments(segments))
	assert.Equal(t, "", PlainSegments(nil))
}
