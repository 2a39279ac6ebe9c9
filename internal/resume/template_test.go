package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteSliceUsableOnCallResults(t *testing.T) {
	// Slice must work when chained onto a function result, which is how
	// templates are assembled throughout the module.
	colors := DefaultPalette().Slice()
	require.Len(t, colors, 2)
	assert.Equal(t, "#2563EB", colors[0])
	assert.Equal(t, "#DBEAFE", colors[1])

	assert.Equal(t, []string{"#047857", "#D1FAE5"}, ResolvePalette([]string{"#047857"}).Slice())
}

func TestPaletteSliceDoesNotAliasPalette(t *testing.T) {
	p := DefaultPalette()
	s := p.Slice()
	s[0] = "#000000"
	assert.Equal(t, "#2563EB", DefaultPalette().Colors[0])
}

func TestResolvePaletteFallsBackToCustom(t *testing.T) {
	p := ResolvePalette([]string{"#123456", "#654321"})
	assert.Equal(t, "Custom", p.Name)
	assert.Equal(t, []string{"#123456", "#654321"}, p.Slice())

	assert.Equal(t, DefaultPalette(), ResolvePalette(nil))
}
