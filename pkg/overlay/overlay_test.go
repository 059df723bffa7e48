package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainBackground(rows, cols int) string {
	row := strings.Repeat(".", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

func TestComposite_EmptyOverlay(t *testing.T) {
	bg := plainBackground(3, 10)
	assert.Equal(t, bg, Composite("", bg, 2, 1))
}

func TestComposite_ReplacesCoveredCells(t *testing.T) {
	bg := plainBackground(5, 10)
	out := strings.Split(Composite("XX\nXX", bg, 3, 1), "\n")
	require.Len(t, out, 5)

	row := strings.Repeat(".", 10)
	assert.Equal(t, row, out[0])
	assert.Equal(t, row, out[3])
	assert.Equal(t, row, out[4])

	assert.Equal(t, "...XX.....", ansi.Strip(out[1]))
	assert.Equal(t, "...XX.....", ansi.Strip(out[2]))
}

func TestComposite_FlushEdges(t *testing.T) {
	bg := plainBackground(3, 10)

	out := strings.Split(Composite("LL", bg, 0, 0), "\n")
	assert.Equal(t, "LL........", ansi.Strip(out[0]))

	out = strings.Split(Composite("RR", bg, 8, 2), "\n")
	assert.Equal(t, "........RR", ansi.Strip(out[2]))
}

func TestComposite_PadsShortBackground(t *testing.T) {
	out := Composite("XX", "ab", 5, 0)
	assert.Equal(t, "ab   XX", ansi.Strip(out))
}

func TestComposite_GrowsFrame(t *testing.T) {
	bg := plainBackground(2, 10)
	out := strings.Split(Composite("XX\nXX", bg, 0, 3), "\n")
	require.Len(t, out, 5)
	assert.Equal(t, "XX", ansi.Strip(out[3]))
	assert.Equal(t, "XX", ansi.Strip(out[4]))
}

func TestComposite_KeepsOverlayStyling(t *testing.T) {
	box := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("ok")
	out := Composite(box, plainBackground(1, 10), 4, 0)
	assert.Contains(t, out, box)
}

func TestComposite_ClampsNegativeCoordinates(t *testing.T) {
	bg := plainBackground(2, 10)
	out := strings.Split(Composite("XX", bg, -3, -7), "\n")
	require.Len(t, out, 2)
	assert.Equal(t, "XX........", ansi.Strip(out[0]))
}

func TestComposite_WideOverlayExtendsRow(t *testing.T) {
	out := Composite("WIDEBOX", plainBackground(1, 4), 2, 0)
	assert.Equal(t, "..WIDEBOX", ansi.Strip(out))
}
