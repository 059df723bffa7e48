package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		want    Position
		wantErr bool
	}{
		{"top", PositionTop, false},
		{"TOP", PositionTop, false},
		{" Center ", PositionCenter, false},
		{"middle", PositionCenter, false},
		{"bottom", PositionBottom, false},
		{"left", PositionDefault, true},
		{"", PositionDefault, true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "default", PositionDefault.String())
	assert.Equal(t, "top", PositionTop.String())
	assert.Equal(t, "center", PositionCenter.String())
	assert.Equal(t, "bottom", PositionBottom.String())
}

func TestPlaceBox_Anchors(t *testing.T) {
	// 80x24 container, 20x3 box, no insets.
	x, y := placeBox(PositionTop, 80, 24, Insets{}, 0, 20, 3)
	assert.Equal(t, 30, x)
	assert.Equal(t, 0, y)

	x, y = placeBox(PositionCenter, 80, 24, Insets{}, 0, 20, 3)
	assert.Equal(t, 30, x)
	assert.Equal(t, 10, y)

	x, y = placeBox(PositionBottom, 80, 24, Insets{}, 0, 20, 3)
	assert.Equal(t, 30, x)
	assert.Equal(t, 21, y)
}

func TestPlaceBox_Insets(t *testing.T) {
	in := Insets{Top: 2, Bottom: 1, Left: 4, Right: 0}

	x, y := placeBox(PositionTop, 80, 24, in, 0, 20, 3)
	assert.Equal(t, 4+(76-20)/2, x)
	assert.Equal(t, 2, y)

	_, y = placeBox(PositionBottom, 80, 24, in, 0, 20, 3)
	assert.Equal(t, 24-1-3, y)

	_, y = placeBox(PositionCenter, 80, 24, in, 0, 20, 3)
	assert.Equal(t, 2+(21-3)/2, y)
}

func TestPlaceBox_StackOffset(t *testing.T) {
	// Offsets grow away from the anchored edge: down from the top,
	// up from the bottom.
	_, y := placeBox(PositionTop, 80, 24, Insets{}, 4, 20, 3)
	assert.Equal(t, 4, y)

	_, y = placeBox(PositionBottom, 80, 24, Insets{}, 4, 20, 3)
	assert.Equal(t, 17, y)

	_, y = placeBox(PositionCenter, 80, 24, Insets{}, 4, 20, 3)
	assert.Equal(t, 14, y)
}

func TestPlaceBox_ClampsOversizedBox(t *testing.T) {
	x, y := placeBox(PositionBottom, 10, 5, Insets{}, 0, 30, 8)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	// A huge offset cannot push the box out of the container.
	_, y = placeBox(PositionBottom, 80, 24, Insets{Top: 1}, 100, 20, 3)
	assert.Equal(t, 1, y)
	_, y = placeBox(PositionTop, 80, 24, Insets{Bottom: 2}, 100, 20, 3)
	assert.Equal(t, 24-2-3, y)
}

func TestPlaceAt(t *testing.T) {
	x, y := placeAt(40, 12, 80, 24, 10, 3)
	assert.Equal(t, 35, x)
	assert.Equal(t, 11, y)

	// Clamped at the container edges.
	x, y = placeAt(0, 0, 80, 24, 10, 3)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = placeAt(79, 23, 80, 24, 10, 3)
	assert.Equal(t, 70, x)
	assert.Equal(t, 21, y)
}

func TestRect_Contains(t *testing.T) {
	r := rect{x: 10, y: 5, w: 20, h: 3}
	assert.True(t, r.contains(10, 5))
	assert.True(t, r.contains(29, 7))
	assert.False(t, r.contains(30, 7))
	assert.False(t, r.contains(9, 5))
	assert.False(t, r.contains(15, 8))
}
