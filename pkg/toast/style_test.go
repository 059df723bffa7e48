package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle_NormalizedClampsPercentages(t *testing.T) {
	tests := []struct {
		name       string
		in         Style
		wantWidth  float64
		wantHeight float64
	}{
		{"above one", Style{MaxWidthPercent: 1.4, MaxHeightPercent: 2}, 1, 1},
		{"below zero", Style{MaxWidthPercent: -0.2, MaxHeightPercent: -3}, 0, 0},
		{"in range", Style{MaxWidthPercent: 0.5, MaxHeightPercent: 0.25}, 0.5, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			assert.Equal(t, tt.wantWidth, got.MaxWidthPercent)
			assert.Equal(t, tt.wantHeight, got.MaxHeightPercent)
		})
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, 0.8, s.MaxWidthPercent)
	assert.Equal(t, 0.8, s.MaxHeightPercent)
	assert.True(t, s.Title.GetBold())
}

func TestStyleFor_AccentsDiffer(t *testing.T) {
	info := StyleFor(LevelInfo)
	errs := StyleFor(LevelError)
	assert.NotEqual(t,
		info.Box.GetBorderTopForeground(),
		errs.Box.GetBorderTopForeground())
}

func TestConfig_StyleForPrecedence(t *testing.T) {
	base := DefaultStyle()
	base.MaxWidthPercent = 0.5
	levelOnly := DefaultStyle()
	levelOnly.MaxWidthPercent = 0.25

	cfg := DefaultConfig()
	cfg.Style = &base
	cfg.LevelStyles = map[Level]Style{LevelError: levelOnly}

	assert.Equal(t, 0.25, cfg.styleFor(LevelError).MaxWidthPercent)
	assert.Equal(t, 0.5, cfg.styleFor(LevelInfo).MaxWidthPercent)

	cfg.Style = nil
	assert.Equal(t, 0.8, cfg.styleFor(LevelInfo).MaxWidthPercent)
}

func TestConfig_StyleForNormalizes(t *testing.T) {
	wild := DefaultStyle()
	wild.MaxWidthPercent = 7

	cfg := DefaultConfig()
	cfg.LevelStyles = map[Level]Style{LevelInfo: wild}

	assert.Equal(t, 1.0, cfg.styleFor(LevelInfo).MaxWidthPercent)
}
