package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresContent(t *testing.T) {
	_, err := New(Options{})
	require.ErrorIs(t, err, ErrMissingContent)

	for name, opts := range map[string]Options{
		"message only": {Message: "saved"},
		"title only":   {Title: "Saved"},
		"icon only":    {Icon: "✓"},
	} {
		tst, err := New(opts)
		require.NoError(t, err, name)
		assert.NotZero(t, tst.ID(), name)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a, err := New(Options{Message: "one"})
	require.NoError(t, err)
	b, err := New(Options{Message: "two"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestToast_CompleteRunsOnce(t *testing.T) {
	var causes []DismissCause
	tst, err := New(Options{
		Message:   "done",
		OnDismiss: func(c DismissCause) { causes = append(causes, c) },
	})
	require.NoError(t, err)

	tst.complete(CauseTapped)
	tst.complete(CauseTimeout)
	tst.complete(CauseHidden)

	require.Len(t, causes, 1)
	assert.Equal(t, CauseTapped, causes[0])
}

func TestToast_CompleteWithoutCallback(t *testing.T) {
	tst, err := New(Options{Message: "done"})
	require.NoError(t, err)
	assert.NotPanics(t, func() { tst.complete(CauseTimeout) })
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestDismissCause_String(t *testing.T) {
	assert.Equal(t, "timeout", CauseTimeout.String())
	assert.Equal(t, "tapped", CauseTapped.String())
	assert.Equal(t, "hidden", CauseHidden.String())
	assert.Equal(t, "unknown", DismissCause(42).String())
}

func TestLevelHelpers(t *testing.T) {
	assert.Equal(t, LevelInfo, Info("m").Level)
	assert.Equal(t, LevelSuccess, Success("m").Level)
	assert.Equal(t, LevelWarning, Warning("m").Level)
	assert.Equal(t, LevelError, Error("m").Level)
	assert.Equal(t, "m", Error("m").Message)
}
