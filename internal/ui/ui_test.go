package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelPadsToWidestVisibleLine(t *testing.T) {
	SetTheme("classic")
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })

	var buf bytes.Buffer
	Panel(&buf, []string{C(Current().Title, "Saved Plans"), "ab"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "┌─────────────┐", lines[0])
	assert.Equal(t, "│ ab          │", lines[2])
	assert.Equal(t, "└─────────────┘", lines[3])
}

func TestMonoThemeHasNoColor(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })

	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "nope")
	assert.Equal(t, "ok saved\nerror: nope\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Verde V...", Truncate("Verde Vertical Farms", 10))
	assert.Equal(t, "ééé...", Truncate("éééééééé", 6))
}
