package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-goalie/config"
	"github.com/lixenwraith/super-goalie/engine"
	"github.com/lixenwraith/super-goalie/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := range w {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestView_ProjectMirrorsLateral(t *testing.T) {
	v := View{Cols: 20, Rows: 10, MinX: -10, MaxX: 10, MinZ: 0, MaxZ: 10}

	col, row, ok := v.Project(vmath.Vec3F{X: 9.5, Z: 0.5})
	require.True(t, ok)
	assert.Equal(t, 0, col, "goal-local +X is on the shooter's left")
	assert.Equal(t, 0, row)

	col, row, ok = v.Project(vmath.Vec3F{X: -9.5, Z: 9.5})
	require.True(t, ok)
	assert.Equal(t, 19, col)
	assert.Equal(t, 9, row)

	_, _, ok = v.Project(vmath.Vec3F{X: 11})
	assert.False(t, ok)
	_, _, ok = v.Project(vmath.Vec3F{Z: 10})
	assert.False(t, ok)
	_, _, ok = View{}.Project(vmath.Vec3F{})
	assert.False(t, ok)
}

func TestFrontView_Project(t *testing.T) {
	v := FrontView{X: 5, Y: 2, Cols: 10, Rows: 5, MinX: -5, MaxX: 5, MaxY: 5}

	col, row, ok := v.Project(vmath.Vec3F{X: 0, Y: 4.9})
	require.True(t, ok)
	assert.Equal(t, 10, col)
	assert.Equal(t, 2, row)

	col, row, ok = v.Project(vmath.Vec3F{X: 4.9, Y: 0.1})
	require.True(t, ok)
	assert.Equal(t, 5, col)
	assert.Equal(t, 6, row)

	_, _, ok = v.Project(vmath.Vec3F{Y: 6})
	assert.False(t, ok)
}

func TestBlend(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	assert.Equal(t, a, a.Blend(b, 0))
	assert.Equal(t, b, a.Blend(b, 1))
	assert.Equal(t, RGB{100, 50, 25}, a.Blend(b, 0.5))
}

func TestKeeperColor(t *testing.T) {
	assert.Equal(t, RgbKeeperDive, keeperColor("InterceptShot"))
	assert.Equal(t, RgbKeeperIdle, keeperColor("Idle"))
	assert.Equal(t, RgbKeeperIdle, keeperColor("unknown"))
}

func TestTerminalRenderer_DrawsScene(t *testing.T) {
	world, err := engine.NewWorld(config.Default(), engine.Options{})
	require.NoError(t, err)

	const w, h = 100, 30
	screen := newScreen(t, w, h)
	r := NewTerminalRenderer(screen)
	aim := vmath.Vec3F{X: 1, Y: 1}
	r.RenderFrame(world, &aim)

	goal := world.Goal()
	col, row, ok := r.pitch.Project(goal.Transform.InverseTransformPoint(world.Keeper().Position()))
	require.True(t, ok)
	ch, _, _, _ := screen.GetContent(col, row)
	assert.Equal(t, 'K', ch)

	col, row, ok = r.pitch.Project(goal.Transform.InverseTransformPoint(world.Ball().Position()))
	require.True(t, ok)
	ch, _, _, _ = screen.GetContent(col, row)
	assert.Equal(t, 'o', ch)

	col, row, ok = r.front.Project(aim)
	require.True(t, ok)
	ch, _, _, _ = screen.GetContent(col, row)
	assert.Equal(t, '×', ch)

	assert.Contains(t, rowText(screen, 0, w), "A 0 - 0 B")
	assert.Contains(t, rowText(screen, h-1, w), "Idle")
	assert.Contains(t, rowText(screen, 1, w), "GOAL MOUTH")
}

func TestTerminalRenderer_ShowsPauseAndResize(t *testing.T) {
	world, err := engine.NewWorld(config.Default(), engine.Options{})
	require.NoError(t, err)
	world.HUD().Paused.Store(true)

	screen := newScreen(t, 100, 30)
	r := NewTerminalRenderer(screen)
	r.RenderFrame(world, nil)
	assert.Contains(t, rowText(screen, 29, 100), "PAUSED")

	screen.SetSize(70, 20)
	r.Resize()
	r.RenderFrame(world, nil)
	assert.Equal(t, 70-panelWidth, r.pitch.Cols)
	assert.Equal(t, 18, r.pitch.Rows)
}

func TestTerminalRenderer_StatusBarReadsHUD(t *testing.T) {
	world, err := engine.NewWorld(config.Default(), engine.Options{})
	require.NoError(t, err)
	hud := world.HUD()
	hud.KeeperState.Store("InterceptShot")
	hud.BallSpeed.Set(12.34)
	hud.Outcome.Store("Saved")

	const w, h = 120, 30
	screen := newScreen(t, w, h)
	NewTerminalRenderer(screen).RenderFrame(world, nil)

	bar := rowText(screen, h-1, w)
	assert.Contains(t, bar, "keeper InterceptShot")
	assert.Contains(t, bar, "ball  12.3 m/s")
	assert.Contains(t, bar, "last Saved")
}
