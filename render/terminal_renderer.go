package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/super-goalie/engine"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/match"
	"github.com/lixenwraith/super-goalie/vmath"
)

const (
	panelWidth = 26
	frontRows  = 6
	// pitch margin around the goal and behind the penalty spot (m)
	sideMargin = 4.0
	backMargin = 2.0
)

// TerminalRenderer draws the penalty scene top-down with a goal-mouth panel
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	pitch View
	front FrontView
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize recomputes the layout from the screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// layout fits the views to the goal and screen
func (r *TerminalRenderer) layout(w *engine.World) {
	cfg := w.Config()
	hw := cfg.Goal.Width/2 + sideMargin

	pitchCols := max(r.width-panelWidth, 1)
	r.pitch = View{
		X: 0, Y: 1, Cols: pitchCols, Rows: max(r.height-2, 1),
		MinX: -hw, MaxX: hw,
		MinZ: -cfg.Goal.Depth - 0.5, MaxZ: cfg.Goal.PenaltyDistance + backMargin,
	}
	fw := cfg.Goal.Width/2 + 1
	r.front = FrontView{
		X: pitchCols + 1, Y: 2, Cols: panelWidth - 2, Rows: frontRows,
		MinX: -fw, MaxX: fw, MaxY: cfg.Goal.Height + 0.6,
	}
}

// RenderFrame draws one frame; aim is the goal-local aim cursor, nil to hide it
func (r *TerminalRenderer) RenderFrame(w *engine.World, aim *vmath.Vec3F) {
	r.screen.Clear()
	r.layout(w)
	base := tcell.StyleDefault.Background(RgbStatusBg.Tcell()).Foreground(RgbStatusBar.Tcell())

	r.drawPitch(w)
	r.drawPanel(w, aim, base)
	r.drawScoreLine(w, base)
	r.drawStatusBar(w, base)

	r.screen.Show()
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style)
	}
}

func (r *TerminalRenderer) drawPitch(w *engine.World) {
	v := r.pitch
	goal := w.Goal()
	cfg := w.Config()

	// Mowed stripes every two metres
	for row := v.Y; row < v.Y+v.Rows; row++ {
		z := v.MinZ + (float64(row-v.Y)+0.5)/float64(v.Rows)*(v.MaxZ-v.MinZ)
		bg := RgbPitch
		if int((z+100)/2)%2 == 1 {
			bg = RgbPitchDark
		}
		style := tcell.StyleDefault.Background(bg.Tcell())
		for col := v.X; col < v.X+v.Cols; col++ {
			r.set(col, row, ' ', style)
		}
	}

	line := tcell.StyleDefault.Background(RgbPitch.Tcell()).Foreground(RgbLine.Tcell())
	hw := cfg.Goal.Width / 2

	// Goal line across the whole view
	for x := v.MinX; x < v.MaxX; x += (v.MaxX - v.MinX) / float64(v.Cols) {
		if col, row, ok := v.Project(vmath.Vec3F{X: x}); ok {
			r.set(col, row, '─', line)
		}
	}

	// Net behind the line
	net := tcell.StyleDefault.Background(RgbPitchDark.Tcell()).Foreground(RgbNet.Tcell())
	stepX := (v.MaxX - v.MinX) / float64(v.Cols)
	stepZ := (v.MaxZ - v.MinZ) / float64(v.Rows)
	for z := -stepZ; z > -cfg.Goal.Depth; z -= stepZ {
		for x := -hw; x <= hw; x += stepX {
			if col, row, ok := v.Project(vmath.Vec3F{X: x, Z: z}); ok {
				r.set(col, row, '░', net)
			}
		}
	}

	post := line.Foreground(RgbPost.Tcell())
	for _, x := range []float64{-hw, hw} {
		if col, row, ok := v.Project(vmath.Vec3F{X: x}); ok {
			r.set(col, row, '█', post)
		}
	}

	if col, row, ok := v.Project(goal.Transform.InverseTransformPoint(cfg.PenaltySpot())); ok {
		r.set(col, row, '·', line)
	}

	// Keeper, then the ball on top
	keeper := w.Keeper()
	kc := keeperColor(keeper.StateName())
	if col, row, ok := v.Project(goal.Transform.InverseTransformPoint(keeper.Position())); ok {
		glyph := 'K'
		if keeper.RootOffset() > 0.05 {
			glyph = 'k'
		}
		r.set(col, row, glyph, tcell.StyleDefault.Background(kc.Tcell()).Foreground(RGB{}.Tcell()).Bold(true))
	}

	ball := w.Ball()
	bl := goal.Transform.InverseTransformPoint(ball.Position())
	if col, row, ok := v.Project(bl); ok {
		lift := vmath.Clamp01((bl.Y - ball.Radius) / cfg.Goal.Height)
		color := RgbBall.Blend(RgbBallHigh, lift)
		glyph := 'o'
		if lift > 0.25 {
			glyph = 'O'
		}
		r.set(col, row, glyph, tcell.StyleDefault.Background(RgbPitch.Tcell()).Foreground(color.Tcell()).Bold(true))
	}
}

func (r *TerminalRenderer) drawPanel(w *engine.World, aim *vmath.Vec3F, base tcell.Style) {
	x0 := r.pitch.X + r.pitch.Cols
	for row := 0; row < r.height; row++ {
		for col := x0; col < r.width; col++ {
			r.set(col, row, ' ', base)
		}
	}
	r.text(x0+1, 1, "GOAL MOUTH", base.Bold(true))

	f := r.front
	cfg := w.Config()
	hw, h := cfg.Goal.Width/2, cfg.Goal.Height
	frame := base.Foreground(RgbPost.Tcell())

	for y := 0.05; y <= h; y += f.MaxY / float64(f.Rows) {
		for _, x := range []float64{-hw, hw} {
			if col, row, ok := f.Project(vmath.Vec3F{X: x, Y: y}); ok {
				r.set(col, row, '│', frame)
			}
		}
	}
	for x := -hw; x <= hw; x += (f.MaxX - f.MinX) / float64(f.Cols) {
		if col, row, ok := f.Project(vmath.Vec3F{X: x, Y: h}); ok {
			r.set(col, row, '─', frame)
		}
	}

	if aim != nil {
		if col, row, ok := f.Project(*aim); ok {
			r.set(col, row, '×', base.Foreground(RgbAim.Tcell()).Bold(true))
		}
	}

	ball := w.Ball()
	bl := w.Goal().Transform.InverseTransformPoint(ball.Position())
	if bl.Z < cfg.Goal.PenaltyDistance-0.5 {
		if col, row, ok := f.Project(bl); ok {
			r.set(col, row, 'o', base.Foreground(RgbBall.Tcell()).Bold(true))
		}
	}

	board := w.Scoreboard()
	y := f.Y + f.Rows + 2
	for _, s := range []int{match.ShooterA, match.ShooterB} {
		label := fmt.Sprintf("%c ", 'A'+rune(s))
		r.text(x0+1, y, label, base.Bold(s == board.Shooter() && !board.GameOver()))
		for i, o := range board.Results(s) {
			glyph, color := outcomeGlyph(o)
			r.set(x0+3+2*i, y, glyph, base.Foreground(color.Tcell()))
		}
		for i := len(board.Results(s)); i < board.ShotsPerPlayer(); i++ {
			r.set(x0+3+2*i, y, '-', base)
		}
		y++
	}
}

func outcomeGlyph(o events.ShotOutcome) (rune, RGB) {
	switch o {
	case events.OutcomeScored:
		return '●', RgbScored
	case events.OutcomeSaved:
		return '○', RgbSaved
	default:
		return '×', RgbMissed
	}
}

func (r *TerminalRenderer) drawScoreLine(w *engine.World, base tcell.Style) {
	hud := w.HUD()
	line := fmt.Sprintf(" A %d - %d B   shooter %c  kick %d",
		hud.GoalsA.Load(), hud.GoalsB.Load(), 'A'+rune(hud.Shooter.Load()), hud.Kick.Load())
	if hud.GameOver.Load() {
		line = fmt.Sprintf(" A %d - %d B   FULL TIME", hud.GoalsA.Load(), hud.GoalsB.Load())
	}
	r.text(0, 0, pad(line, r.pitch.Cols), base.Bold(true))
}

func (r *TerminalRenderer) drawStatusBar(w *engine.World, base tcell.Style) {
	hud := w.HUD()
	state := hud.KeeperState.Load()
	line := fmt.Sprintf(" keeper %-13s ball %5.1f m/s  last %-7s",
		state, hud.BallSpeed.Get(), hud.Outcome.Load())
	if hud.Paused.Load() {
		line += "  PAUSED"
	}
	line += "   [space] shoot [arrows] aim [p] pause [q] quit"
	r.text(0, r.height-1, pad(line, r.width), base.Foreground(keeperColor(state).Tcell()))
}

func pad(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}
