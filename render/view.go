package render

import (
	"math"

	"github.com/lixenwraith/super-goalie/vmath"
)

// View maps goal-local ground coordinates onto a cell rectangle
// The goal sits at the top and the pitch extends downward, seen from the shooter,
// so goal-local +X lands on the left
type View struct {
	X, Y, Cols, Rows int

	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Project returns the cell for a goal-local point; ok is false outside the view
func (v View) Project(local vmath.Vec3F) (col, row int, ok bool) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0, false
	}
	fx := (v.MaxX - local.X) / (v.MaxX - v.MinX)
	fz := (local.Z - v.MinZ) / (v.MaxZ - v.MinZ)
	if fx < 0 || fx >= 1 || fz < 0 || fz >= 1 {
		return 0, 0, false
	}
	return v.X + int(math.Floor(fx*float64(v.Cols))), v.Y + int(math.Floor(fz*float64(v.Rows))), true
}

// FrontView maps goal-local mouth coordinates (X lateral, Y height) onto cells,
// again from the shooter's side
type FrontView struct {
	X, Y, Cols, Rows int

	MinX, MaxX float64
	MaxY       float64
}

func (v FrontView) Project(local vmath.Vec3F) (col, row int, ok bool) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0, false
	}
	fx := (v.MaxX - local.X) / (v.MaxX - v.MinX)
	fy := (v.MaxY - local.Y) / v.MaxY
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	return v.X + int(math.Floor(fx*float64(v.Cols))), v.Y + int(math.Floor(fy*float64(v.Rows))), true
}
