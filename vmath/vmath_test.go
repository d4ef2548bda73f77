package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrthPoint_Orthogonality(t *testing.T) {
	cases := []struct {
		name         string
		from, to, pt Vec3F
	}{
		{"axis aligned", Vec3F{0, 0, 0}, Vec3F{0, 0, 10}, Vec3F{3, 0, 4}},
		{"diagonal", Vec3F{-5, 0, 20}, Vec3F{1, 0, 0}, Vec3F{0, 0, 3}},
		{"behind origin", Vec3F{0, 0, 0}, Vec3F{1, 0, 1}, Vec3F{-4, 0, -6}},
		{"vertical component", Vec3F{0, 1, 0}, Vec3F{2, 3, 4}, Vec3F{7, -1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := OrthPoint(tc.from, tc.to, tc.pt)
			dir := V3FSub(tc.to, tc.from)
			assert.InDelta(t, 0, V3FDot(V3FSub(q, tc.pt), dir), 1e-9)

			// Q lies on the line: (Q-A) is parallel to (B-A)
			qa := V3FSub(q, tc.from)
			cross := Vec3F{
				qa.Y*dir.Z - qa.Z*dir.Y,
				qa.Z*dir.X - qa.X*dir.Z,
				qa.X*dir.Y - qa.Y*dir.X,
			}
			assert.InDelta(t, 0, V3FMag(cross), 1e-9)
		})
	}
}

func TestOrthPoint_DegenerateLine(t *testing.T) {
	a := Vec3F{1, 2, 3}
	assert.Equal(t, a, OrthPoint(a, a, Vec3F{9, 9, 9}))
	assert.Equal(t, a, ClosestPointOnSegment(a, a, Vec3F{9, 9, 9}))
}

func TestClosestPointOnSegment_Clamps(t *testing.T) {
	a, b := Vec3F{0, 0, 0}, Vec3F{0, 0, 10}
	assert.Equal(t, b, ClosestPointOnSegment(a, b, Vec3F{1, 0, 50}))
	assert.Equal(t, a, ClosestPointOnSegment(a, b, Vec3F{1, 0, -50}))
}

func TestTransform_RoundTrip(t *testing.T) {
	tr := Transform{Position: Vec3F{4, 0, -2}, Yaw: 0.7}
	p := Vec3F{1.5, 2, -3}
	local := tr.InverseTransformPoint(p)
	back := tr.TransformPoint(local)
	assert.True(t, V3FApproxEqual(p, back, 1e-9), "got %+v", back)

	d := Vec3F{0, 1, -1}
	assert.True(t, V3FApproxEqual(d, tr.InverseTransformDirection(tr.TransformDirection(d)), 1e-9))
}

func TestTransform_Axes(t *testing.T) {
	tr := Transform{Yaw: math.Pi}
	assert.True(t, V3FApproxEqual(Vec3F{0, 0, -1}, tr.Forward(), 1e-9))
	assert.True(t, V3FApproxEqual(Vec3F{-1, 0, 0}, tr.Right(), 1e-9))
	assert.InDelta(t, 0, V3FDot(tr.Forward(), tr.Right()), 1e-12)

	// A point ahead of a keeper facing -Z has positive local z
	local := tr.InverseTransformPoint(Vec3F{0, 1, -5})
	assert.InDelta(t, 5, local.Z, 1e-9)
	assert.InDelta(t, 1, local.Y, 1e-9)
}

func TestLookYaw(t *testing.T) {
	assert.InDelta(t, 0, LookYaw(V3FZero, Vec3F{0, 0, 5}, 1), 1e-12)
	assert.InDelta(t, math.Pi/2, LookYaw(V3FZero, Vec3F{3, 9, 0}, 1), 1e-12)
	assert.Equal(t, 1.0, LookYaw(V3FZero, Vec3F{0, 4, 0}, 1))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(5, -2, 2))
	assert.Equal(t, -2.0, Clamp(-5, -2, 2))
	assert.Equal(t, 0.5, Clamp01(0.5))
	assert.Equal(t, 10.0, Lerp(0, 10, 3))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, Vec3F{}, V3FNormalize(Vec3F{}))
	assert.InDelta(t, 1, V3FMag(V3FNormalize(Vec3F{3, 4, 12})), 1e-12)
	assert.InDelta(t, 2, V3FMag(V3FClampMagnitude(Vec3F{10, 0, 0}, 2)), 1e-12)
}

func TestFastRand_Deterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}

	r := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
		v := r.Range(-0.5, 0.5)
		require.GreaterOrEqual(t, v, -0.5)
		require.Less(t, v, 0.5)
	}
	assert.Equal(t, 3.0, r.Range(3, 3))
}
