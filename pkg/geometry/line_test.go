package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"geomcalc/pkg/geometry"
)

func TestNewLineRejectsIdenticalPoints(t *testing.T) {
	_, err := geometry.NewLine(pt(2, 3), pt(2, 3))
	require.ErrorIs(t, err, geometry.ErrLine)
}

func TestLineEquation(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 geometry.Point
		a, b   float64
		c      float64
		eq     string
	}{
		{name: "general", p1: pt(1, 2), p2: pt(3, 4), a: 2, b: -2, c: 2, eq: "2x - 2y + 2 = 0"},
		{name: "through origin", p1: pt(0, 0), p2: pt(1, 1), a: 1, b: -1, c: 0, eq: "x - y = 0"},
		{name: "vertical", p1: pt(2, 0), p2: pt(2, 5), a: 5, b: 0, c: -10, eq: "5x - 10 = 0"},
		{name: "horizontal", p1: pt(0, 3), p2: pt(4, 3), a: 0, b: -4, c: 12, eq: "-4y + 12 = 0"},
		{name: "negative unit", p1: pt(0, 1), p2: pt(0, 0), a: -1, b: 0, c: 0, eq: "-x = 0"},
		{name: "fractional", p1: pt(0, 0.5), p2: pt(1, 0), a: -0.5, b: -1, c: 0.5, eq: "-0.5x - y + 0.5 = 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := mustLine(t, tc.p1, tc.p2)
			a, b, c := l.Coefficients()
			require.Equal(t, tc.a, a)
			require.Equal(t, tc.b, b)
			require.Equal(t, tc.c, c)
			require.Equal(t, tc.eq, l.Equation())
		})
	}
}

func TestLineSlopeAndLength(t *testing.T) {
	l := mustLine(t, pt(0, 0), pt(3, 4))
	m, ok := l.Slope()
	require.True(t, ok)
	require.InDelta(t, 4.0/3, m, tol)
	require.InDelta(t, 5, l.Length(), tol)

	_, ok = mustLine(t, pt(1, 0), pt(1, 7)).Slope()
	require.False(t, ok, "vertical lines have no slope")

	s := l.Summary()
	require.Equal(t, pt(0, 0), s.Point1)
	require.Equal(t, pt(3, 4), s.Point2)
	require.Equal(t, "4x - 3y = 0", s.Equation)
	require.False(t, s.Vertical)
	require.InDelta(t, 5, s.Length, tol)
}

func TestLineContainsDefiningPoints(t *testing.T) {
	pairs := [][2]geometry.Point{
		{pt(0, 0), pt(1, 1)},
		{pt(-3.7, 2.2), pt(8.1, -4.4)},
		{pt(5, -1), pt(5, 9)},
		{pt(-2, 6), pt(11, 6)},
	}

	for _, pair := range pairs {
		l := mustLine(t, pair[0], pair[1])
		require.True(t, l.PointOnLine(pair[0]), "line %s", l.Equation())
		require.True(t, l.PointOnLine(pair[1]), "line %s", l.Equation())
	}

	require.False(t, mustLine(t, pt(0, 0), pt(1, 1)).PointOnLine(pt(1, 2)))
}

func TestLineParallelAndPerpendicular(t *testing.T) {
	diag := mustLine(t, pt(0, 0), pt(1, 1))
	diag2 := mustLine(t, pt(0, 2), pt(3, 5))
	anti := mustLine(t, pt(0, 2), pt(2, 0))
	vertical := mustLine(t, pt(1, 0), pt(1, 1))
	vertical2 := mustLine(t, pt(-4, 3), pt(-4, 9))
	horizontal := mustLine(t, pt(0, 5), pt(2, 5))
	steep := mustLine(t, pt(0, 0), pt(1, 2))
	shallow := mustLine(t, pt(0, 0), pt(2, -1))

	lines := []geometry.Line{diag, diag2, anti, vertical, vertical2, horizontal, steep, shallow}
	for _, l := range lines {
		require.True(t, l.IsParallel(l), "reflexive for %s", l.Equation())
		for _, o := range lines {
			require.Equal(t, l.IsParallel(o), o.IsParallel(l), "symmetric for %s and %s", l.Equation(), o.Equation())
			require.False(t, l.IsParallel(o) && l.IsPerpendicular(o), "%s and %s", l.Equation(), o.Equation())
		}
	}

	require.True(t, diag.IsParallel(diag2))
	require.True(t, vertical.IsParallel(vertical2))
	require.False(t, diag.IsParallel(anti))

	require.True(t, diag.IsPerpendicular(anti))
	require.True(t, vertical.IsPerpendicular(horizontal))
	require.True(t, horizontal.IsPerpendicular(vertical))
	require.True(t, steep.IsPerpendicular(shallow))
	require.False(t, vertical.IsPerpendicular(diag))
	require.False(t, vertical.IsPerpendicular(vertical2))
}

func TestLineAngleWith(t *testing.T) {
	diag := mustLine(t, pt(0, 0), pt(1, 1))
	anti := mustLine(t, pt(0, 2), pt(2, 0))
	horizontal := mustLine(t, pt(0, 5), pt(2, 5))
	vertical := mustLine(t, pt(1, 0), pt(1, 1))
	vertical2 := mustLine(t, pt(3, 0), pt(3, 1))

	require.InDelta(t, 45, diag.AngleWith(horizontal), tol)
	require.Equal(t, 90.0, diag.AngleWith(anti))
	require.Equal(t, 90.0, diag.AngleWith(vertical))
	require.Equal(t, 0.0, vertical.AngleWith(vertical2))
	require.InDelta(t, 0, diag.AngleWith(diag), tol)
	require.Equal(t, diag.AngleWith(horizontal), geometry.AngleBetweenLines(horizontal, diag))
}

func TestLineIntersection(t *testing.T) {
	cases := []struct {
		name string
		l1   geometry.Line
		l2   geometry.Line
		want geometry.Point
		ok   bool
	}{
		{
			name: "crossing diagonals",
			l1:   mustLine(t, pt(0, 0), pt(1, 1)),
			l2:   mustLine(t, pt(0, 2), pt(2, 0)),
			want: pt(1, 1),
			ok:   true,
		},
		{
			name: "vertical and horizontal",
			l1:   mustLine(t, pt(3, -1), pt(3, 4)),
			l2:   mustLine(t, pt(-2, 7), pt(5, 7)),
			want: pt(3, 7),
			ok:   true,
		},
		{
			name: "parallel",
			l1:   mustLine(t, pt(0, 0), pt(1, 1)),
			l2:   mustLine(t, pt(0, 1), pt(1, 2)),
		},
		{
			name: "both vertical",
			l1:   mustLine(t, pt(0, 0), pt(0, 1)),
			l2:   mustLine(t, pt(2, 0), pt(2, 1)),
		},
		{
			name: "same line",
			l1:   mustLine(t, pt(0, 0), pt(1, 1)),
			l2:   mustLine(t, pt(2, 2), pt(5, 5)),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := tc.l1.IntersectionWith(tc.l2)
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			requirePointNear(t, tc.want, p)
			require.True(t, tc.l1.PointOnLine(p))
			require.True(t, tc.l2.PointOnLine(p))
		})
	}
}
