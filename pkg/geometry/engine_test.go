package geometry_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"geomcalc/pkg/geometry"
)

func TestAreCollinear(t *testing.T) {
	require.True(t, geometry.AreCollinear(pt(0, 0), pt(1, 1), pt(2, 2)))
	require.True(t, geometry.AreCollinear(pt(3, -1), pt(3, 4), pt(3, 100)))
	require.True(t, geometry.AreCollinear(pt(1, 1), pt(1, 1), pt(5, 9)))
	require.False(t, geometry.AreCollinear(pt(0, 0), pt(4, 0), pt(0, 3)))
}

func TestDistancePointToLine(t *testing.T) {
	l := mustLine(t, pt(0, 2), pt(2, 0))
	require.InDelta(t, math.Sqrt2, geometry.DistancePointToLine(pt(0, 0), l), tol)
	require.InDelta(t, 0, geometry.DistancePointToLine(pt(1, 1), l), tol)

	vertical := mustLine(t, pt(-3, 0), pt(-3, 8))
	require.InDelta(t, 5, geometry.DistancePointToLine(pt(2, 40), vertical), tol)
}

func TestConvexHull(t *testing.T) {
	cases := []struct {
		name   string
		points []geometry.Point
		want   []geometry.Point
	}{
		{
			name:   "square with interior point",
			points: []geometry.Point{pt(0, 0), pt(1, 0), pt(0.5, 0.5), pt(1, 1), pt(0, 1)},
			want:   []geometry.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)},
		},
		{
			name:   "shuffled square with off-diagonal interior point",
			points: []geometry.Point{pt(1, 1), pt(0.25, 0.5), pt(0, 1), pt(1, 0), pt(0, 0)},
			want:   []geometry.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)},
		},
		{
			name:   "points on edges are dropped",
			points: []geometry.Point{pt(0, 0), pt(2, 0), pt(1, 0), pt(2, 2), pt(2, 1), pt(0, 2), pt(0, 1), pt(1, 2)},
			want:   []geometry.Point{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)},
		},
		{
			name:   "far point listed before near point on the same ray",
			points: []geometry.Point{pt(0, 0), pt(4, 4), pt(4, 0), pt(1, 1), pt(0, 4)},
			want:   []geometry.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)},
		},
		{
			name:   "duplicates",
			points: []geometry.Point{pt(0, 0), pt(3, 0), pt(0, 0), pt(0, 3), pt(3, 0)},
			want:   []geometry.Point{pt(0, 0), pt(3, 0), pt(0, 3)},
		},
		{
			name:   "lowest leftmost pivot",
			points: []geometry.Point{pt(5, 2), pt(3, -1), pt(1, -1), pt(2, 4)},
			want:   []geometry.Point{pt(1, -1), pt(3, -1), pt(5, 2), pt(2, 4)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, geometry.ConvexHull(tc.points))
		})
	}
}

func TestConvexHullSmallInputs(t *testing.T) {
	require.Empty(t, geometry.ConvexHull(nil))

	in := []geometry.Point{pt(3, 1), pt(0, 0)}
	out := geometry.ConvexHull(in)
	require.Equal(t, in, out, "fewer than three points are returned unchanged")

	out[0] = pt(9, 9)
	require.Equal(t, pt(3, 1), in[0])

	require.Equal(t, []geometry.Point{pt(2, 2)}, geometry.ConvexHull([]geometry.Point{pt(2, 2), pt(2, 2), pt(2, 2)}))
	require.Equal(t, []geometry.Point{pt(1, 0), pt(0, 0)},
		geometry.ConvexHull([]geometry.Point{pt(1, 0), pt(0, 0), pt(1, 0), pt(0, 0)}), "repeats collapse to the distinct points")
}

func TestConvexHullEnclosesInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := range 20 {
		points := make([]geometry.Point, 40)
		for i := range points {
			points[i] = pt(rng.Float64()*100-50, rng.Float64()*100-50)
		}

		hull := geometry.ConvexHull(points)
		require.GreaterOrEqual(t, len(hull), 3, "round %d", round)

		poly, err := geometry.NewPolygon(hull)
		require.NoError(t, err)
		require.True(t, poly.IsConvex(), "round %d", round)

		for _, p := range points {
			require.True(t, poly.ContainsPoint(p), "round %d: %s outside hull", round, p)
		}
	}
}
