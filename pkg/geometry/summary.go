package geometry

// LineSummary is the canonical representation of a Line. Slope is meaningless
// when Vertical is set.
type LineSummary struct {
	Point1   Point
	Point2   Point
	Equation string
	Slope    float64
	Vertical bool
	Length   float64
}

// CircleSummary is the canonical representation of a Circle.
type CircleSummary struct {
	Center        Point
	Radius        float64
	Equation      string
	Area          float64
	Circumference float64
}

// TriangleSummary is the canonical representation of a Triangle. Orthocenter
// and Circumcenter are only meaningful when the matching Has flag is set.
type TriangleSummary struct {
	Points          [3]Point
	Area            float64
	Perimeter       float64
	Centroid        Point
	Orthocenter     Point
	HasOrthocenter  bool
	Circumcenter    Point
	HasCircumcenter bool
	Incenter        Point
}

// PolygonSummary is the canonical representation of a Polygon. Centroid is
// only meaningful when HasCentroid is set.
type PolygonSummary struct {
	Points      []Point
	Area        float64
	Perimeter   float64
	Centroid    Point
	HasCentroid bool
	IsConvex    bool
}
