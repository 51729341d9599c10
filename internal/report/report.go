// Package report sorts shape collections, accumulates aggregate metrics,
// and renders the summary report.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/erivers/shapesum/internal/shape"
)

// Summary holds the aggregate metrics of one shape collection.
type Summary struct {
	// TotalShapes is the number of shapes, polygonal or not.
	TotalShapes int

	// TotalPerimeter is the sum of every shape's perimeter.
	TotalPerimeter float64

	// TotalPolygons is the number of polygon variants.
	TotalPolygons int

	// TotalPolygonSides is the sum of side counts over polygon variants.
	TotalPolygonSides int

	// AveragePolygonSides is TotalPolygonSides / TotalPolygons, or 0 when
	// the collection holds no polygons.
	AveragePolygonSides float64
}

// SortByArea sorts shapes in place by ascending area. The sort is stable,
// so equal-area shapes keep their input order. A NaN area (an impossible
// triangle) compares unordered and lands in an unspecified position.
func SortByArea(shapes []shape.Shape) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].Area() < shapes[j].Area()
	})
}

// Aggregate walks shapes once and returns their summary metrics.
func Aggregate(shapes []shape.Shape) Summary {
	s := Summary{TotalShapes: len(shapes)}

	for _, sh := range shapes {
		s.TotalPerimeter += sh.Perimeter()
		if p, ok := shape.AsPolygon(sh); ok {
			s.TotalPolygons++
			s.TotalPolygonSides += p.Sides()
		}
	}

	if s.TotalPolygons > 0 {
		s.AveragePolygonSides = float64(s.TotalPolygonSides) / float64(s.TotalPolygons)
	}

	return s
}

// Render writes the report: one line naming each shape's variant in the
// order given, a blank line, then the labeled summary totals.
func Render(w io.Writer, shapes []shape.Shape, summary Summary) {
	for _, sh := range shapes {
		fmt.Fprintln(w, sh.Kind())
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Shapes: %d\n", summary.TotalShapes)
	fmt.Fprintf(w, "Total Perimeter of all shapes: %g\n", summary.TotalPerimeter)
	fmt.Fprintf(w, "Total Polygons: %d\n", summary.TotalPolygons)
	fmt.Fprintf(w, "Average Polygon Sides: %g\n", summary.AveragePolygonSides)
}

// Run is the whole reporting pass: sort by area, aggregate, render.
func Run(w io.Writer, shapes []shape.Shape) Summary {
	SortByArea(shapes)
	summary := Aggregate(shapes)
	Render(w, shapes, summary)
	return summary
}
