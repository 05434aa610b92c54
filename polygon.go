package strands

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-hair-strands/internal/bezier"
	"github.com/tphakala/go-hair-strands/internal/simdops"
	"github.com/tphakala/go-hair-strands/internal/strand"
)

// polygon is one strand's control polygon in planar NDC form.
type polygon struct {
	x []float64
	y []float64
}

func (p polygon) points() []Point {
	pts := make([]Point, len(p.x))
	for i := range pts {
		pts[i] = Point{X: p.x[i], Y: p.y[i]}
	}
	return pts
}

// polygonBuilder derives the control polygon of one strand.
type polygonBuilder interface {
	build(m strand.Modifiers) polygon
}

// newPolygonBuilder selects the builder for the configured layout.
// The config must be validated.
func newPolygonBuilder(c *Config) polygonBuilder {
	if c.Layout == LayoutCircle {
		return circleBuilder{spec: c.Circle}
	}
	return newTemplateBuilder(c.Space.NormalizeAll(c.Template))
}

// buildPolygons builds every strand's polygon with one shared backing
// array per axis.
func buildPolygons(b polygonBuilder, mods []strand.Modifiers, width int) []polygon {
	xs := make([]float64, len(mods)*width)
	ys := make([]float64, len(mods)*width)
	polys := make([]polygon, len(mods))
	for j, m := range mods {
		p := b.build(m)
		lo, hi := j*width, (j+1)*width
		copy(xs[lo:hi], p.x)
		copy(ys[lo:hi], p.y)
		polys[j] = polygon{x: xs[lo:hi:hi], y: ys[lo:hi:hi]}
	}
	return polys
}

// templateBuilder scales a shared template about its root:
//
//	P' = root + (P - root)·scale + (offsetX, 0)
//
// The template is stored relative to the root so the root itself only
// moves by the offset.
type templateBuilder struct {
	root Point
	relX []float64
	relY []float64
	ops  *simdops.Ops64
}

func newTemplateBuilder(ndc []Point) templateBuilder {
	root := ndc[0]
	rel := make([]Point, len(ndc))
	for i, p := range ndc {
		rel[i] = p.Sub(root)
	}
	relX, relY := bezier.Split(rel)
	return templateBuilder{
		root: root,
		relX: relX,
		relY: relY,
		ops:  simdops.Float64Ops(),
	}
}

func (b templateBuilder) build(m strand.Modifiers) polygon {
	p := polygon{
		x: make([]float64, len(b.relX)),
		y: make([]float64, len(b.relY)),
	}
	b.ops.Scale(p.x, b.relX, m.Scale)
	b.ops.Scale(p.y, b.relY, m.Scale)
	floats.AddConst(b.root.X+m.OffsetX, p.x)
	floats.AddConst(b.root.Y, p.y)
	return p
}

// circleBuilder anchors each strand on a circle at its angle:
//
//	P0 = center + r·(cos a, sin a)
//	Pi = (P0.x + curl·sin(a + curlPhase), P0.y - drop·i)
//
// Scale and offset modifiers do not apply to this layout.
type circleBuilder struct {
	spec CircleSpec
}

func (b circleBuilder) build(m strand.Modifiers) polygon {
	s := &b.spec
	width := s.Degree + 1
	p := polygon{
		x: make([]float64, width),
		y: make([]float64, width),
	}

	sin, cos := math.Sincos(m.Angle)
	x0 := s.Center.X + s.Radius*cos
	y0 := s.Center.Y + s.Radius*sin
	bend := s.Curl * math.Sin(m.Angle+s.CurlPhase)

	p.x[0], p.y[0] = x0, y0
	for i := 1; i < width; i++ {
		p.x[i] = x0 + bend
		p.y[i] = y0 - s.Drop*float64(i)
	}
	return p
}
