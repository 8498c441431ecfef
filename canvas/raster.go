package canvas

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/emberterm/ember/geom"
	"github.com/emberterm/ember/style"
)

// Circle describes an anti-aliased circle to draw. Build one with
// CircleOf and chain the modifiers.
type Circle struct {
	radius float64
	stroke float64
	color  style.Color
	fill   bool
}

// CircleOf returns a circle with the given radius, a one pixel
// stroke, and a white stroke color.
func CircleOf(radius float64) Circle {
	return Circle{radius: radius, stroke: 1}
}

// Stroke sets the stroke width in pixels.
func (c Circle) Stroke(w float64) Circle {
	c.stroke = w
	return c
}

// Color sets the stroke (and fill) color.
func (c Circle) Color(col style.Color) Circle {
	c.color = col
	return c
}

// Solid fills the circle instead of stroking its outline.
func (c Circle) Solid() Circle {
	c.fill = true
	return c
}

// AALine draws a white anti-aliased line between a and b in pixel
// coordinates.
func (c *Canvas) AALine(a, b geom.Vec2) {
	c.AALineColor(a, b, style.White)
}

// AALineColor draws an anti-aliased line, blending the stroke color
// into whatever each touched pixel currently shows.
func (c *Canvas) AALineColor(a, b geom.Vec2, color style.Color) {
	// Wu's algorithm: walk the major axis, split coverage between
	// the two pixels straddling the ideal line.
	steep := math.Abs(b.Y-a.Y) > math.Abs(b.X-a.X)
	if steep {
		a.X, a.Y = a.Y, a.X
		b.X, b.Y = b.Y, b.X
	}
	if a.X > b.X {
		a, b = b, a
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	plot := func(x, y int, cov float64) {
		if steep {
			x, y = y, x
		}
		c.blendPixel(geom.P(x, y), color, cov)
	}

	// First endpoint.
	xEnd := math.Round(a.X)
	yEnd := a.Y + gradient*(xEnd-a.X)
	xGap := 1 - fract(a.X+0.5)
	x0 := int(xEnd)
	plot(x0, int(math.Floor(yEnd)), (1-fract(yEnd))*xGap)
	plot(x0, int(math.Floor(yEnd))+1, fract(yEnd)*xGap)
	intery := yEnd + gradient

	// Second endpoint.
	xEnd = math.Round(b.X)
	yEnd = b.Y + gradient*(xEnd-b.X)
	xGap = fract(b.X + 0.5)
	x1 := int(xEnd)
	plot(x1, int(math.Floor(yEnd)), (1-fract(yEnd))*xGap)
	plot(x1, int(math.Floor(yEnd))+1, fract(yEnd)*xGap)

	for x := x0 + 1; x < x1; x++ {
		plot(x, int(math.Floor(intery)), 1-fract(intery))
		plot(x, int(math.Floor(intery))+1, fract(intery))
		intery += gradient
	}
}

// AACircle draws an anti-aliased circle centered at center in pixel
// coordinates.
func (c *Canvas) AACircle(center geom.Vec2, circle Circle) {
	if circle.radius <= 0 {
		return
	}
	color := circle.color
	if !color.IsSet() {
		color = style.White
	}
	halfStroke := circle.stroke / 2
	if halfStroke < 0.5 {
		halfStroke = 0.5
	}

	reach := circle.radius + halfStroke + 1
	minX := int(math.Floor(center.X - reach))
	maxX := int(math.Ceil(center.X + reach))
	minY := int(math.Floor(center.Y - reach))
	maxY := int(math.Ceil(center.Y + reach))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d := geom.V(float64(x), float64(y)).Sub(center).Length()

			var cov float64
			if circle.fill {
				// Inside the radius is fully covered, with a one
				// pixel falloff band at the edge.
				cov = clamp01(circle.radius - d + 0.5)
			} else {
				cov = clamp01(halfStroke - math.Abs(d-circle.radius) + 0.5)
			}
			c.blendPixel(geom.P(x, y), color, cov)
		}
	}
}

// blendPixel blends color over the pixel at p with coverage cov.
// The blend base is whatever the pixel currently shows, falling back
// to the canvas background, then black.
func (c *Canvas) blendPixel(p geom.Point, color style.Color, cov float64) {
	if cov <= 1.0/255 {
		return
	}
	if !p.In(c.Size()) {
		return
	}
	if cov >= 1 {
		c.SetColor(p, color)
		return
	}

	base, ok := c.At(p)
	if !ok {
		base = c.background
	}
	blended := toColorful(base).BlendRgb(toColorful(color), cov)
	r, g, b := blended.RGB255()
	c.SetColor(p, style.RGB(r, g, b))
}

func toColorful(c style.Color) colorful.Color {
	r, g, b := c.RGBA()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
