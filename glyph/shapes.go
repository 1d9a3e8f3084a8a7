package glyph

import (
	"fmt"
	"image"
	"math"
	"sort"

	"golang.org/x/image/vector"
)

// extent is the fraction of the nominal size covered by a shape's unit box.
// Font glyphs ink roughly 70-80% of their em, so shapes match letters
// drawn at the same size.
const extent = 0.8

// kappa places cubic control points to approximate a quarter circle.
const kappa = 0.5522847498

// hollowScale is the inner contour's scale for outlined shapes.
const hollowScale = 0.7

type pt struct{ x, y float64 }

// pen maps unit coordinates (y down, [-1, 1]) onto a rasterizer.
type pen struct {
	z      *vector.Rasterizer
	cx, cy float64
	r      float64
}

func (p *pen) xy(q pt) (float32, float32) {
	return float32(p.cx + q.x*p.r), float32(p.cy + q.y*p.r)
}

func (p *pen) moveTo(q pt) { p.z.MoveTo(p.xy(q)) }
func (p *pen) lineTo(q pt) { p.z.LineTo(p.xy(q)) }

func (p *pen) cubeTo(b, c, d pt) {
	bx, by := p.xy(b)
	cx, cy := p.xy(c)
	dx, dy := p.xy(d)
	p.z.CubeTo(bx, by, cx, cy, dx, dy)
}

// polygon traces a closed polygon, reversed when reverse is set so it
// cancels coverage of an enclosing contour.
func (p *pen) polygon(pts []pt, scale float64, reverse bool) {
	n := len(pts)
	at := func(i int) pt {
		if reverse {
			i = n - 1 - i
		}
		return pt{pts[i].x * scale, pts[i].y * scale}
	}
	p.moveTo(at(0))
	for i := 1; i < n; i++ {
		p.lineTo(at(i))
	}
	p.z.ClosePath()
}

// circle traces a circle of radius r from four cubic arcs.
func (p *pen) circle(r float64, reverse bool) {
	k := kappa * r
	s := 1.0
	if reverse {
		s = -1
	}
	p.moveTo(pt{r, 0})
	p.cubeTo(pt{r, s * k}, pt{k, s * r}, pt{0, s * r})
	p.cubeTo(pt{-k, s * r}, pt{-r, s * k}, pt{-r, 0})
	p.cubeTo(pt{-r, -s * k}, pt{-k, -s * r}, pt{0, -s * r})
	p.cubeTo(pt{k, -s * r}, pt{r, -s * k}, pt{r, 0})
	p.z.ClosePath()
}

func (p *pen) heart() {
	p.moveTo(pt{0, 0.95})
	p.cubeTo(pt{-0.6, 0.55}, pt{-1, 0.2}, pt{-1, -0.3})
	p.cubeTo(pt{-1, -0.8}, pt{-0.35, -1}, pt{0, -0.5})
	p.cubeTo(pt{0.35, -1}, pt{1, -0.8}, pt{1, -0.3})
	p.cubeTo(pt{1, 0.2}, pt{0.6, 0.55}, pt{0, 0.95})
	p.z.ClosePath()
}

// rotate turns pts clockwise by quarter turns.
func rotate(pts []pt, quarters int) []pt {
	out := make([]pt, len(pts))
	for i, q := range pts {
		for j := 0; j < quarters; j++ {
			q = pt{-q.y, q.x}
		}
		out[i] = q
	}
	return out
}

func starPoints(points int, outer, inner float64) []pt {
	pts := make([]pt, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(points) - math.Pi/2
		pts = append(pts, pt{r * math.Cos(a), r * math.Sin(a)})
	}
	return pts
}

var (
	triangleUp = []pt{{0, -0.95}, {0.95, 0.75}, {-0.95, 0.75}}
	square     = []pt{{-0.85, -0.85}, {0.85, -0.85}, {0.85, 0.85}, {-0.85, 0.85}}
	diamond    = []pt{{0, -1}, {0.75, 0}, {0, 1}, {-0.75, 0}}
	suitDia    = []pt{{0, -1}, {0.3, -0.45}, {0.6, 0}, {0.3, 0.45}, {0, 1}, {-0.3, 0.45}, {-0.6, 0}, {-0.3, -0.45}}
	star       = starPoints(5, 1, 0.4)
)

func filled(pts []pt) func(*pen) {
	return func(p *pen) { p.polygon(pts, 1, false) }
}

func hollow(pts []pt) func(*pen) {
	return func(p *pen) {
		p.polygon(pts, 1, false)
		p.polygon(pts, hollowScale, true)
	}
}

// outlines holds a path per geometric symbol.
var outlines = map[string]func(*pen){
	"●": func(p *pen) { p.circle(1, false) },
	"◯": func(p *pen) {
		p.circle(1, false)
		p.circle(0.8, true)
	},
	"■": filled(square),
	"□": hollow(square),
	"▲": filled(triangleUp),
	"△": hollow(triangleUp),
	"▶": filled(rotate(triangleUp, 1)),
	"▼": filled(rotate(triangleUp, 2)),
	"◀": filled(rotate(triangleUp, 3)),
	"★": filled(star),
	"☆": hollow(star),
	"◆": filled(diamond),
	"◇": hollow(diamond),
	"♦": filled(suitDia),
	"♥": func(p *pen) { p.heart() },
}

// ShapeRenderer draws geometric symbols from vector outlines.
type ShapeRenderer struct{}

// Shapes returns the vector outline renderer.
func Shapes() ShapeRenderer { return ShapeRenderer{} }

// ShapeSymbols lists the symbols with a vector outline, sorted.
func ShapeSymbols() []string {
	out := make([]string, 0, len(outlines))
	for s := range outlines {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Name implements Renderer.
func (ShapeRenderer) Name() string { return "shapes" }

// Has implements Renderer.
func (ShapeRenderer) Has(symbol string) bool {
	_, ok := outlines[symbol]
	return ok
}

// Render implements Renderer.
func (ShapeRenderer) Render(symbol string, size int) (*Glyph, error) {
	draw, ok := outlines[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no outline", ErrNoGlyph, symbol)
	}
	if size <= 0 {
		return nil, fmt.Errorf("glyph: size %d must be positive", size)
	}

	z := vector.NewRasterizer(size, size)
	half := float64(size) / 2
	draw(&pen{z: z, cx: half, cy: half, r: half * extent})

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return &Glyph{Mask: Trim(mask)}, nil
}
