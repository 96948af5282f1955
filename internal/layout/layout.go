// Package layout describes screen geometry and the surfaces floating
// overlays are mounted on. A Surface is the terminal analogue of a DOM
// container: it owns a rectangle on screen and at most one overlay child,
// which it composites onto its own rendered content.
package layout

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p relative to o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether the cell at x,y falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlay is a floating element positioned relative to the surface it is
// mounted on.
type Overlay interface {
	View() string
	Offset() Point
}

// Container is anything an overlay can be mounted on.
type Container interface {
	Name() string
	Bounds() Rect
	Modal() bool
	Mount(Overlay)
	Unmount(Overlay)
	Child() Overlay
}
