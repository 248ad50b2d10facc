package layout

import "fmt"

// Rect is a computed on-screen rectangle in the root window's
// coordinate space. Width and Height are never negative.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Size is an extent without a position.
type Size struct {
	Width  float64
	Height float64
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Inset shrinks the rectangle by the given amounts per edge, clamping
// the result to non-negative extents. The rectangle never grows, even
// when insets exceed the available extent.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	out := Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
	if out.Width < 0 {
		out.Width = 0
		if out.X > r.Right() {
			out.X = r.Right()
		}
	}
	if out.Height < 0 {
		out.Height = 0
		if out.Y > r.Bottom() {
			out.Y = r.Bottom()
		}
	}
	return out
}

// Contains reports whether other lies fully inside r, with a small
// tolerance for accumulated floating-point error.
func (r Rect) Contains(other Rect) bool {
	const tol = 1e-6
	return other.X >= r.X-tol &&
		other.Y >= r.Y-tol &&
		other.Right() <= r.Right()+tol &&
		other.Bottom() <= r.Bottom()+tol
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(x=%g, y=%g, width=%g, height=%g)", r.X, r.Y, r.Width, r.Height)
}
