package vmath

// Rect is an axis-aligned rectangle on the ground plane, Pos.Y maps to world Z
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// PointIntersects reports whether the ground projection of p is strictly inside the rect
func (r Rect) PointIntersects(p Vec3) bool {
	return p.X > r.Pos.X && p.X < r.Pos.X+r.Size.X &&
		p.Z > r.Pos.Y && p.Z < r.Pos.Y+r.Size.Y
}

// CircleIntersects approximates a circle-rect test by growing the rect by radius on every edge
// and testing the circle center against the grown rect. Boundaries are exclusive.
func (r Rect) CircleIntersects(p Vec3, radius float32) bool {
	return r.Grow(radius).PointIntersects(p)
}

// Grow expands the rect by d on all four edges
func (r Rect) Grow(d float32) Rect {
	return Rect{
		Pos:  Vec2{r.Pos.X - d, r.Pos.Y - d},
		Size: Vec2{r.Size.X + 2*d, r.Size.Y + 2*d},
	}
}

// AnyCircleIntersects reports whether any rect intersects the circle
func AnyCircleIntersects(rects []Rect, p Vec3, radius float32) bool {
	for _, r := range rects {
		if r.CircleIntersects(p, radius) {
			return true
		}
	}
	return false
}
