package geom

// Padding returns the tolerance used when testing a circle against a rectangle.
// With 40 unit cells and radius 15 this is 4, which lets a circle sitting in the
// centre of a corridor slide past the walls on either side.
func Padding(c Circle, r Rect) float64 {
	return r.W/2 - c.Radius - 1
}

// CircleCollidesWithRect reports whether moving c by vel would overlap r.
// The test is predictive: it uses the prospective position c.Pos+vel, so a
// candidate move can be rejected before it is committed.
func CircleCollidesWithRect(c Circle, vel Vec, r Rect) bool {
	pad := Padding(c, r)
	x := c.Pos.X + vel.X
	y := c.Pos.Y + vel.Y

	return y-c.Radius <= r.Pos.Y+r.H+pad &&
		x+c.Radius >= r.Pos.X-pad &&
		y+c.Radius >= r.Pos.Y-pad &&
		x-c.Radius <= r.Pos.X+r.W+pad
}

// FirstCollision returns the index of the first rectangle in rects that c would
// overlap after moving by vel, or -1 if the move is clear.
func FirstCollision(c Circle, vel Vec, rects []Rect) int {
	for i, r := range rects {
		if CircleCollidesWithRect(c, vel, r) {
			return i
		}
	}
	return -1
}

// Touching reports whether two circles overlap (strictly closer than the sum of radii).
func Touching(a, b Circle) bool {
	return Dist(a.Pos, b.Pos) < a.Radius+b.Radius
}
