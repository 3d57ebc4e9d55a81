package gamemath

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports a strict intersection; rectangles that only share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether the point lies inside r, edges included. An
// empty rectangle contains nothing.
func (r Rect) Contains(x, y float64) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CoverFit scales a srcW x srcH image so it fully covers a dstW x dstH
// area while keeping its aspect ratio, centred on the overflowing axis.
// It returns the uniform scale and the draw offset.
func CoverFit(srcW, srcH, dstW, dstH float64) (scale, offsetX, offsetY float64) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return 0, 0, 0
	}
	srcAspect := srcW / srcH
	dstAspect := dstW / dstH
	if dstAspect > srcAspect {
		// destination is wider: fit width, crop height
		scale = dstW / srcW
		return scale, 0, (dstH - srcH*scale) / 2
	}
	scale = dstH / srcH
	return scale, (dstW - srcW*scale) / 2, 0
}
