package typecatch

import "github.com/vovakirdan/typecatch/internal/core"

// Screen layout constants, in cells.
const (
	MinWidth  = 80
	MinHeight = 24

	GalleryCols = 10
	GalleryRows = 5
	slotWidth   = 3

	spriteTop    = 6
	spriteWidth  = 9
	spriteHeight = 4
	nameBoxTop   = 11
)

// Layout places every element for a given screen size.
type Layout struct {
	W, H int
}

// Launch is where the capture ball is thrown from.
func (l Layout) Launch() core.Vec {
	return core.V(float64(l.W/2), float64(l.H-2))
}

// SpriteOrigin is the top-left corner of the target sprite.
func (l Layout) SpriteOrigin(walk int) (int, int) {
	return l.W/2 - spriteWidth/2 + walk, spriteTop
}

// TargetAnchor is the centre of the target sprite.
func (l Layout) TargetAnchor(walk int) core.Vec {
	x, y := l.SpriteOrigin(walk)
	return core.V(float64(x+spriteWidth/2), float64(y+spriteHeight/2))
}

// NameBox is the rounded frame around the name and timer bar.
func (l Layout) NameBox(nameWidth, walk int) core.Rect {
	w := max(nameWidth+4, 14)
	return core.NewRect(l.W/2-w/2+walk, nameBoxTop, w, 4)
}

// Gallery is the frame around the captured-icon grid.
func (l Layout) Gallery() core.Rect {
	return core.NewRect(1, l.H-GalleryRows-3, GalleryCols*slotWidth+3, GalleryRows+2)
}

// Slot is the cell of gallery entry i. Entries past the grid share the last slot.
func (l Layout) Slot(i int) (int, int) {
	i = core.Clamp(i, 0, GalleryCols*GalleryRows-1)
	g := l.Gallery()
	return g.X + 2 + (i%GalleryCols)*slotWidth, g.Y + 1 + i/GalleryCols
}

// SlotVec is Slot as a vector, for the animation.
func (l Layout) SlotVec(i int) core.Vec {
	x, y := l.Slot(i)
	return core.V(float64(x), float64(y))
}
