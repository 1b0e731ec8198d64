package core

// Handle is an opaque reference to a presentation asset (icon, sprite,
// background, sound). Game logic stores handles verbatim and passes them back
// to the renderer or audio output, which know how to resolve them.
type Handle string

// None is the empty handle. Resolving it always fails.
const None Handle = ""

// Renderer receives draw intents from a game each frame.
// Coordinates are screen cells; anything outside the surface is clipped.
type Renderer interface {
	// Size returns the drawable area in cells.
	Size() (w, h int)

	// DrawBackground paints the whole surface with the given background.
	DrawBackground(bg Handle)

	// DrawSprite draws an icon or sprite with its top-left corner at (x, y).
	DrawSprite(h Handle, x, y int)

	// DrawText writes a single line of text.
	DrawText(x, y int, text string, c Color)

	// DrawGlyph writes one rune.
	DrawGlyph(x, y int, r rune, c Color)

	// DrawTimerBar draws a horizontal bar w cells wide filled to ratio (0..1).
	DrawTimerBar(x, y, w int, ratio float64)

	// DrawRoundedRect outlines r with rounded corners.
	DrawRoundedRect(r Rect, c Color)

	// DrawGradientRect fills r shading from one colour to another, left to right.
	DrawGradientRect(r Rect, from, to Color)
}
