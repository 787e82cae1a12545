// Package render draws the game's entities with ebiten primitives.
//
// There are no image assets; sprites are drawn as tinted rectangles with a
// facing marker and a frame strip, text uses the basicfont face.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
)

// Palette
var (
	ColorBoundary   = color.RGBA{128, 0, 0, 128} // translucent red, premultiplied
	ColorBattleZone = color.RGBA{0, 0, 128, 128}
	ColorWall       = colornames.Darkolivegreen
	ColorGrass      = colornames.Forestgreen
	ColorHealthBG   = colornames.Lightgray
	ColorHealthFG   = colornames.Limegreen
	ColorPanel      = colornames.White
	ColorText       = colornames.Black
)

var face text.Face = text.NewGoXFace(basicfont.Face7x13)

// Face returns the shared UI font face
func Face() *text.Face {
	return &face
}

// Fade scales c by opacity, keeping ebiten's premultiplied alpha
func Fade(c color.Color, opacity float64) color.RGBA {
	if c == nil {
		c = colornames.Magenta
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * opacity),
		G: uint8(float64(g>>8) * opacity),
		B: uint8(float64(b>>8) * opacity),
		A: uint8(float64(a>>8) * opacity),
	}
}

// Rect fills r
func Rect(dst *ebiten.Image, r entity.Rect, c color.Color) {
	ebitenutil.DrawRect(dst, r.X, r.Y, r.W, r.H, c)
}

// Sprite draws s as a tinted body with a marker on its facing side and one
// pip per animation frame, the current one highlighted
func Sprite(dst *ebiten.Image, s *entity.Sprite) {
	if s.Opacity <= 0 {
		return
	}
	Rect(dst, s.Bounds(), Fade(s.Tint, s.Opacity))

	const marker = 6.0
	x, y, w, h := s.Position.X, s.Position.Y, s.Width, s.Height
	var m entity.Rect
	switch s.Facing {
	case entity.DirUp:
		m = entity.Rect{X: x + w/2 - marker/2, Y: y, W: marker, H: marker}
	case entity.DirLeft:
		m = entity.Rect{X: x, Y: y + h/2 - marker/2, W: marker, H: marker}
	case entity.DirRight:
		m = entity.Rect{X: x + w - marker, Y: y + h/2 - marker/2, W: marker, H: marker}
	default:
		m = entity.Rect{X: x + w/2 - marker/2, Y: y + h - marker, W: marker, H: marker}
	}
	Rect(dst, m, Fade(colornames.White, s.Opacity))

	if s.Frames.Max <= 1 {
		return
	}
	pip := w / float64(s.Frames.Max)
	for i := 0; i < s.Frames.Max; i++ {
		c := colornames.Dimgray
		if i == s.Frames.Current {
			c = colornames.Gold
		}
		Rect(dst, entity.Rect{X: x + float64(i)*pip + 1, Y: y - 5, W: pip - 2, H: 3}, Fade(c, s.Opacity))
	}
}

// HealthBar draws a name plate with a bar filled to pct percent
func HealthBar(dst *ebiten.Image, name string, x, y, w float64, pct float64) {
	ebitenutil.DrawRect(dst, x, y, w, 48, ColorPanel)
	Text(dst, name, x+12, y+6, ColorText)

	barX, barY, barW := x+12, y+26, w-24
	ebitenutil.DrawRect(dst, barX, barY, barW, 8, ColorHealthBG)
	if pct > 100 {
		pct = 100
	}
	if pct > 0 {
		ebitenutil.DrawRect(dst, barX, barY, barW*pct/100, 8, ColorHealthFG)
	}
}

// Text draws s with its top-left corner at (x, y)
func Text(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// World draws the map: ground, wall tiles and grass patches
func World(dst *ebiten.Image, w *entity.World, ground color.Color) {
	Rect(dst, w.Background(), ground)
	for _, z := range w.BattleZones {
		Rect(dst, w.ScreenRect(z), ColorGrass)
	}
	for _, b := range w.Boundaries {
		Rect(dst, w.ScreenRect(b), ColorWall)
	}
}

// Debug overlays boundaries and battle zones
func Debug(dst *ebiten.Image, w *entity.World) {
	for _, z := range w.BattleZones {
		Rect(dst, w.ScreenRect(z), ColorBattleZone)
	}
	for _, b := range w.Boundaries {
		Rect(dst, w.ScreenRect(b), ColorBoundary)
	}
}
