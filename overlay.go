package reel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	overlayLineHeight = 16
	overlayMarkerW    = 6
	overlayMarkerH    = 12
)

// MessageOverlay draws the live messages of a [MessageBox] onto an ebiten
// image, one line per message with a colored marker. It uses
// ebitenutil.DebugPrint-style text, so it is meant for debug HUDs and
// examples rather than styled game UI.
type MessageOverlay struct {
	Box *MessageBox

	marker *ebiten.Image
}

// NewMessageOverlay creates an overlay rendering the given box.
func NewMessageOverlay(box *MessageBox) *MessageOverlay {
	return &MessageOverlay{Box: box}
}

// Draw renders the box's messages onto screen with the top-left corner of
// the first line at (x, y).
func (o *MessageOverlay) Draw(screen *ebiten.Image, x, y int) {
	if o.marker == nil {
		// Created lazily so constructing an overlay is graphics-free.
		o.marker = ebiten.NewImage(1, 1)
		o.marker.Fill(color.White)
	}

	for i, m := range o.Box.Messages() {
		ly := y + i*overlayLineHeight

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(overlayMarkerW, overlayMarkerH)
		op.GeoM.Translate(float64(x), float64(ly))
		r, g, b := m.Color.RGB255()
		op.ColorScale.Scale(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		screen.DrawImage(o.marker, op)

		ebitenutil.DebugPrintAt(screen, m.Text, x+overlayMarkerW+6, ly)
	}
}
