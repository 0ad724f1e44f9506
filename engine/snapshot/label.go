package snapshot

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelMargin is the gap in pixels between the label box and the image corner.
const labelMargin = 6

var (
	labelInk      = image.NewUniform(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	labelBackdrop = image.NewUniform(color.RGBA{A: 0xa0})
)

// drawLabel writes text into the top-left corner over a translucent box.
// The input is copied when it is not already an *image.RGBA.
func drawLabel(img image.Image, text string) image.Image {
	dst, ok := img.(*image.RGBA)
	if !ok {
		dst = image.NewRGBA(img.Bounds())
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	face := basicfont.Face7x13
	advance := font.MeasureString(face, text).Ceil()
	origin := dst.Bounds().Min
	box := image.Rect(
		origin.X+labelMargin/2, origin.Y+labelMargin/2,
		origin.X+labelMargin+advance+labelMargin/2, origin.Y+labelMargin+face.Height+labelMargin/2,
	)
	draw.Draw(dst, box, labelBackdrop, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  labelInk,
		Face: face,
		Dot:  fixed.P(origin.X+labelMargin, origin.Y+labelMargin+face.Ascent),
	}
	d.DrawString(text)
	return dst
}
