// Package certificate renders completion certificates as PNG images. It is a
// pure function of workshop data and the participant name.
package certificate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

const (
	width  = 800
	height = 600
)

var (
	background = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	borderBlue = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	ink        = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	muted      = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
)

// Render produces a certificate PNG for the participant and workshop.
func Render(w domain.Workshop, participantName string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	drawBorder(img, 20, 8)

	face := basicfont.Face7x13
	drawCentered(img, face, ink, "Certificate of Completion", 120)
	drawCentered(img, face, borderBlue, participantName, 200)
	drawCentered(img, face, muted, "has successfully completed", 250)
	drawCentered(img, face, ink, w.Title, 300)
	drawCentered(img, face, muted, fmt.Sprintf("Completed on %s", w.Date.Format("January 2, 2006")), 400)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawBorder(img *image.RGBA, inset, thickness int) {
	border := image.NewUniform(borderBlue)
	outer := image.Rect(inset, inset, width-inset, height-inset)
	inner := image.Rect(inset+thickness, inset+thickness, width-inset-thickness, height-inset-thickness)

	draw.Draw(img, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y), border, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y), border, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), border, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y), border, image.Point{}, draw.Src)
}

func drawCentered(img *image.RGBA, face font.Face, col color.Color, text string, y int) {
	textWidth := font.MeasureString(face, text).Round()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P((width-textWidth)/2, y),
	}
	drawer.DrawString(text)
}
