package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/llgcode/draw2d/draw2dimg"
)

// WriteLabeledPNGSlice rasterizes the same planar cross-section as
// WriteSVGSlice, plus a corner label giving the slice height and
// segment count — useful for flipping through a stack of slice images
// while chasing a quality-refinement regression.
func WriteLabeledPNGSlice(path string, segs []SliceSegment, planeZ float64, canvasSize int, fontPath string) error {
	img := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	fillWhite(img)

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(1)

	minX, minY, maxX, maxY := boundsOf(segs)
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	margin := 20.0
	scale := (float64(canvasSize) - 2*margin) / maxFloat(spanX, spanY)

	for _, seg := range segs {
		x1 := margin + (seg.A.X-minX)*scale
		y1 := margin + (seg.A.Y-minY)*scale
		x2 := margin + (seg.B.X-minX)*scale
		y2 := margin + (seg.B.Y-minY)*scale
		gc.MoveTo(x1, y1)
		gc.LineTo(x2, y2)
	}
	gc.Stroke()

	if fontPath != "" {
		if err := drawLabel(img, fontPath, fmt.Sprintf("z=%.4f  segs=%d", planeZ, len(segs))); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func drawLabel(dst *image.RGBA, fontPath, text string) error {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return err
	}
	font, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return err
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(font)
	c.SetFontSize(12)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(color.Black))

	_, err = c.DrawString(text, freetype.Pt(8, 16))
	return err
}

func boundsOf(segs []SliceSegment) (minX, minY, maxX, maxY float64) {
	minX, minY = 1e300, 1e300
	maxX, maxY = -1e300, -1e300
	for _, seg := range segs {
		for _, p := range [2]struct{ X, Y float64 }{{seg.A.X, seg.A.Y}, {seg.B.X, seg.B.Y}} {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	return
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func fillWhite(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.White)
		}
	}
}
