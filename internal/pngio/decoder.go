package pngio

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/mcallbosco/IMGColorSwap/internal/ir"
)

// Decode reads the image at path and splits it into four 8-bit planes.
// Sources without alpha get a fully opaque alpha plane.
func Decode(path string) (*ir.PlanarImage, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, err
	}
	return Split(img), nil
}

// Split converts img to non-premultiplied R, G, B, A planes. Color values of
// fully transparent pixels are kept, which matters when alpha is moved into a
// color plane.
func Split(img image.Image) *ir.PlanarImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p := ir.NewPlanarImage(w, h)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+w*4]
			for x := 0; x < w; x++ {
				i := p.Offset(x, y)
				p.Planes[0][i] = row[x*4]
				p.Planes[1][i] = row[x*4+1]
				p.Planes[2][i] = row[x*4+2]
				p.Planes[3][i] = row[x*4+3]
			}
		}
	case *image.Paletted:
		palette := make([]color.NRGBA, len(src.Palette))
		for i, c := range src.Palette {
			palette[i] = toNRGBA(c)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := int(src.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
				var c color.NRGBA
				if idx < len(palette) {
					c = palette[idx]
				}
				setPixel(p, x, y, c)
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				setPixel(p, x, y, toNRGBA(img.At(b.Min.X+x, b.Min.Y+y)))
			}
		}
	}
	return p
}

func setPixel(p *ir.PlanarImage, x, y int, c color.NRGBA) {
	i := p.Offset(x, y)
	p.Planes[0][i] = c.R
	p.Planes[1][i] = c.G
	p.Planes[2][i] = c.B
	p.Planes[3][i] = c.A
}

// toNRGBA avoids the premultiplied round trip for colors that are already
// non-premultiplied, so transparent pixels keep their color.
func toNRGBA(c color.Color) color.NRGBA {
	switch v := c.(type) {
	case color.NRGBA:
		return v
	case color.NRGBA64:
		return color.NRGBA{R: uint8(v.R >> 8), G: uint8(v.G >> 8), B: uint8(v.B >> 8), A: uint8(v.A >> 8)}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
