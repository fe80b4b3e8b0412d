package pngio

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/mcallbosco/IMGColorSwap/internal/ir"
)

// Join interleaves the four planes of p into an NRGBA image.
func Join(p *ir.PlanarImage) (*image.NRGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planar image: %w", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+p.Width*4]
		for x := 0; x < p.Width; x++ {
			i := p.Offset(x, y)
			row[x*4] = p.Planes[0][i]
			row[x*4+1] = p.Planes[1][i]
			row[x*4+2] = p.Planes[2][i]
			row[x*4+3] = p.Planes[3][i]
		}
	}
	return img, nil
}

// rgbaOut makes image/png keep the alpha channel even when every pixel is
// opaque, so output is always color type 6.
type rgbaOut struct{ *image.NRGBA }

func (rgbaOut) Opaque() bool { return false }

// EncodePNG writes p to w as an 8-bit RGBA PNG.
func EncodePNG(w io.Writer, p *ir.PlanarImage) error {
	img, err := Join(p)
	if err != nil {
		return err
	}
	return imgio.PNGEncoder()(w, rgbaOut{img})
}

// Encode writes p as a PNG file at path, replacing any existing file.
func Encode(path string, p *ir.PlanarImage) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, p); err != nil {
		f.Close()
		return fmt.Errorf("png encode: %w", err)
	}
	return f.Close()
}
