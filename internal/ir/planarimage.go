package ir

import "fmt"

// PlanarImage is the intermediate representation passed between the PNG
// decoder, the channel remapper and the PNG encoder. Each plane holds one
// 8-bit channel in row-major order, canonical order R, G, B, A.
type PlanarImage struct {
	Width  int
	Height int
	Planes [4][]byte // each len = Width * Height
}

// NewPlanarImage allocates zeroed planes for a width x height image.
func NewPlanarImage(width, height int) *PlanarImage {
	p := &PlanarImage{Width: width, Height: height}
	for i := range p.Planes {
		p.Planes[i] = make([]byte, width*height)
	}
	return p
}

// Validate checks that every plane matches the image dimensions.
func (p *PlanarImage) Validate() error {
	if p.Width < 0 || p.Height < 0 {
		return fmt.Errorf("invalid dimensions %dx%d", p.Width, p.Height)
	}
	n := p.Width * p.Height
	for i, plane := range p.Planes {
		if len(plane) != n {
			return fmt.Errorf("plane %d has %d bytes, expected %d for %dx%d", i, len(plane), n, p.Width, p.Height)
		}
	}
	return nil
}

// Offset returns the plane index of pixel (x, y).
func (p *PlanarImage) Offset(x, y int) int {
	return y*p.Width + x
}
