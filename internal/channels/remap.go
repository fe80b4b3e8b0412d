package channels

import (
	"fmt"

	"github.com/mcallbosco/IMGColorSwap/internal/ir"
)

// Remap builds a new image whose plane i is a copy of src plane order[i].
// src is left untouched.
func Remap(src *ir.PlanarImage, order Order) (*ir.PlanarImage, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("remap: %w", err)
	}
	dst := &ir.PlanarImage{Width: src.Width, Height: src.Height}
	for i, c := range order {
		if int(c) >= NumChannels {
			return nil, fmt.Errorf("remap: channel %d out of range", c)
		}
		plane := make([]byte, len(src.Planes[c]))
		copy(plane, src.Planes[c])
		dst.Planes[i] = plane
	}
	return dst, nil
}
