package pipeline

import (
	"fmt"
	"io"

	"github.com/mcallbosco/IMGColorSwap/internal/channels"
	"github.com/mcallbosco/IMGColorSwap/internal/pngio"
)

// DecodeError reports an input file that could not be read as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Path, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// WriteError reports an output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Result holds the output of a single remap.
type Result struct {
	Width  int
	Height int
}

// RemapFile decodes inputPath, reorders its channels and writes the result as
// a PNG at outputPath, then reports the saved path on out. The caller has
// already validated order and chosen a free outputPath.
func RemapFile(inputPath, outputPath string, order channels.Order, out io.Writer) (*Result, error) {
	// 1. Decode into R, G, B, A planes
	src, err := pngio.Decode(inputPath)
	if err != nil {
		return nil, &DecodeError{Path: inputPath, Err: err}
	}

	// 2. Reorder
	dst, err := channels.Remap(src, order)
	if err != nil {
		return nil, fmt.Errorf("remap %s: %w", inputPath, err)
	}

	// 3. Encode
	if err := pngio.Encode(outputPath, dst); err != nil {
		return nil, &WriteError{Path: outputPath, Err: err}
	}

	if out != nil {
		fmt.Fprintf(out, "Fixed image saved to %s\n", outputPath)
	}
	return &Result{Width: dst.Width, Height: dst.Height}, nil
}
