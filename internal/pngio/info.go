package pngio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

const maxICCSize = 4 * 1024 * 1024 // 4 MB

// PNG color types from the IHDR chunk.
const (
	ColorTypeGray      = 0
	ColorTypeRGB       = 2
	ColorTypeIndexed   = 3
	ColorTypeGrayAlpha = 4
	ColorTypeRGBA      = 6
)

// ImageInfo contains metadata about a PNG file.
type ImageInfo struct {
	Width           int
	Height          int
	BitDepth        int
	ColorType       int
	Interlaced      bool
	HasTransparency bool   // tRNS chunk present
	ICCName         string // iCCP profile name, empty if absent
	ICC             []byte // decompressed ICC profile, nil if absent
}

// ColorTypeName returns a human-readable name for the IHDR color type.
func (i *ImageInfo) ColorTypeName() string {
	switch i.ColorType {
	case ColorTypeGray:
		return "Grayscale"
	case ColorTypeRGB:
		return "RGB"
	case ColorTypeIndexed:
		return "Indexed"
	case ColorTypeGrayAlpha:
		return "Grayscale+Alpha"
	case ColorTypeRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("unknown (%d)", i.ColorType)
	}
}

// HasAlpha reports whether decoding yields a real alpha channel rather than a
// synthesized opaque one.
func (i *ImageInfo) HasAlpha() bool {
	return i.ColorType == ColorTypeGrayAlpha || i.ColorType == ColorTypeRGBA || i.HasTransparency
}

// GetInfo reads PNG header chunks without decoding pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return nil, errors.New("not a PNG file (bad signature)")
	}
	r := bytes.NewReader(data[len(pngSignature):])

	var info *ImageInfo
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if info != nil && err == io.EOF {
				return info, nil
			}
			return nil, fmt.Errorf("reading chunk header: %w", err)
		}
		length := binary.BigEndian.Uint32(hdr[0:4])
		typ := string(hdr[4:8])
		if int64(length) > int64(r.Len()) {
			return nil, fmt.Errorf("chunk %s length %d exceeds remaining %d bytes", typ, length, r.Len())
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, fmt.Errorf("reading chunk %s: %w", typ, err)
		}
		if r.Len() < 4 {
			return nil, fmt.Errorf("chunk %s: truncated CRC", typ)
		}
		if _, err := r.Seek(4, io.SeekCurrent); err != nil { // CRC
			return nil, err
		}

		if info == nil {
			if typ != "IHDR" {
				return nil, fmt.Errorf("first chunk is %s, expected IHDR", typ)
			}
			if len(body) != 13 {
				return nil, fmt.Errorf("IHDR has %d bytes, expected 13", len(body))
			}
			info = &ImageInfo{
				Width:      int(binary.BigEndian.Uint32(body[0:4])),
				Height:     int(binary.BigEndian.Uint32(body[4:8])),
				BitDepth:   int(body[8]),
				ColorType:  int(body[9]),
				Interlaced: body[12] == 1,
			}
			continue
		}

		switch typ {
		case "tRNS":
			info.HasTransparency = true
		case "iCCP":
			name, icc, err := parseICCP(body)
			if err != nil {
				return nil, fmt.Errorf("extracting ICC: %w", err)
			}
			info.ICCName = name
			info.ICC = icc
		case "IDAT", "IEND":
			// ancillary chunks that matter here all precede image data
			return info, nil
		}
	}
}

// parseICCP splits an iCCP chunk into its profile name and the inflated
// profile bytes.
func parseICCP(body []byte) (string, []byte, error) {
	nul := bytes.IndexByte(body, 0)
	if nul < 1 || nul > 79 || nul+2 > len(body) {
		return "", nil, errors.New("malformed iCCP chunk")
	}
	name := string(body[:nul])
	if method := body[nul+1]; method != 0 {
		return "", nil, fmt.Errorf("unsupported iCCP compression method %d", method)
	}
	zr, err := zlib.NewReader(bytes.NewReader(body[nul+2:]))
	if err != nil {
		return "", nil, err
	}
	defer zr.Close()
	icc, err := io.ReadAll(io.LimitReader(zr, maxICCSize+1))
	if err != nil {
		return "", nil, err
	}
	if len(icc) > maxICCSize {
		return "", nil, fmt.Errorf("ICC profile too large (max %d bytes)", maxICCSize)
	}
	return name, icc, nil
}
