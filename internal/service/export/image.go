package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"

	"golang.org/x/image/draw"
)

// maxSnapshotWidth bounds embedded captures so a full-screen grab still
// fits a single document page.
const maxSnapshotWidth = 1200

// NormalizeSnapshot decodes a captured view image, flattens transparency
// onto white and downscales anything wider than maxSnapshotWidth. The
// result is re-encoded as JPEG, the only raster format the page embedder
// needs to know about.
func NormalizeSnapshot(r io.Reader) ([]byte, int, int, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode snapshot image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, 0, 0, fmt.Errorf("snapshot image has empty bounds")
	}

	if width > maxSnapshotWidth {
		height = height * maxSnapshotWidth / width
		if height < 1 {
			height = 1
		}
		width = maxSnapshotWidth
	}

	// Flatten onto white. PNG captures of the admin views carry an alpha
	// channel that JPEG cannot represent.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return buf.Bytes(), width, height, nil
}
