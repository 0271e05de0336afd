// Package imgproc holds the pipeline's image plumbing: PNG decode/encode
// and cropping by normalized rectangle.
package imgproc

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"window-ocr/src/config"
)

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// CropNormalized returns the sub-image selected by the normalized rect.
// Pixel edges are the normalized coordinates scaled by width/height and
// truncated toward zero. A nil rect returns img unchanged.
func CropNormalized(img image.Image, r *config.CropRect) image.Image {
	if r == nil {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	box := image.Rect(
		b.Min.X+int(r.X0*float64(w)),
		b.Min.Y+int(r.Y0*float64(h)),
		b.Min.X+int(r.X1*float64(w)),
		b.Min.Y+int(r.Y1*float64(h)),
	)
	if si, ok := img.(subImager); ok {
		return si.SubImage(box)
	}
	// Non-subimageable source: copy the box.
	out := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	for y := 0; y < box.Dy(); y++ {
		for x := 0; x < box.Dx(); x++ {
			out.Set(x, y, img.At(box.Min.X+x, box.Min.Y+y))
		}
	}
	return out
}

// DecodeFile reads a PNG (or any registered format) from disk.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// EncodePNG writes img to path as PNG.
func EncodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// CropFile applies a normalized crop to the image at srcPath and writes
// the result to dstPath. With a nil rect no work is done and srcPath is
// returned, so the uncropped capture feeds the OCR engine directly.
func CropFile(srcPath, dstPath string, r *config.CropRect) (string, error) {
	if r == nil {
		return srcPath, nil
	}
	img, err := DecodeFile(srcPath)
	if err != nil {
		return "", err
	}
	if err := EncodePNG(dstPath, CropNormalized(img, r)); err != nil {
		return "", err
	}
	return dstPath, nil
}
