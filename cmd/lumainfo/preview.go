package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	vecmath "github.com/cwbudde/algo-vecmath"
	"golang.org/x/image/tiff"
	"gonum.org/v1/gonum/floats"
)

// previewImage quantizes luma to 16-bit gray, clamping to [0, 1].
// Non-finite samples render black. With normalize, the largest absolute
// finite sample maps to full scale.
func previewImage(samples []float32, width int, normalize bool) *image.Gray16 {
	vals := make([]float64, len(samples))
	for i, v := range samples {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		vals[i] = f
	}
	if normalize && len(vals) > 0 {
		if peak := floats.Norm(vals, math.Inf(1)); peak > 0 {
			vecmath.ScaleBlockInPlace(vals, 1/peak)
		}
	}

	height := len(vals) / width
	img := image.NewGray16(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetGray16(x, y, color.Gray16{Y: quantize(vals[y*width+x])})
		}
	}
	return img
}

func quantize(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return math.MaxUint16
	}
	return uint16(v*math.MaxUint16 + 0.5)
}

func writePreview(path string, samples []float32, width int, normalize bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	img := previewImage(samples, width, normalize)
	if err := tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		f.Close()
		return fmt.Errorf("encode preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close preview: %w", err)
	}
	return nil
}
