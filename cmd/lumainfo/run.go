package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-houghviz/luma"
	"github.com/cwbudde/algo-houghviz/view"
)

const sampleBytes = 4

func run(cfg config, stdout io.Writer) error {
	magnitude, err := os.ReadFile(cfg.magnitudePath)
	if err != nil {
		return fmt.Errorf("read magnitude: %w", err)
	}
	hough, err := os.ReadFile(cfg.houghPath)
	if err != nil {
		return fmt.Errorf("read hough: %w", err)
	}

	mv, hv := view.NewFloatView(magnitude), view.NewHalf2View(hough)
	if r := mv.Remainder(); r != 0 {
		log.Printf("warning: %s has %d trailing bytes that do not form a sample", cfg.magnitudePath, r)
	}
	if r := hv.Remainder(); r != 0 {
		log.Printf("warning: %s has %d trailing bytes that do not form a sample", cfg.houghPath, r)
	}
	if mv.Len() != hv.Len() {
		return &luma.LengthMismatchError{Magnitude: mv.Len(), Hough: hv.Len()}
	}

	n := mv.Len()
	if n == 0 {
		return errors.New("input buffers hold no samples")
	}
	frameSamples := cfg.frameSamples
	if frameSamples == 0 {
		frameSamples = n
	}
	if n%frameSamples != 0 {
		return fmt.Errorf("%d samples do not divide into frames of %d", n, frameSamples)
	}
	if cfg.previewPath != "" && frameSamples%cfg.width != 0 {
		return fmt.Errorf("frame of %d samples is not a whole number of %d-sample rows", frameSamples, cfg.width)
	}

	opts, err := cfg.rendererOptions()
	if err != nil {
		return err
	}
	renderer := luma.NewRenderer(opts...)

	var out *bufio.Writer
	if cfg.outPath != "" {
		f, err := os.Create(cfg.outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = bufio.NewWriter(f)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frame\tSamples\tMin\tMax\tMean\tStdDev\tNon-finite\n")
	fmt.Fprintf(tw, "-----\t-------\t---\t---\t----\t------\t----------\n")

	pool := luma.NewPool()
	var encoded []byte
	for frame := 0; frame*frameSamples < n; frame++ {
		start := frame * frameSamples
		lo, hi := start*sampleBytes, (start+frameSamples)*sampleBytes
		buf := pool.Get(frameSamples)
		if _, err := renderer.DrawInto(buf.Samples(), magnitude[lo:hi], hough[lo:hi]); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		s := summarize(buf.Samples())
		fmt.Fprintf(tw, "%d\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%d\n",
			frame, s.count+s.nonFinite, s.min, s.max, s.mean, s.stdDev, s.nonFinite)

		if out != nil {
			encoded = buf.AppendBytes(encoded[:0])
			if _, err := out.Write(encoded); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		if frame == 0 && cfg.previewPath != "" {
			if err := writePreview(cfg.previewPath, buf.Samples(), cfg.width, cfg.normalize); err != nil {
				return err
			}
		}
		pool.Put(buf)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}

	if out != nil {
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

func printKernels(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range luma.Kernels.List() {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
	}
	_ = tw.Flush()
}
