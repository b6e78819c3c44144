package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cwbudde/algo-houghviz/luma"
)

type config struct {
	magnitudePath string
	houghPath     string
	kernel        string
	workers       int
	minChunk      int
	frameSamples  int
	outPath       string
	previewPath   string
	width         int
	normalize     bool
	list          bool
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lumainfo", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = usage(fs)

	fs.StringVar(&cfg.magnitudePath, "magnitude", "", "path to the binary32 magnitude buffer")
	fs.StringVar(&cfg.houghPath, "hough", "", "path to the binary16 (theta, rho) buffer")
	fs.StringVar(&cfg.kernel, "kernel", luma.DefaultKernelName, "combination kernel (see -list)")
	fs.IntVar(&cfg.workers, "workers", 1, "maximum concurrent workers per frame")
	fs.IntVar(&cfg.minChunk, "min-chunk", luma.DefaultMinChunk, "minimum samples per worker")
	fs.IntVar(&cfg.frameSamples, "frame-samples", 0, "samples per frame; 0 treats each file as one frame")
	fs.StringVar(&cfg.outPath, "out", "", "write rendered luma as raw binary32 to this path")
	fs.StringVar(&cfg.previewPath, "preview", "", "write the first frame as a 16-bit grayscale TIFF")
	fs.IntVar(&cfg.width, "width", 0, "frame width in samples (required with -preview)")
	fs.BoolVar(&cfg.normalize, "normalize", false, "scale the preview so the peak magnitude maps to white")
	fs.BoolVar(&cfg.list, "list", false, "list available kernels")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.list {
		return cfg, nil
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	var errs []error
	if c.magnitudePath == "" {
		errs = append(errs, errors.New("-magnitude is required"))
	}
	if c.houghPath == "" {
		errs = append(errs, errors.New("-hough is required"))
	}
	if c.workers < 1 {
		errs = append(errs, fmt.Errorf("-workers must be >= 1, got %d", c.workers))
	}
	if c.minChunk < 1 {
		errs = append(errs, fmt.Errorf("-min-chunk must be >= 1, got %d", c.minChunk))
	}
	if c.frameSamples < 0 {
		errs = append(errs, fmt.Errorf("-frame-samples must be >= 0, got %d", c.frameSamples))
	}
	if c.previewPath != "" && c.width < 1 {
		errs = append(errs, errors.New("-preview needs -width"))
	}
	if _, err := luma.Kernels.Lookup(c.kernel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c config) rendererOptions() ([]luma.Option, error) {
	k, err := luma.Kernels.Lookup(c.kernel)
	if err != nil {
		return nil, err
	}
	return []luma.Option{
		luma.WithKernel(k),
		luma.WithWorkers(c.workers),
		luma.WithMinChunk(c.minChunk),
	}, nil
}
