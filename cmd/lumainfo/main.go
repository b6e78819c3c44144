// Command lumainfo renders raw magnitude and Hough buffers to luma and
// prints per-frame statistics.
//
// Usage:
//
//	lumainfo [flags] -magnitude mag.f32 -hough hough.f16x2
//
// The magnitude file holds little-endian binary32 samples and the Hough file
// holds little-endian binary16 (theta, rho) pairs, 4 bytes per sample each.
//
// Examples:
//
//	lumainfo -magnitude mag.f32 -hough hough.bin
//	lumainfo -magnitude mag.f32 -hough hough.bin -kernel theta -out luma.f32
//	lumainfo -magnitude mag.f32 -hough hough.bin -width 640 -preview luma.tiff -normalize
//	lumainfo -magnitude mag.f32 -hough hough.bin -frame-samples 307200 -workers 4
//	lumainfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lumainfo: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.list {
		printKernels(os.Stdout)
		return
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: lumainfo [flags] -magnitude FILE -hough FILE\n\n")
		fmt.Fprintf(w, "Renders raw gradient-magnitude and Hough buffers to luma and prints statistics.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  lumainfo -magnitude mag.f32 -hough hough.bin\n")
		fmt.Fprintf(w, "  lumainfo -magnitude mag.f32 -hough hough.bin -width 640 -preview luma.tiff\n")
		fmt.Fprintf(w, "  lumainfo -list\n")
	}
}
