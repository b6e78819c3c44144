package luma

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-houghviz/view"
)

// Renderer applies a kernel to every sample of a magnitude/Hough buffer
// pair. A Renderer holds only configuration and may be shared between
// goroutines.
type Renderer struct {
	cfg Config
}

// NewRenderer returns a Renderer configured by opts.
func NewRenderer(opts ...Option) *Renderer {
	cfg := ApplyOptions(opts...)
	if cfg.Kernel == nil {
		cfg.Kernel = Magnitude
	}
	return &Renderer{cfg: cfg}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Draw decodes magnitude as binary32 samples and hough as binary16
// (theta, rho) pairs and returns a fresh luma slice with one value per
// sample. Trailing bytes that do not fill a sample are ignored. If the
// sample counts differ, Draw returns a *LengthMismatchError and no output.
func (r *Renderer) Draw(magnitude, hough []byte) ([]float32, error) {
	mag, hv, err := views(magnitude, hough)
	if err != nil {
		return nil, err
	}
	out := make([]float32, mag.Len())
	r.run(out, mag, hv)
	return out, nil
}

// DrawInto is Draw writing into dst, which must hold at least the sample
// count. It returns the number of samples written; dst beyond that is left
// untouched.
func (r *Renderer) DrawInto(dst []float32, magnitude, hough []byte) (int, error) {
	mag, hv, err := views(magnitude, hough)
	if err != nil {
		return 0, err
	}
	n := mag.Len()
	if len(dst) < n {
		return 0, ErrShortOutput
	}
	r.run(dst[:n], mag, hv)
	return n, nil
}

// Draw renders with a Renderer built from opts.
func Draw(magnitude, hough []byte, opts ...Option) ([]float32, error) {
	return NewRenderer(opts...).Draw(magnitude, hough)
}

// Decode returns the decoded sample at index i of a buffer pair.
// Panics if i is out of range for either buffer.
func Decode(magnitude, hough []byte, i int) Sample {
	theta, rho := view.NewHalf2View(hough).At(i)
	return Sample{
		Magnitude: view.NewFloatView(magnitude).At(i),
		Theta:     theta,
		Rho:       rho,
	}
}

func views(magnitude, hough []byte) (view.FloatView, view.Half2View, error) {
	mag := view.NewFloatView(magnitude)
	hv := view.NewHalf2View(hough)
	if mag.Len() != hv.Len() {
		return mag, hv, &LengthMismatchError{Magnitude: mag.Len(), Hough: hv.Len()}
	}
	return mag, hv, nil
}

// run fills dst, whose length equals the common sample count.
func (r *Renderer) run(dst []float32, mag view.FloatView, hough view.Half2View) {
	n := len(dst)
	chunks := chunkCount(n, r.cfg.Workers, r.cfg.MinChunk)
	if chunks <= 1 {
		fill(r.cfg.Kernel, dst, mag, hough, 0, n)
		return
	}

	size := (n + chunks - 1) / chunks
	var g errgroup.Group
	g.SetLimit(r.cfg.Workers)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		g.Go(func() error {
			fill(r.cfg.Kernel, dst, mag, hough, start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// chunkCount splits n samples into at most workers ranges of at least
// minChunk samples each.
func chunkCount(n, workers, minChunk int) int {
	if workers <= 1 || n == 0 {
		return 1
	}
	if minChunk <= 0 {
		minChunk = 1
	}
	return max(1, min(workers, n/minChunk))
}

// fill writes dst[start:end]. Each worker touches only its own range.
func fill(k Kernel, dst []float32, mag view.FloatView, hough view.Half2View, start, end int) {
	for i := start; i < end; i++ {
		theta, rho := hough.At(i)
		dst[i] = k(mag.At(i), theta, rho)
	}
}
