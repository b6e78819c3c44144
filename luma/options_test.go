package luma

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Workers != 1 {
		t.Fatalf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.MinChunk != DefaultMinChunk {
		t.Fatalf("MinChunk = %d, want %d", cfg.MinChunk, DefaultMinChunk)
	}
	if cfg.Kernel == nil || cfg.Kernel(5, 1, 1) != 5 {
		t.Fatal("default kernel should pass magnitude through")
	}
}

func TestApplyOptions(t *testing.T) {
	k := func(_, _, _ float32) float32 { return 42 }
	cfg := ApplyOptions(WithKernel(k), WithWorkers(6), WithMinChunk(128))
	if cfg.Workers != 6 || cfg.MinChunk != 128 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Kernel(0, 0, 0) != 42 {
		t.Fatal("WithKernel not applied")
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	cfg := ApplyOptions(WithKernel(nil), WithWorkers(0), WithWorkers(-3), WithMinChunk(0), nil)
	def := DefaultConfig()
	if cfg.Workers != def.Workers || cfg.MinChunk != def.MinChunk {
		t.Fatalf("invalid options changed config: %+v", cfg)
	}
	if cfg.Kernel == nil {
		t.Fatal("WithKernel(nil) cleared the kernel")
	}
}

func TestNewRendererConfig(t *testing.T) {
	r := NewRenderer(WithWorkers(3))
	if got := r.Config().Workers; got != 3 {
		t.Fatalf("Workers = %d, want 3", got)
	}
}
