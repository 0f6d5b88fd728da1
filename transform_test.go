package pipefft

import (
	"errors"
	"math/rand"
	"testing"
)

func TestTransformArgumentErrors(t *testing.T) {
	t.Parallel()

	p, err := New(validConfig()) // N=16
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := make([]Sample, 16)

	tests := []struct {
		name    string
		dst     []Sample
		src     []Sample
		wantErr error
	}{
		{"nil dst", nil, block, ErrNilSlice},
		{"nil src", block, nil, ErrNilSlice},
		{"length mismatch", make([]Sample, 8), block, ErrLengthMismatch},
		{"empty", []Sample{}, []Sample{}, ErrLengthMismatch},
		{"partial block", make([]Sample, 12), make([]Sample, 12), ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Transform(tt.dst, tt.src); !errors.Is(err, tt.wantErr) {
				t.Errorf("Transform = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestTransformMultiBlock checks block independence: streaming three blocks
// back to back gives the same per-block results as three separate runs.
func TestTransformMultiBlock(t *testing.T) {
	t.Parallel()

	const n = 8

	cfg := validConfig()
	cfg.N = n

	r := rand.New(rand.NewSource(23))
	src := randomBlock(r, 3*n, 1<<10)

	streamed := mustTransform(t, cfg, src)

	for blk := 0; blk < 3; blk++ {
		single := mustTransform(t, cfg, src[blk*n:(blk+1)*n])

		for i, want := range single {
			if got := streamed[blk*n+i]; got != want {
				t.Errorf("block %d sample %d: streamed %v, isolated %v", blk, i, got, want)
			}
		}
	}
}

func BenchmarkPipelineStep(b *testing.B) {
	cfg := validConfig()
	cfg.N = 1024
	cfg.Mode = Continuous

	p, err := New(cfg)
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	s := Sample{Re: 1 << 10, Im: -(1 << 9)}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.Step(s, true)
	}
}

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(sizeName(n), func(b *testing.B) {
			cfg := validConfig()
			cfg.N = n

			p, err := New(cfg)
			if err != nil {
				b.Fatalf("New: %v", err)
			}

			r := rand.New(rand.NewSource(1))
			src := randomBlock(r, n, 1<<10)
			dst := make([]Sample, n)

			b.SetBytes(int64(n * 16))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := p.Transform(dst, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
