package pipefft

import "fmt"

// Transform streams src through the pipeline as whole blocks and collects
// the transformed stream into dst. The pipeline is reset first, fed one
// sample per tick, and then drained; src must hold a whole number of
// N-sample blocks, because tokens of a partial block stay buffered in the
// ingress until the block completes.
//
// Transform is a convenience wrapper over Step for block-oriented callers
// and tests; it adds no second math path.
func (p *Pipeline) Transform(dst, src []Sample) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	if len(src) == 0 || len(src)%p.cfg.N != 0 {
		return fmt.Errorf("%w: %d samples, block size %d",
			ErrLengthMismatch, len(src), p.cfg.N)
	}

	p.Reset()

	got := 0

	for _, s := range src {
		out, ok := p.Step(s, true)
		if ok {
			dst[got] = out
			got++
		}
	}

	// Drain: keep ticking without valid input until every token has
	// emerged. The bound covers the fill latency plus block-tail slack.
	limit := len(src) + fillBound(p.cfg)
	for i := 0; i < limit; i++ {
		if got == len(dst) {
			return nil
		}

		out, ok := p.Step(Sample{}, false)
		if ok {
			dst[got] = out
			got++
		}
	}

	if got != len(dst) {
		return fmt.Errorf("%w: %d of %d samples after drain", ErrStalled, got, len(dst))
	}

	return nil
}
