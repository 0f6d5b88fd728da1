package stream

import "github.com/cwbudde/algo-pipefft/internal/fixed"

// The half-path adapters convert between the single interleaved stream at
// the pipeline boundary and the two-lane half-stream representation the
// butterfly chain operates on. The forward chain pairs samples n/2 apart,
// so its ingress buffers half a block (Splitter) and its egress interleaves
// adjacent pairs (Interleaver); the inverse chain pairs adjacent samples,
// so its ingress is a plain pairer (Deinterleaver) and its egress buffers
// half a block (Merger). All counters are driven by the valid strobe, so
// the adapters tolerate bursting input.

// Splitter is the forward ingress buffer: it stores the first n/2 samples
// of each block and then emits one (first-half, second-half) lane pair per
// valid input cycle. Its output strobe therefore spans exactly n/2
// contiguous cycles per block when the input is continuous.
type Splitter struct {
	n    int
	bank *Bank
	pos  int
}

// NewSplitter builds the ingress buffer for n-sample blocks.
func NewSplitter(n int) *Splitter {
	return &Splitter{n: n, bank: NewBank(n / 2)}
}

// Step advances the splitter by one clock tick.
func (sp *Splitter) Step(s fixed.Complex, valid bool) (fixed.Complex, fixed.Complex, bool) {
	if !valid {
		return fixed.Complex{}, fixed.Complex{}, false
	}

	half := sp.n / 2

	var (
		a, b fixed.Complex
		ok   bool
	)

	if sp.pos < half {
		sp.bank.Write(sp.pos, s)
	} else {
		a = sp.bank.Read(sp.pos - half)
		b = s
		ok = true
	}

	sp.pos++
	if sp.pos == sp.n {
		sp.pos = 0
	}

	return a, b, ok
}

// Reset clears the buffer and the block position.
func (sp *Splitter) Reset() {
	sp.bank.Reset()
	sp.pos = 0
}

// Interleaver is the forward egress buffer: the final stage emits adjacent
// pairs (positions 2t, 2t+1), which are queued into two single-writer banks
// and read back one sample per tick in natural order. Because pairs arrive
// in bursts of at most n/2 per block, the banks never overwrite an unread
// entry.
type Interleaver struct {
	n       int
	bankA   *Bank
	bankB   *Bank
	wpos    int // pair write address, [0, n/2)
	rpos    int // sample read position, [0, n)
	pending int // queued samples
}

// NewInterleaver builds the egress buffer for n-sample blocks.
func NewInterleaver(n int) *Interleaver {
	return &Interleaver{
		n:     n,
		bankA: NewBank(n / 2),
		bankB: NewBank(n / 2),
	}
}

// Step advances the interleaver by one clock tick. The write is applied
// before the read so a freshly arrived pair can start draining on the same
// tick.
func (il *Interleaver) Step(a, b fixed.Complex, valid bool) (fixed.Complex, bool) {
	if valid {
		il.bankA.Write(il.wpos, a)
		il.bankB.Write(il.wpos, b)

		il.wpos++
		if il.wpos == il.n/2 {
			il.wpos = 0
		}

		il.pending += 2
	}

	if il.pending == 0 {
		return fixed.Complex{}, false
	}

	var out fixed.Complex
	if il.rpos&1 == 0 {
		out = il.bankA.Read(il.rpos / 2)
	} else {
		out = il.bankB.Read(il.rpos / 2)
	}

	il.rpos++
	if il.rpos == il.n {
		il.rpos = 0
	}

	il.pending--

	return out, true
}

// Reset clears the banks, positions, and the queue count.
func (il *Interleaver) Reset() {
	il.bankA.Reset()
	il.bankB.Reset()
	il.wpos = 0
	il.rpos = 0
	il.pending = 0
}

// Deinterleaver is the inverse ingress adapter: it pairs each even-offset
// sample with the following odd-offset sample. One holding register, no
// memory bank.
type Deinterleaver struct {
	held fixed.Complex
	have bool
}

// NewDeinterleaver builds the adapter.
func NewDeinterleaver() *Deinterleaver {
	return &Deinterleaver{}
}

// Step advances the adapter by one clock tick.
func (di *Deinterleaver) Step(s fixed.Complex, valid bool) (fixed.Complex, fixed.Complex, bool) {
	if !valid {
		return fixed.Complex{}, fixed.Complex{}, false
	}

	if !di.have {
		di.held = s
		di.have = true

		return fixed.Complex{}, fixed.Complex{}, false
	}

	di.have = false

	return di.held, s, true
}

// Reset drops any held sample.
func (di *Deinterleaver) Reset() {
	di.held = fixed.Complex{}
	di.have = false
}

// Merger is the inverse egress buffer: the final stage emits (first-half,
// second-half) lane pairs, which are collected into ping-pong half-block
// banks and read out as one natural-order block of n samples, one per
// tick, once the block is complete. The first-block gating falls out of
// the completed-block count.
type Merger struct {
	n  int
	lo [2]*Bank
	hi [2]*Bank

	wpos  int
	wblk  int
	rpos  int
	rblk  int
	avail int
}

// NewMerger builds the egress buffer for n-sample blocks.
func NewMerger(n int) *Merger {
	return &Merger{
		n:  n,
		lo: [2]*Bank{NewBank(n / 2), NewBank(n / 2)},
		hi: [2]*Bank{NewBank(n / 2), NewBank(n / 2)},
	}
}

// Step advances the merger by one clock tick.
func (mg *Merger) Step(a, b fixed.Complex, valid bool) (fixed.Complex, bool) {
	if valid {
		mg.lo[mg.wblk&1].Write(mg.wpos, a)
		mg.hi[mg.wblk&1].Write(mg.wpos, b)

		mg.wpos++
		if mg.wpos == mg.n/2 {
			mg.wpos = 0
			mg.wblk++
			mg.avail++
		}
	}

	if mg.avail == 0 {
		return fixed.Complex{}, false
	}

	var out fixed.Complex
	if mg.rpos < mg.n/2 {
		out = mg.lo[mg.rblk&1].Read(mg.rpos)
	} else {
		out = mg.hi[mg.rblk&1].Read(mg.rpos - mg.n/2)
	}

	mg.rpos++
	if mg.rpos == mg.n {
		mg.rpos = 0
		mg.rblk++
		mg.avail--
	}

	return out, true
}

// Reset clears the banks and counters.
func (mg *Merger) Reset() {
	for i := 0; i < 2; i++ {
		mg.lo[i].Reset()
		mg.hi[i].Reset()
	}

	mg.wpos = 0
	mg.wblk = 0
	mg.rpos = 0
	mg.rblk = 0
	mg.avail = 0
}
