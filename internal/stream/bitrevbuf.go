package stream

import (
	"github.com/cwbudde/algo-pipefft/internal/fixed"
	"github.com/cwbudde/algo-pipefft/internal/fxmath"
)

// BitReverserPingPongMin is the transform size at which the composer
// switches the reorderer from one in-place bank to two ping-pong banks.
// Below it the single bank wins on memory; above it the second bank buys
// back the tighter read-after-write timing of large blocks.
const BitReverserPingPongMin = 2048

// BitReverser reorders an interleaved stream of n-sample blocks between
// natural and bit-reversed order. Samples are written at the running block
// offset and read back at the bit-reversed offset, so sample r of an output
// block carries input sample rev(r) of the same block; the same permutation
// serves the forward egress (natural position to natural frequency) and
// the inverse ingress (natural time to decimation-in-time order).
//
// With a single bank, blocks alternate between natural-write/reversed-read
// and reversed-write/natural-read so that back-to-back blocks reuse the
// bank in place: a colliding read and write always land on the same
// address on the same tick, where read-first semantics return the old
// block's value. With ping-pong banks, writes of block k and reads of
// block k-1 target different banks and never collide.
//
// Output valid opens only after the first full block has been written and
// thereafter asserts one-for-one with reads.
type BitReverser struct {
	n        int
	rev      []int // address reversal ROM, rev[i] = bit-reverse of i
	pingPong bool

	banks [2]*Bank

	wpos  int
	wblk  int
	rpos  int
	rblk  int
	avail int // completed blocks not yet fully read
}

// NewBitReverser builds a reorderer for n-sample blocks, selecting the
// bank structure by size.
func NewBitReverser(n int) *BitReverser {
	return NewBitReverserBanks(n, n >= BitReverserPingPongMin)
}

// NewBitReverserBanks builds a reorderer with an explicit bank structure.
func NewBitReverserBanks(n int, pingPong bool) *BitReverser {
	r := &BitReverser{
		n:        n,
		rev:      fxmath.ComputeBitReversalIndices(n),
		pingPong: pingPong,
	}

	r.banks[0] = NewBank(n)
	if pingPong {
		r.banks[1] = NewBank(n)
	}

	return r
}

// Step advances the reorderer by one clock tick: the read of the oldest
// completed block is evaluated before this tick's write is applied.
func (r *BitReverser) Step(s fixed.Complex, valid bool) (fixed.Complex, bool) {
	var (
		out fixed.Complex
		ok  bool
	)

	if r.avail > 0 {
		out = r.readBank().Read(r.readAddr())
		ok = true

		r.rpos++
		if r.rpos == r.n {
			r.rpos = 0
			r.rblk++
			r.avail--
		}
	}

	if valid {
		r.writeBank().Write(r.writeAddr(), s)

		r.wpos++
		if r.wpos == r.n {
			r.wpos = 0
			r.wblk++
			r.avail++
		}
	}

	return out, ok
}

func (r *BitReverser) writeBank() *Bank {
	if r.pingPong {
		return r.banks[r.wblk&1]
	}

	return r.banks[0]
}

func (r *BitReverser) readBank() *Bank {
	if r.pingPong {
		return r.banks[r.rblk&1]
	}

	return r.banks[0]
}

func (r *BitReverser) writeAddr() int {
	if !r.pingPong && r.wblk&1 == 1 {
		return r.rev[r.wpos]
	}

	return r.wpos
}

func (r *BitReverser) readAddr() int {
	if !r.pingPong && r.rblk&1 == 1 {
		return r.rpos
	}

	return r.rev[r.rpos]
}

// Reset clears counters, the block-written latch, and both banks.
func (r *BitReverser) Reset() {
	r.banks[0].Reset()
	if r.banks[1] != nil {
		r.banks[1].Reset()
	}

	r.wpos = 0
	r.wblk = 0
	r.rpos = 0
	r.rblk = 0
	r.avail = 0
}
