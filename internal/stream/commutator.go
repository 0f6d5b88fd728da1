package stream

import "github.com/cwbudde/algo-pipefft/internal/fixed"

// Commutator is the cross-commutation buffer between two consecutive
// butterfly stages. It reorders the two half-rate lanes so the downstream
// stage receives operands at its own pairing distance, using two memory
// banks of depth entries each and a slot counter that resets every n/2
// valid cycles.
//
// The structure is the same for both transform directions: lane B is
// delayed by depth slots through one bank, the lanes are crossed whenever
// the counter's bank-select bit (slot/depth) is odd, and the post-switch
// lane A is delayed by depth slots through the other bank. depth is the
// smaller of the upstream and downstream pairing distances. The first
// depth slots only fill the banks; a one-shot latch opens the output valid
// after that, which prevents the read-before-write race on the first
// block.
//
// Over a block of n/2 slots the last depth outputs depend only on banked
// data, so when the input strobe goes idle at a block boundary the buffer
// drains them on its own; the corresponding writes are replayed without
// re-emission when the next block arrives.
type Commutator struct {
	n     int
	depth int
	mode  Mode

	delayA *Bank // post-switch lane A delay
	delayB *Bank // lane B input delay

	wcnt      int  // write slot counter, [0, n/2)
	lead      int  // outputs drained ahead of the write counter, [0, depth]
	written   int  // slots written toward the first-block latch
	primed    bool // first-block latch: output valid may assert
	completed bool // a block just finished and no slot of the next one is written
	started   bool // continuous mode: first valid seen
}

// NewCommutator builds the buffer for a size-n transform with the given
// bank depth (the downstream pairing distance for the forward chain, the
// upstream one for the inverse chain).
func NewCommutator(n, depth int, mode Mode) *Commutator {
	return &Commutator{
		n:      n,
		depth:  depth,
		mode:   mode,
		delayA: NewBank(depth),
		delayB: NewBank(depth),
	}
}

// Depth returns the bank depth in samples.
func (c *Commutator) Depth() int {
	return c.depth
}

// Step advances the buffer by one clock tick. In bursting mode the slot
// counter advances only on valid inputs; in continuous mode it free-runs
// within a block once the block has started.
func (c *Commutator) Step(a, b fixed.Complex, valid bool) (fixed.Complex, fixed.Complex, bool) {
	half := c.n / 2

	slotActive := valid
	if c.mode == Continuous {
		if valid {
			c.started = true
		}
		if c.started && c.wcnt != 0 {
			slotActive = true
		}
	}

	if !slotActive {
		return c.drain()
	}

	slot := c.wcnt
	addr := slot % c.depth
	cross := (slot/c.depth)&1 == 1

	bOld := c.delayB.ReadWrite(addr, b)

	var sa, sb fixed.Complex
	if cross {
		sa, sb = bOld, a
	} else {
		sa, sb = a, bOld
	}

	aOld := c.delayA.ReadWrite(addr, sa)

	emit := false
	switch {
	case c.lead > 0:
		// This slot's output was already drained during a gap; the
		// write above replays the bank side only.
		c.lead--
	case c.primed:
		emit = true
	}

	if !c.primed {
		c.written++
		if c.written == c.depth {
			c.primed = true
		}
	}

	c.completed = false
	c.wcnt++
	if c.wcnt == half {
		c.wcnt = 0
		c.completed = true
	}

	if !emit {
		return fixed.Complex{}, fixed.Complex{}, false
	}

	return aOld, sb, true
}

// drain emits one of the depth block-tail outputs during an idle tick. The
// tail slots sit in the even bank-select phase, so both lanes come from the
// banks and no live input is needed.
func (c *Commutator) drain() (fixed.Complex, fixed.Complex, bool) {
	if !c.primed || !c.completed || c.wcnt != 0 || c.lead >= c.depth {
		return fixed.Complex{}, fixed.Complex{}, false
	}

	addr := c.lead
	outA := c.delayA.Read(addr)
	outB := c.delayB.Read(addr)
	c.lead++

	return outA, outB, true
}

// Reset returns the buffer to its post-reset state: counters zero, latches
// closed, banks cleared.
func (c *Commutator) Reset() {
	c.delayA.Reset()
	c.delayB.Reset()
	c.wcnt = 0
	c.lead = 0
	c.written = 0
	c.primed = false
	c.completed = false
	c.started = false
}
