package stream

import "github.com/cwbudde/algo-pipefft/internal/fixed"

// Bank models a single-writer, single-reader memory bank with read-first
// semantics: a read and a write to the same address on the same tick return
// the pre-write value. Components never share a bank.
type Bank struct {
	data []fixed.Complex
}

// NewBank returns a zeroed bank with size entries.
func NewBank(size int) *Bank {
	return &Bank{data: make([]fixed.Complex, size)}
}

// Size returns the bank capacity in samples.
func (b *Bank) Size() int {
	return len(b.data)
}

// Read returns the value at addr.
func (b *Bank) Read(addr int) fixed.Complex {
	return b.data[addr]
}

// Write stores v at addr.
func (b *Bank) Write(addr int, v fixed.Complex) {
	b.data[addr] = v
}

// ReadWrite performs a same-tick read and write at addr, returning the
// pre-write value.
func (b *Bank) ReadWrite(addr int, v fixed.Complex) fixed.Complex {
	old := b.data[addr]
	b.data[addr] = v

	return old
}

// Reset clears the bank to zero.
func (b *Bank) Reset() {
	clear(b.data)
}
