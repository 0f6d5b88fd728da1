package fxmath

import "testing"

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      int
		nbits  int
		expect int
	}{
		{"zero value", 0, 3, 0},
		{"zero nbits", 6, 0, 0},

		{"1 bit: 0", 0, 1, 0},
		{"1 bit: 1", 1, 1, 1},

		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},
		{"2 bits: 0b11", 0b11, 2, 0b11},

		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b011", 0b011, 3, 0b110},
		{"3 bits: 0b110 (docstring example)", 0b110, 3, 0b011},

		{"4 bits: 0b0011", 0b0011, 4, 0b1100},
		{"4 bits: 0b0101", 0b0101, 4, 0b1010},

		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"8 bits: 0xFF", 0xFF, 8, 0xFF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ReverseBits(tt.x, tt.nbits); got != tt.expect {
				t.Errorf("ReverseBits(%d, %d) = %d, want %d", tt.x, tt.nbits, got, tt.expect)
			}
		})
	}
}

func TestReverseBitsInvolution(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{1, 2, 3, 4, 5, 8, 10} {
		n := 1 << bits
		for x := 0; x < n; x++ {
			if got := ReverseBits(ReverseBits(x, bits), bits); got != x {
				t.Fatalf("bits=%d: double reversal of %d = %d", bits, x, got)
			}
		}
	}
}

func TestComputeBitReversalIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		expect []int
	}{
		{4, []int{0, 2, 1, 3}},
		{8, []int{0, 4, 2, 6, 1, 5, 3, 7}},
		{16, []int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}},
	}

	for _, tt := range tests {
		got := ComputeBitReversalIndices(tt.n)
		if len(got) != len(tt.expect) {
			t.Fatalf("n=%d: length %d, want %d", tt.n, len(got), len(tt.expect))
		}

		for i := range got {
			if got[i] != tt.expect[i] {
				t.Errorf("n=%d: index %d = %d, want %d", tt.n, i, got[i], tt.expect[i])
			}
		}
	}

	if ComputeBitReversalIndices(0) != nil {
		t.Error("n=0: expected nil")
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for bits := 0; bits < 20; bits++ {
		if got := Log2(1 << bits); got != bits {
			t.Errorf("Log2(%d) = %d, want %d", 1<<bits, got, bits)
		}
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		expect bool
	}{
		{-4, false}, {0, false}, {1, true}, {2, true}, {3, false},
		{4, true}, {6, false}, {1024, true}, {1025, false},
	}

	for _, tt := range tests {
		if got := IsPowerOf2(tt.n); got != tt.expect {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", tt.n, got, tt.expect)
		}
	}
}
