package pipefft

import "testing"

// TestCoreBypassLanes drives the half-path chain directly, butterflies
// bypassed: forward lanes (t, t+N/2) must come out as the adjacent pairs
// (2t, 2t+1), which is the commutation network in isolation.
func TestCoreBypassLanes(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.N = 8
	cfg.Bypass = true

	c, err := NewCore(cfg)
	if err != nil {
		t.Fatalf("NewCore: %v", err)
	}

	if c.N() != 8 || c.Stages() != 3 || c.Direction() != Forward {
		t.Fatalf("accessors: N=%d stages=%d dir=%s", c.N(), c.Stages(), c.Direction())
	}

	var outA, outB []Sample
	for tick := 0; tick < 32 && len(outA) < 4; tick++ {
		var a, b Sample
		valid := tick < 4
		if valid {
			a = Sample{Re: int64(tick)}
			b = Sample{Re: int64(tick + 4)}
		}

		oa, ob, ok := c.Step(a, b, valid)
		if ok {
			outA = append(outA, oa)
			outB = append(outB, ob)
		}
	}

	if len(outA) != 4 {
		t.Fatalf("collected %d pairs, want 4", len(outA))
	}

	for i := range outA {
		if outA[i].Re != int64(2*i) || outB[i].Re != int64(2*i+1) {
			t.Errorf("pair %d: got (%d, %d), want (%d, %d)",
				i, outA[i].Re, outB[i].Re, 2*i, 2*i+1)
		}
	}
}

func TestCoreReset(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.N = 8
	cfg.Bypass = true

	c, err := NewCore(cfg)
	if err != nil {
		t.Fatalf("NewCore: %v", err)
	}

	// Leave tokens in flight, then reset.
	for tick := 0; tick < 3; tick++ {
		c.Step(Sample{Re: 99}, Sample{Re: 99}, true)
	}

	c.Reset()

	for tick := 0; tick < 2; tick++ {
		if _, _, ok := c.Step(Sample{}, Sample{}, false); ok {
			t.Fatalf("tick %d after Reset: stale valid token", tick)
		}
	}
}
