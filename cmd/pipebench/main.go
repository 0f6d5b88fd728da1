// Command pipebench measures the streaming throughput and fill latency of
// configured FFT pipelines on the current machine.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	pipefft "github.com/cwbudde/algo-pipefft"
	"github.com/cwbudde/algo-pipefft/internal/cpu"
)

func main() {
	var (
		sizeList = flag.String("sizes", "256,1024,4096", "comma-separated transform sizes")
		policy   = flag.String("policy", "rounding", "rounding policy: unscaled, rounding, truncate")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inverse, all")
		blocks   = flag.Int("blocks", 64, "blocks streamed per measurement")
		width    = flag.Int("width", 16, "data width in bits")
		twWidth  = flag.Int("twiddle", 16, "twiddle width in bits")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	pol, ok := parsePolicy(*policy)
	if !ok {
		fmt.Printf("unknown policy %q\n", *policy)
		return
	}

	fmt.Println(cpu.DetectFeatures().Summary())
	fmt.Printf("policy=%s blocks=%d width=%d twiddle=%d\n", pol, *blocks, *width, *twWidth)
	fmt.Printf("%8s  %8s  %12s  %14s\n", "size", "mode", "fill(ticks)", "Msamples/s")

	rnd := rand.New(rand.NewSource(*seed))

	for _, n := range sizes {
		for _, dir := range resolveDirections(*mode) {
			benchmarkSize(rnd, n, dir, pol, *width, *twWidth, *blocks)
		}
	}
}

func benchmarkSize(rnd *rand.Rand, n int, dir pipefft.Direction,
	pol pipefft.Policy, width, twWidth, blocks int,
) {
	cfg := pipefft.Config{
		N:            n,
		DataWidth:    width,
		TwiddleWidth: twWidth,
		Policy:       pol,
		Mode:         pipefft.Continuous,
		Capability:   pipefft.BothDirections,
		Direction:    dir,
	}

	p, err := pipefft.New(cfg)
	if err != nil {
		fmt.Printf("%8d  %8s  error: %v\n", n, dir, err)
		return
	}

	amp := int64(1) << (width - 2)
	src := make([]pipefft.Sample, n*blocks)
	for i := range src {
		src[i] = pipefft.Sample{
			Re: rnd.Int63n(2*amp) - amp,
			Im: rnd.Int63n(2*amp) - amp,
		}
	}

	dst := make([]pipefft.Sample, len(src))

	// Warm up once so the fill measurement is cached.
	fill := p.Latency()

	if err := p.Transform(dst, src); err != nil {
		fmt.Printf("%8d  %8s  error: %v\n", n, dir, err)
		return
	}

	runtime.GC()

	start := time.Now()

	if err := p.Transform(dst, src); err != nil {
		fmt.Printf("%8d  %8s  error: %v\n", n, dir, err)
		return
	}

	elapsed := time.Since(start)
	rate := float64(len(src)) / elapsed.Seconds() / 1e6

	fmt.Printf("%8d  %8s  %12d  %14.2f\n", n, dir, fill, rate)
}

func parseSizes(list string) []int {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 4 {
			fmt.Printf("skipping invalid size %q\n", part)
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}

func parsePolicy(name string) (pipefft.Policy, bool) {
	switch name {
	case "unscaled":
		return pipefft.Unscaled, true
	case "rounding":
		return pipefft.Rounding, true
	case "truncate":
		return pipefft.Truncate, true
	default:
		return 0, false
	}
}

func resolveDirections(mode string) []pipefft.Direction {
	switch mode {
	case "forward":
		return []pipefft.Direction{pipefft.Forward}
	case "inverse":
		return []pipefft.Direction{pipefft.Inverse}
	case "all":
		return []pipefft.Direction{pipefft.Forward, pipefft.Inverse}
	default:
		fmt.Printf("unknown mode %q, using forward\n", mode)
		return []pipefft.Direction{pipefft.Forward}
	}
}
