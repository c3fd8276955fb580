// Package bench runs the serial kernel and the sampled-path-contraction
// pipeline over a range of input sizes and reports timings as CSV. The
// Euler-tour variant (Solver.RunEulerTour) is not run by this package.
package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"intervalcover/covering"
	"intervalcover/intervalgen"
)

// SampledResult is one row of the sampled-path-contraction CSV:
// (algorithm, n, threads, time_ms, num_selected, throughput_M_per_sec).
type SampledResult struct {
	Algorithm         string
	N                 int
	Threads           int
	TimeMS            float64
	NumSelected       int
	ThroughputMPerSec float64
}

// EulerResult is one row of the Euler-tour phase-breakdown CSV:
// (n, threads, find_furthest_ms, build_linklist_ms, scan_linklist_ms,
// extract_valid_ms, total_ms).
type EulerResult struct {
	N               int
	Threads         int
	FindFurthestMS  float64
	BuildLinkListMS float64
	ScanLinkListMS  float64
	ExtractValidMS  float64
	TotalMS         float64
}

// RunSampled benchmarks SerialGreedy and Solver.Run across sizes, logging
// progress through the context's zap logger.
func RunSampled(ctx context.Context, sizes []int) []SampledResult {
	log := ctxzap.Extract(ctx)
	threads := runtime.GOMAXPROCS(0)
	results := make([]SampledResult, 0, 2*len(sizes))

	for _, n := range sizes {
		log.Info("running sampled benchmark", zap.Int("n", n))
		l, r, err := intervalgen.Generate(n, intervalgen.DefaultParams())
		if err != nil {
			log.Error("generate failed", zap.Int("n", n), zap.Error(err))
			continue
		}
		accL := func(i int) int64 { return l[i] }
		accR := func(i int) int64 { return r[i] }

		results = append(results, timeSerial(n, threads, accL, accR))
		results = append(results, timeSampled(n, threads, accL, accR))
	}
	return results
}

func timeSerial(n, threads int, l, r covering.Accessor[int64]) SampledResult {
	start := time.Now()
	valid := covering.SerialGreedy(n, l, r)
	elapsed := time.Since(start)
	return sampledResult("serial", n, threads, elapsed, valid.Count())
}

func timeSampled(n, threads int, l, r covering.Accessor[int64]) SampledResult {
	s := covering.New(n, l, r)
	start := time.Now()
	_ = s.Run()
	elapsed := time.Since(start)
	return sampledResult("sampled_path_contraction", n, threads, elapsed, s.NumSelected())
}

func sampledResult(algorithm string, n, threads int, elapsed time.Duration, numSelected int) SampledResult {
	ms := float64(elapsed) / float64(time.Millisecond)
	throughput := 0.0
	if ms > 0 {
		throughput = float64(n) / ms / 1000.0
	}
	return SampledResult{
		Algorithm:         algorithm,
		N:                 n,
		Threads:           threads,
		TimeMS:            ms,
		NumSelected:       numSelected,
		ThroughputMPerSec: throughput,
	}
}

// RunEuler reports a per-phase breakdown in the Euler-tour CSV shape across
// sizes. The phases timed are those of the sampled-path-contraction
// pipeline, called through its exported free functions: find_furthest_ms
// is FurthestJumpParallel, build_linklist_ms is SelectSamples plus
// ConnectSamples, scan_linklist_ms is ScanSketch and extract_valid_ms is
// ExpandNonSampled. No Euler-tour linked list is built or timed.
func RunEuler(ctx context.Context, sizes []int) []EulerResult {
	log := ctxzap.Extract(ctx)
	threads := runtime.GOMAXPROCS(0)
	results := make([]EulerResult, 0, len(sizes))

	for _, n := range sizes {
		log.Info("running euler-tour benchmark", zap.Int("n", n))
		l, r, err := intervalgen.Generate(n, intervalgen.DefaultParams())
		if err != nil {
			log.Error("generate failed", zap.Int("n", n), zap.Error(err))
			continue
		}
		results = append(results, timeEulerPhases(n, threads, l, r))
	}
	return results
}

func timeEulerPhases(n, threads int, l, r []int64) EulerResult {
	accL := func(i int) int64 { return l[i] }
	accR := func(i int) int64 { return r[i] }

	totalStart := time.Now()

	furthestID := make([]int, n)
	t0 := time.Now()
	covering.FurthestJumpParallel(n, accL, accR, furthestID)
	findFurthest := time.Since(t0)

	t1 := time.Now()
	sampled, sampledID := covering.SelectSamples(n, covering.FurthestJumpBlockSize)
	nxt := covering.ConnectSamples(furthestID, sampled, sampledID)
	buildLinkList := time.Since(t1)

	t2 := time.Now()
	valid := covering.NewBitset(n)
	validSampledNode := covering.ScanSketch(nxt, n, valid)
	scanLinkList := time.Since(t2)

	t3 := time.Now()
	covering.ExpandNonSampled(furthestID, validSampledNode, nxt, valid)
	extractValid := time.Since(t3)

	total := time.Since(totalStart)

	toMS := func(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
	return EulerResult{
		N:               n,
		Threads:         threads,
		FindFurthestMS:  toMS(findFurthest),
		BuildLinkListMS: toMS(buildLinkList),
		ScanLinkListMS:  toMS(scanLinkList),
		ExtractValidMS:  toMS(extractValid),
		TotalMS:         toMS(total),
	}
}

// WriteSampledCSV writes results in the (algorithm,n,threads,time_ms,
// num_selected,throughput_M_per_sec) shape.
func WriteSampledCSV(w io.Writer, results []SampledResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"algorithm", "n", "threads", "time_ms", "num_selected", "throughput_M_per_sec"}); err != nil {
		return err
	}
	for _, res := range results {
		row := []string{
			res.Algorithm,
			fmt.Sprintf("%d", res.N),
			fmt.Sprintf("%d", res.Threads),
			fmt.Sprintf("%.4f", res.TimeMS),
			fmt.Sprintf("%d", res.NumSelected),
			fmt.Sprintf("%.4f", res.ThroughputMPerSec),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteEulerCSV writes results in the (n,threads,find_furthest_ms,
// build_linklist_ms,scan_linklist_ms,extract_valid_ms,total_ms) shape.
func WriteEulerCSV(w io.Writer, results []EulerResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"n", "threads", "find_furthest_ms", "build_linklist_ms", "scan_linklist_ms", "extract_valid_ms", "total_ms"}); err != nil {
		return err
	}
	for _, res := range results {
		row := []string{
			fmt.Sprintf("%d", res.N),
			fmt.Sprintf("%d", res.Threads),
			fmt.Sprintf("%.4f", res.FindFurthestMS),
			fmt.Sprintf("%.4f", res.BuildLinkListMS),
			fmt.Sprintf("%.4f", res.ScanLinkListMS),
			fmt.Sprintf("%.4f", res.ExtractValidMS),
			fmt.Sprintf("%.4f", res.TotalMS),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
