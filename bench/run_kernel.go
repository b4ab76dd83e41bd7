// 阶段 kernel: 批量点积核函数吞吐（多批量规模，延迟分位 + 吞吐）
package main

import (
	"fmt"
	"time"

	"github.com/ic-timon/soa-dot/bench/gen"
	"github.com/ic-timon/soa-dot/bench/metrics"
	"github.com/ic-timon/soa-dot/simd"
)

func runKernel(opts stageOpts) {
	const runs = 200

	sizes := []int{64, 1024, 16384}
	if opts.n > 0 && opts.n%simd.Lanes == 0 {
		sizes = append(sizes, opts.n)
	}

	var rows []metrics.KernelRow
	for _, n := range sizes {
		fmt.Printf("阶段 kernel: Impl=%s N=%d\n", simd.DotBatchSoADesc(), n)
		c, err := gen.RandomCoords(n, 42, opts.offheap)
		if err != nil {
			panic(err)
		}

		// 预热
		for i := 0; i < 10; i++ {
			c.Dot()
		}

		durations := make([]time.Duration, runs)
		t0 := time.Now()
		for i := 0; i < runs; i++ {
			t1 := time.Now()
			if !c.Dot() {
				panic("dot failed")
			}
			durations[i] = time.Since(t1)
		}
		elapsed := time.Since(t0)
		stats := metrics.LatencyStatsFromDurations(durations)

		totalDots := float64(n) * runs
		rows = append(rows, metrics.KernelRow{
			Impl:       simd.DotBatchSoADesc(),
			N:          n,
			Runs:       runs,
			DotP50Us:   stats.P50Us,
			DotP99Us:   stats.P99Us,
			MDotsPerS:  totalDots / elapsed.Seconds() / 1e6,
			NsPerBlock: float64(elapsed.Nanoseconds()) / (totalDots / simd.Lanes),
		})
		fmt.Printf("  P50=%.2fus P99=%.2fus 吞吐=%.1f M dots/s\n",
			stats.P50Us, stats.P99Us, rows[len(rows)-1].MDotsPerS)
		c.Close()
	}

	path := metrics.ReportPath("bench_report_kernel_")
	if err := metrics.WriteKernelCSV(rows, path); err != nil {
		panic(err)
	}
	fmt.Printf("报告已写入 %s\n", path)
}
