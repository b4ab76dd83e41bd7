// 阶段 mem: 对比 heap / off-heap / mmap 三种内存布局下的核函数延迟与 GC 压力
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ic-timon/soa-dot/bench/gen"
	"github.com/ic-timon/soa-dot/bench/metrics"
	"github.com/ic-timon/soa-dot/soa"
)

func runMem(opts stageOpts) {
	const runs = 200
	n := opts.n

	var rows []metrics.MemRow

	// 1. 堆内存
	fmt.Printf("阶段 mem: heap N=%d\n", n)
	heapSet, err := gen.RandomCoords(n, 12345, false)
	if err != nil {
		panic(err)
	}
	rows = append(rows, memRow("heap", heapSet, n, runs))

	// 2. Off-heap（无 CGO 时退化为 heap）
	fmt.Printf("阶段 mem: offheap N=%d\n", n)
	offSet, err := gen.RandomCoords(n, 12345, true)
	if err != nil {
		panic(err)
	}
	rows = append(rows, memRow("offheap", offSet, n, runs))

	// 3. mmap：SaveToAtomic -> OpenCoords 只读映射
	fmt.Printf("阶段 mem: mmap N=%d\n", n)
	tmpPath := filepath.Join(os.TempDir(), "soa-dot-stage-mem.bin")
	if err := heapSet.SaveToAtomic(tmpPath); err != nil {
		panic(err)
	}
	defer os.Remove(tmpPath)
	mapSet, err := soa.OpenCoords(tmpPath)
	if err != nil {
		panic(err)
	}
	rows = append(rows, memRow("mmap", mapSet, n, runs))

	heapSet.Close()
	offSet.Close()
	mapSet.Close()

	path := metrics.ReportPath("bench_report_mem_")
	if err := metrics.WriteMemCSV(rows, path); err != nil {
		panic(err)
	}
	fmt.Printf("报告已写入 %s\n", path)
}

func memRow(layout string, c *soa.Coords, n, runs int) metrics.MemRow {
	metrics.GC()
	before := metrics.Take()

	durations := make([]time.Duration, runs)
	for i := 0; i < runs; i++ {
		t0 := time.Now()
		if !c.Dot() {
			panic("dot failed")
		}
		durations[i] = time.Since(t0)
	}
	stats := metrics.LatencyStatsFromDurations(durations)

	after := metrics.Take()
	_, gcDelta := metrics.Diff(before, after)

	row := metrics.MemRow{
		Layout:      layout,
		N:           n,
		Runs:        runs,
		DotP50Us:    stats.P50Us,
		DotP99Us:    stats.P99Us,
		HeapAllocMB: float64(after.HeapAlloc) / 1024 / 1024,
		GCDelta:     gcDelta,
	}
	fmt.Printf("  %s P50=%.2fus P99=%.2fus Heap=%.1fMB GC=%d\n",
		layout, row.DotP50Us, row.DotP99Us, row.HeapAllocMB, row.GCDelta)
	return row
}
