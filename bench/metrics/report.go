// Package metrics 提供运行时指标采集
package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LatencyStats 延迟统计
type LatencyStats struct {
	P50Us float64
	P95Us float64
	P99Us float64
	AvgUs float64
	N     int
}

// KernelRow 阶段 kernel 单行数据
type KernelRow struct {
	Impl       string
	N          int
	Runs       int
	DotP50Us   float64
	DotP99Us   float64
	MDotsPerS  float64
	NsPerBlock float64
}

// MemRow 阶段 mem 单行数据
type MemRow struct {
	Layout      string
	N           int
	Runs        int
	DotP50Us    float64
	DotP99Us    float64
	HeapAllocMB float64
	GCDelta     uint32
}

// Percentile 计算切片中第 p 百分位（0-100），输入需已排序
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted)-1) * p / 100)
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// LatencyStatsFromDurations 从耗时列表计算 P50/P95/P99（微秒）
func LatencyStatsFromDurations(durations []time.Duration) LatencyStats {
	if len(durations) == 0 {
		return LatencyStats{}
	}
	us := make([]float64, len(durations))
	var sum float64
	for i, d := range durations {
		us[i] = float64(d.Nanoseconds()) / 1e3
		sum += us[i]
	}
	sort.Float64s(us)
	return LatencyStats{
		P50Us: Percentile(us, 50),
		P95Us: Percentile(us, 95),
		P99Us: Percentile(us, 99),
		AvgUs: sum / float64(len(us)),
		N:     len(us),
	}
}

// WriteKernelCSV 写入阶段 kernel 报告
func WriteKernelCSV(rows []KernelRow, path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Impl", "N", "Runs", "DotP50Us", "DotP99Us", "MDotsPerS", "NsPerBlock"})
	for _, r := range rows {
		w.Write([]string{
			r.Impl,
			fmt.Sprintf("%d", r.N),
			fmt.Sprintf("%d", r.Runs),
			fmt.Sprintf("%.2f", r.DotP50Us),
			fmt.Sprintf("%.2f", r.DotP99Us),
			fmt.Sprintf("%.2f", r.MDotsPerS),
			fmt.Sprintf("%.2f", r.NsPerBlock),
		})
	}
	w.Flush()
	return w.Error()
}

// WriteMemCSV 写入阶段 mem 报告
func WriteMemCSV(rows []MemRow, path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Layout", "N", "Runs", "DotP50Us", "DotP99Us", "HeapAllocMB", "GCDelta"})
	for _, r := range rows {
		w.Write([]string{
			r.Layout,
			fmt.Sprintf("%d", r.N),
			fmt.Sprintf("%d", r.Runs),
			fmt.Sprintf("%.2f", r.DotP50Us),
			fmt.Sprintf("%.2f", r.DotP99Us),
			fmt.Sprintf("%.2f", r.HeapAllocMB),
			fmt.Sprintf("%d", r.GCDelta),
		})
	}
	w.Flush()
	return w.Error()
}

// ReportDir 报告输出目录
const ReportDir = "report"

// ReportPath 生成 report/ 目录下带日期的报告路径
func ReportPath(prefix string) string {
	return filepath.Join(ReportDir, prefix+time.Now().Format("20060102")+".csv")
}

// WriteJSON 写入 JSON 报告（通用）
func WriteJSON(v interface{}, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
