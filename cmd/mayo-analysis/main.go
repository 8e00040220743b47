//go:build analysis

// Command mayo-analysis runs repeated keygen/sign cycles and renders
// a retry-count histogram plus timing summary, in the style of the
// teacher's cmd/analysis tool (same stats/histogram/go-echarts
// pipeline, retargeted from NTRU coefficient distributions to MAYO's
// signing retry loop of spec §4.6/§8 scenario 4).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"time"

	mayocore "mayo-signature/internal/mayo"
	"mayo-signature/internal/mayoerr"
	"mayo-signature/internal/params"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	IQR    float64 `json:"iqr"`
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	q1 := quantileSorted(cp, 0.25)
	q3 := quantileSorted(cp, 0.75)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	return summaryStats{
		Count: n, Mean: m, Std: std,
		Min: cp[0], Q1: q1, Median: quantileSorted(cp, 0.5), Q3: q3, Max: cp[n-1],
		IQR: q3 - q1,
	}
}

func quantileSorted(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return sorted[l]
	}
	w := pos - float64(l)
	return sorted[l]*(1-w) + sorted[r]*w
}

func freedmanDiaconisBins(x []float64) int {
	n := len(x)
	if n < 2 {
		return 1
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	iqr := quantileSorted(cp, 0.75) - quantileSorted(cp, 0.25)
	if iqr == 0 {
		if n < 50 {
			return n
		}
		return 50
	}
	bw := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
	if bw <= 0 {
		return 20
	}
	r := cp[n-1] - cp[0]
	k := int(math.Ceil(r / bw))
	if k < 1 {
		k = 1
	}
	if k > 100 {
		k = 100
	}
	return k
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	if nbins < 1 {
		nbins = 1
	}
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	nbins := freedmanDiaconisBins(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.2f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f, IQR=%.3f", stats.Count, stats.Mean, stats.Std, stats.Median, stats.IQR)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func main() {
	runs := flag.Int("runs", 200, "number of keygen+sign cycles")
	variant := flag.String("variant", "MAYO1", "variant name")
	outDir := flag.String("out", "mayo_analysis_report", "output directory for reports")
	flag.Parse()

	par, err := params.Lookup(*variant)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	var retryCounts, signNanos []float64
	var exhausted int
	for i := 0; i < *runs; i++ {
		csk, _, err := mayocore.CompactKeyGen(par, nil)
		if err != nil {
			log.Fatalf("run %d: keygen: %v", i, err)
		}
		msg := []byte(fmt.Sprintf("mayo-analysis-%d", i))

		start := time.Now()
		_, attempts, err := mayocore.SignWithAttempts(csk, msg, par)
		elapsed := time.Since(start)

		if err != nil {
			if mayoerr.Is(err, mayoerr.SignRetriesExhausted) {
				exhausted++
				log.Printf("run %d: retries exhausted after %d attempts", i, attempts)
				continue
			}
			log.Fatalf("run %d: sign: %v", i, err)
		}
		retryCounts = append(retryCounts, float64(attempts))
		signNanos = append(signNanos, float64(elapsed.Nanoseconds()))
	}

	retryStats := computeStats(retryCounts)
	timingStats := computeStats(signNanos)
	log.Printf("variant=%s runs=%d exhausted=%d mean_attempts=%.3f mean_sign_ns=%.0f",
		par.Name, *runs, exhausted, retryStats.Mean, timingStats.Mean)

	if err := saveJSON(fmt.Sprintf("%s/summary.json", *outDir), map[string]any{
		"variant":      par.Name,
		"runs":         *runs,
		"exhausted":    exhausted,
		"attempts":     retryStats,
		"sign_time_ns": timingStats,
	}); err != nil {
		log.Fatalf("save summary: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newHistogramChart(fmt.Sprintf("%s signing attempts per success", par.Name), retryCounts, retryStats),
		newHistogramChart(fmt.Sprintf("%s sign() wall time (ns)", par.Name), signNanos, timingStats),
	)
	f, err := os.Create(fmt.Sprintf("%s/report.html", *outDir))
	if err != nil {
		log.Fatalf("create report: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render report: %v", err)
	}
}
