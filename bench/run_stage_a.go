package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/ic-timon/quadix/bench/gen"
	"github.com/ic-timon/quadix/bench/metrics"
	"github.com/ic-timon/quadix/quadtree"
)

// Stage A sweeps leaf capacity over a fixed uniform point set.
func runStageA(opts stageOpts) {
	const pointCount = 200_000
	const queryRuns = 2_000
	const windowHalf = 25.0

	world := quadtree.NewRect(0, 0, 1000, 1000)
	capacities := []int{1, 2, 4, 8, 16, 32, 64}
	if opts.scenario != nil && len(opts.scenario.Capacities) > 0 {
		capacities = opts.scenario.Capacities
	}

	pts := gen.UniformPoints(pointCount, world, 42)
	windows := gen.UniformPoints(queryRuns, world, 7)

	var rows []metrics.StageARow
	for _, capacity := range capacities {
		cfg := quadtree.DefaultConfig()
		cfg.Capacity = capacity

		metrics.GC()
		qt := quadtree.New(world, cfg)
		t0 := time.Now()
		for _, p := range pts {
			if !qt.Insert(p) {
				opts.log.Fatal("insert refused", zap.Float64("x", p.X), zap.Float64("y", p.Y))
			}
		}
		buildDur := time.Since(t0)

		rec := metrics.NewLatencyRecorder()
		for _, w := range windows {
			win := quadtree.NewRect(w.X, w.Y, windowHalf, windowHalf)
			t1 := time.Now()
			qt.Query(win)
			rec.Record(time.Since(t1))
		}
		stats := rec.Stats()
		snap := metrics.Take()

		rows = append(rows, metrics.StageARow{
			Capacity:    capacity,
			PointCount:  pointCount,
			BuildDurMs:  float64(buildDur.Nanoseconds()) / 1e6,
			QueryP50Ms:  stats.P50Ms,
			QueryP99Ms:  stats.P99Ms,
			HeapAllocMB: float64(snap.HeapAlloc) / 1024 / 1024,
		})
		opts.log.Info("stage a",
			zap.Int("capacity", capacity),
			zap.String("points", humanize.Comma(int64(pointCount))),
			zap.Duration("build", buildDur),
			zap.Float64("query_p50_ms", stats.P50Ms),
			zap.Float64("query_p99_ms", stats.P99Ms),
			zap.String("heap", humanize.IBytes(snap.HeapAlloc)))
	}

	path := metrics.ReportPath("bench_report_stage_a_")
	if err := metrics.WriteStageACSV(rows, path); err != nil {
		opts.log.Fatal("write report", zap.Error(err))
	}
	opts.log.Info("report written", zap.String("path", path))
}
