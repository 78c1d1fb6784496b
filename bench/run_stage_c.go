package main

import (
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ic-timon/quadix/bench/gen"
	"github.com/ic-timon/quadix/bench/metrics"
	"github.com/ic-timon/quadix/quadtree"
)

// Stage C drives concurrent windowed queries against a prebuilt index
// and measures throughput and tail latency per concurrency level.
func runStageC(opts stageOpts) {
	const pointCount = 200_000
	const totalRequests = 20_000
	const windowHalf = 25.0

	world := quadtree.NewRect(0, 0, 1000, 1000)
	concurrencies := []int{1, 4, 8, 16, 32}
	if opts.scenario != nil && len(opts.scenario.Concurrencies) > 0 {
		concurrencies = opts.scenario.Concurrencies
	}

	pts := gen.UniformPoints(pointCount, world, 12345)
	centers := gen.UniformPoints(totalRequests, world, 54321)
	windows := make([]quadtree.Rect, totalRequests)
	for i, c := range centers {
		windows[i] = quadtree.NewRect(c.X, c.Y, windowHalf, windowHalf)
	}

	var idx pointIndex
	if opts.cells > 1 {
		g := quadtree.NewGrid(world, opts.cells, opts.cells, nil)
		defer g.Close()
		idx = g
	} else {
		cfg := quadtree.DefaultConfig()
		cfg.QueryPoolWorkers = runtime.NumCPU()
		qt := quadtree.New(world, cfg)
		defer qt.Close()
		idx = qt
	}

	opts.log.Info("stage c build", zap.Int("points", pointCount), zap.Int("cells", opts.cells))
	t0 := time.Now()
	for _, p := range pts {
		if !idx.Insert(p) {
			opts.log.Fatal("insert refused", zap.Float64("x", p.X), zap.Float64("y", p.Y))
		}
	}
	opts.log.Info("stage c built", zap.Duration("build", time.Since(t0)))

	var rows []metrics.StageCRow
	for _, concurrency := range concurrencies {
		durations := make([]time.Duration, totalRequests)
		reqPerWorker := totalRequests / concurrency

		var eg errgroup.Group
		start := time.Now()
		for c := 0; c < concurrency; c++ {
			worker := c
			eg.Go(func() error {
				base := worker * reqPerWorker
				for i := 0; i < reqPerWorker && base+i < totalRequests; i++ {
					t1 := time.Now()
					idx.Query(windows[base+i])
					durations[base+i] = time.Since(t1)
				}
				return nil
			})
		}
		_ = eg.Wait()
		elapsed := time.Since(start).Seconds()

		rec := metrics.NewLatencyRecorder()
		served := 0
		for _, d := range durations {
			if d > 0 {
				rec.Record(d)
				served++
			}
		}
		stats := rec.Stats()
		qps := float64(served) / elapsed
		ratio := 1.0
		if stats.P50Ms > 0 {
			ratio = stats.P99Ms / stats.P50Ms
		}

		snap := metrics.Take()
		rows = append(rows, metrics.StageCRow{
			Concurrency:  concurrency,
			Cells:        opts.cells,
			PointCount:   pointCount,
			QPS:          qps,
			QueryP50Ms:   stats.P50Ms,
			QueryP99Ms:   stats.P99Ms,
			NumGoroutine: snap.NumGoroutine,
			P99P50Ratio:  ratio,
		})
		opts.log.Info("stage c",
			zap.Int("concurrency", concurrency),
			zap.Float64("qps", qps),
			zap.Float64("query_p50_ms", stats.P50Ms),
			zap.Float64("query_p99_ms", stats.P99Ms),
			zap.Float64("p99_p50_ratio", ratio),
			zap.Int("goroutines", snap.NumGoroutine))
	}

	path := metrics.ReportPath("bench_report_stage_c_")
	if opts.cells > 1 {
		path = metrics.ReportPath("bench_report_stage_c_grid_")
	}
	if err := metrics.WriteStageCCSV(rows, path); err != nil {
		opts.log.Fatal("write report", zap.Error(err))
	}
	opts.log.Info("report written", zap.String("path", path))
}
