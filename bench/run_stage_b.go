package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/ic-timon/quadix/bench/gen"
	"github.com/ic-timon/quadix/bench/metrics"
	"github.com/ic-timon/quadix/quadtree"
)

// pointIndex is the slice of the index API the harness needs; Tree and
// Grid both satisfy it.
type pointIndex interface {
	Insert(quadtree.Point) bool
	Query(quadtree.Rect) []quadtree.Point
	Len() int
}

// Stage B scales the clustered point count on a fixed configuration.
func runStageB(opts stageOpts) {
	const queryRuns = 2_000
	const windowHalf = 25.0

	world := quadtree.NewRect(0, 0, 1000, 1000)
	scales := []int{10_000, 50_000, 100_000, 500_000}
	clusters := 32
	if opts.scenario != nil {
		if len(opts.scenario.Scales) > 0 {
			scales = opts.scenario.Scales
		}
		if opts.scenario.Clusters > 0 {
			clusters = opts.scenario.Clusters
		}
	}

	windows := gen.UniformPoints(queryRuns, world, 7)

	var rows []metrics.StageBRow
	for _, n := range scales {
		opts.log.Info("stage b build",
			zap.String("points", humanize.Comma(int64(n))),
			zap.Int("cells", opts.cells))

		pts := gen.ClusteredPoints(n, clusters, world, int64(n))

		metrics.GC()
		var idx pointIndex
		if opts.cells > 1 {
			idx = quadtree.NewGrid(world, opts.cells, opts.cells, nil)
		} else {
			idx = quadtree.New(world, nil)
		}

		t0 := time.Now()
		for _, p := range pts {
			if !idx.Insert(p) {
				opts.log.Fatal("insert refused", zap.Float64("x", p.X), zap.Float64("y", p.Y))
			}
		}
		buildDur := time.Since(t0)

		rec := metrics.NewLatencyRecorder()
		for _, w := range windows {
			win := quadtree.NewRect(w.X, w.Y, windowHalf, windowHalf)
			t1 := time.Now()
			idx.Query(win)
			rec.Record(time.Since(t1))
		}
		stats := rec.Stats()

		metrics.GC()
		after := metrics.Take()

		rows = append(rows, metrics.StageBRow{
			PointCount: n,
			BuildDurMs: float64(buildDur.Nanoseconds()) / 1e6,
			QueryP50Ms: stats.P50Ms,
			QueryP99Ms: stats.P99Ms,
			HeapSysMB:  float64(after.HeapSys) / 1024 / 1024,
		})
		opts.log.Info("stage b",
			zap.String("points", humanize.Comma(int64(n))),
			zap.Duration("build", buildDur),
			zap.Float64("query_p50_ms", stats.P50Ms),
			zap.Float64("query_p99_ms", stats.P99Ms),
			zap.String("heap_sys", humanize.IBytes(after.HeapSys)))

		if closer, ok := idx.(interface{ Close() }); ok {
			closer.Close()
		}
	}

	path := metrics.ReportPath("bench_report_stage_b_")
	if opts.cells > 1 {
		path = metrics.ReportPath("bench_report_stage_b_grid_")
	}
	if err := metrics.WriteStageBCSV(rows, path); err != nil {
		opts.log.Fatal("write report", zap.Error(err))
	}
	opts.log.Info("report written", zap.String("path", path))
}
