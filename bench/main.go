// Benchmark entry: -stage a|b|c
package main

import (
	"flag"

	"go.uber.org/zap"
)

type stageOpts struct {
	cells    int
	scenario *scenario
	log      *zap.Logger
}

func main() {
	stage := flag.String("stage", "", "benchmark stage: a (capacity sweep) | b (scale) | c (concurrent queries)")
	scenarioPath := flag.String("scenario", "", "optional YAML scenario file overriding stage parameters")
	cells := flag.Int("cells", 1, "grid cells per axis; >1 benchmarks a Grid instead of a single Tree (stage b/c)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var sc *scenario
	if *scenarioPath != "" {
		sc, err = loadScenario(*scenarioPath)
		if err != nil {
			logger.Fatal("load scenario", zap.Error(err))
		}
	}

	opts := stageOpts{cells: *cells, scenario: sc, log: logger}
	switch *stage {
	case "a":
		runStageA(opts)
	case "b":
		runStageB(opts)
	case "c":
		runStageC(opts)
	default:
		logger.Fatal("unknown stage", zap.String("want", "-stage a|b|c"))
	}
	logger.Info("benchmark complete")
}
