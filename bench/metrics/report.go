package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// StageARow is one capacity-sweep measurement.
type StageARow struct {
	Capacity    int
	PointCount  int
	BuildDurMs  float64
	QueryP50Ms  float64
	QueryP99Ms  float64
	HeapAllocMB float64
}

// StageBRow is one scale measurement.
type StageBRow struct {
	PointCount int
	BuildDurMs float64
	QueryP50Ms float64
	QueryP99Ms float64
	HeapSysMB  float64
}

// StageCRow is one concurrency measurement.
type StageCRow struct {
	Concurrency  int
	Cells        int
	PointCount   int
	QPS          float64
	QueryP50Ms   float64
	QueryP99Ms   float64
	NumGoroutine int
	P99P50Ratio  float64
}

// WriteStageACSV writes the capacity-sweep report.
func WriteStageACSV(rows []StageARow, path string) error {
	records := [][]string{{"Capacity", "PointCount", "BuildDurMs", "QueryP50Ms", "QueryP99Ms", "HeapAllocMB"}}
	for _, r := range rows {
		records = append(records, []string{
			fmt.Sprintf("%d", r.Capacity),
			fmt.Sprintf("%d", r.PointCount),
			fmt.Sprintf("%.2f", r.BuildDurMs),
			fmt.Sprintf("%.3f", r.QueryP50Ms),
			fmt.Sprintf("%.3f", r.QueryP99Ms),
			fmt.Sprintf("%.2f", r.HeapAllocMB),
		})
	}
	return writeCSV(records, path)
}

// WriteStageBCSV writes the scale report.
func WriteStageBCSV(rows []StageBRow, path string) error {
	records := [][]string{{"PointCount", "BuildDurMs", "QueryP50Ms", "QueryP99Ms", "HeapSysMB"}}
	for _, r := range rows {
		records = append(records, []string{
			fmt.Sprintf("%d", r.PointCount),
			fmt.Sprintf("%.2f", r.BuildDurMs),
			fmt.Sprintf("%.3f", r.QueryP50Ms),
			fmt.Sprintf("%.3f", r.QueryP99Ms),
			fmt.Sprintf("%.2f", r.HeapSysMB),
		})
	}
	return writeCSV(records, path)
}

// WriteStageCCSV writes the concurrency report.
func WriteStageCCSV(rows []StageCRow, path string) error {
	records := [][]string{{"Concurrency", "Cells", "PointCount", "QPS", "QueryP50Ms", "QueryP99Ms", "NumGoroutine", "P99P50Ratio"}}
	for _, r := range rows {
		records = append(records, []string{
			fmt.Sprintf("%d", r.Concurrency),
			fmt.Sprintf("%d", r.Cells),
			fmt.Sprintf("%d", r.PointCount),
			fmt.Sprintf("%.0f", r.QPS),
			fmt.Sprintf("%.3f", r.QueryP50Ms),
			fmt.Sprintf("%.3f", r.QueryP99Ms),
			fmt.Sprintf("%d", r.NumGoroutine),
			fmt.Sprintf("%.2f", r.P99P50Ratio),
		})
	}
	return writeCSV(records, path)
}

func writeCSV(records [][]string, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create report dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create report")
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return errors.Wrap(err, "write report")
	}
	return errors.Wrap(w.Error(), "flush report")
}

// ReportDir is the report output directory.
const ReportDir = "report"

// ReportPath builds a dated report path under ReportDir.
func ReportPath(prefix string) string {
	return filepath.Join(ReportDir, prefix+time.Now().Format("20060102")+".csv")
}

// WriteJSON writes v as an indented JSON report.
func WriteJSON(v interface{}, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create json report")
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode json report")
}
