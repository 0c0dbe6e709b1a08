package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/limaJavier/arrangements/internal/logging"
	"github.com/limaJavier/arrangements/pkg/arrangement"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type ResultType int

const (
	complete ResultType = iota
	mismatch
)

var resultTypes = map[ResultType]string{
	complete: "complete",
	mismatch: "mismatch",
}

type Scenario struct {
	Kind           arrangement.Kind
	PopulationSize int
	SampleSize     int
}

type BenchmarkResult struct {
	Scenario Scenario
	Count    int
	Emitted  int
	Duration time.Duration
	Result   ResultType
}

func main() {
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	repeatPtr := flag.Int("repeat", 3, "Times each scenario is generated; the fastest run is reported")
	flag.Parse()

	logger, err := logging.New("info", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	scenarios := getScenarios()
	results := make([]BenchmarkResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		logger.Infow("benchmarking", "kind", scenario.Kind.String(), "populationSize", scenario.PopulationSize, "sampleSize", scenario.SampleSize)

		result, err := measure(scenario, max(1, *repeatPtr))
		if err != nil {
			logger.Fatalw("cannot build generator", "error", err)
		}
		if result.Result == mismatch {
			logger.Errorw("emitted arrangements differ from count", "count", result.Count, "emitted", result.Emitted)
		}
		results = append(results, result)
	}

	if err := toCsv(*outPtr, results); err != nil {
		logger.Fatalw("cannot write results", "error", err)
	}
	logFastest(logger, results)
}

func getScenarios() []Scenario {
	sizes := [][2]int{{8, 8}, {10, 5}, {10, 10}, {16, 4}, {20, 6}, {24, 12}, {30, 3}}
	scenarios := make([]Scenario, 0, len(sizes)*3)
	for _, kind := range arrangement.Kinds() {
		for _, size := range sizes {
			scenarios = append(scenarios, Scenario{Kind: kind, PopulationSize: size[0], SampleSize: size[1]})
		}
	}

	// Keep every scenario within a few hundred million arrangements
	return lo.Filter(scenarios, func(scenario Scenario, _ int) bool {
		generator, err := arrangement.NewGenerator(scenario.Kind, scenario.PopulationSize, scenario.SampleSize)
		return err == nil && generator.Count() <= 200_000_000
	})
}

func measure(scenario Scenario, repeat int) (BenchmarkResult, error) {
	generator, err := arrangement.NewGenerator(scenario.Kind, scenario.PopulationSize, scenario.SampleSize)
	if err != nil {
		return BenchmarkResult{}, err
	}

	result := BenchmarkResult{Scenario: scenario, Count: generator.Count(), Result: complete}
	for i := range repeat {
		emitted := 0
		started := time.Now()
		generator.Generate(arrangement.ListenerFuncs{
			OnNext: func([]int, int) bool {
				emitted++
				return false
			},
		})
		duration := time.Since(started)

		if i == 0 || duration < result.Duration {
			result.Duration = duration
		}
		result.Emitted = emitted
		if emitted != result.Count {
			result.Result = mismatch
		}
	}
	return result, nil
}

func toCsv(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"Kind", "PopulationSize", "SampleSize", "Count", "Emitted", "Duration(ms)", "Arrangements/s", "Result"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Scenario.Kind.String(),
		fmt.Sprintf("%d", result.Scenario.PopulationSize),
		fmt.Sprintf("%d", result.Scenario.SampleSize),
		fmt.Sprintf("%d", result.Count),
		fmt.Sprintf("%d", result.Emitted),
		formatDuration(result.Duration),
		fmt.Sprintf("%.0f", throughput(result)),
		resultTypes[result.Result],
	}
}

func formatDuration(duration time.Duration) string {
	return fmt.Sprintf("%.3f", float64(duration.Microseconds())/1000)
}

func throughput(result BenchmarkResult) float64 {
	if result.Duration <= 0 {
		return 0
	}
	return float64(result.Emitted) / result.Duration.Seconds()
}

func logFastest(logger *zap.SugaredLogger, results []BenchmarkResult) {
	for kind, perKind := range lo.GroupBy(results, func(result BenchmarkResult) arrangement.Kind { return result.Scenario.Kind }) {
		fastest := lo.MaxBy(perKind, func(a, b BenchmarkResult) bool { return throughput(a) > throughput(b) })
		logger.Infow("fastest scenario",
			"kind", kind.String(),
			"populationSize", fastest.Scenario.PopulationSize,
			"sampleSize", fastest.Scenario.SampleSize,
			"arrangementsPerSecond", int64(throughput(fastest)),
		)
	}
}
