package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/limaJavier/arrangements/internal/config"
	"github.com/limaJavier/arrangements/internal/logging"
	"github.com/limaJavier/arrangements/internal/report"
	"github.com/limaJavier/arrangements/pkg/arrangement"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func main() {
	// Define arguments
	configPathPtr := flag.String("config", "", "Path to a JSON config file; flags that are set explicitly override its values")
	kindPtr := flag.String("kind", "permutations", `Kind of arrangements. Allowed values are: "permutations", "combinations" and "samples" (with repetition), where "permutations" is the default`)
	populationSizePtr := flag.Int("n", 0, "Population size")
	sampleSizePtr := flag.Int("k", 0, "Sample size, which cannot be larger than the population size")
	limitPtr := flag.Int("limit", 0, "Maximum number of arrangements to write, where 0 (the default) writes all of them")
	formatPtr := flag.String("format", "json", `Output format. Allowed values are: "json" (one object per line) and "csv"`)
	outPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	logLevelPtr := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	developmentPtr := flag.Bool("dev", false, "Human readable logs")
	flag.Parse()

	cfg, err := buildConfig(*configPathPtr, func(cfg *config.Config) {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "kind":
				cfg.Kind = *kindPtr
			case "n":
				cfg.PopulationSize = *populationSizePtr
			case "k":
				cfg.SampleSize = *sampleSizePtr
			case "limit":
				cfg.Limit = *limitPtr
			case "format":
				cfg.Format = *formatPtr
			case "out":
				cfg.Output = *outPtr
			case "log-level":
				cfg.LogLevel = *logLevelPtr
			case "dev":
				cfg.Development = *developmentPtr
			}
		})
	})

	logger, loggerErr := logging.New(cfg.LogLevel, cfg.Development)
	if loggerErr != nil {
		fmt.Fprintf(os.Stderr, "cannot build logger: %v\n", loggerErr)
		os.Exit(1)
	}
	defer logger.Sync()

	if err != nil {
		logger.Errorw("invalid configuration", "error", err)
		logger.Sync()
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Errorw("cannot generate arrangements", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}

// buildConfig starts from the config file (or the defaults) and applies the overrides
func buildConfig(configPath string, override func(*config.Config)) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.FromJson(configPath); err != nil {
			return config.Default(), err
		}
	}
	override(&cfg)
	return cfg, cfg.Validate()
}

func run(cfg config.Config, logger *zap.SugaredLogger) (err error) {
	kind := lo.Must(arrangement.ParseKind(cfg.Kind))
	generator, err := arrangement.NewGenerator(kind, cfg.PopulationSize, cfg.SampleSize)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		file, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return fmt.Errorf("cannot create output file: %w", createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("cannot close output file: %w", closeErr)
			}
		}()
		out = file
	}

	writer, err := report.NewWriter(cfg.Format, out, cfg.Limit)
	if err != nil {
		return err
	}

	logger.Infow("generating arrangements",
		"kind", kind.String(),
		"populationSize", generator.PopulationSize(),
		"sampleSize", generator.SampleSize(),
		"count", generator.Count(),
		"limit", cfg.Limit,
	)

	started := time.Now()
	generator.Generate(arrangement.ListenerFuncs{
		OnStart: writer.Start,
		OnNext: func(indices []int, sequence int) bool {
			logger.Debugw("arrangement", "sequence", sequence, "indices", indices)
			return writer.Next(indices, sequence)
		},
	})

	err = writer.Close()
	logger.Infow("arrangements written",
		"written", writer.Written(),
		"count", writer.Count(),
		"stopped", writer.Written() < writer.Count(),
		"duration", time.Since(started),
	)
	return err
}
