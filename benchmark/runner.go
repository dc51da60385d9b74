package benchmark

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Mode selects which drivers a benchmark runs
type Mode string

const (
	ModeBoth     Mode = "both"
	ModeParallel Mode = "parallel"
	ModeSerial   Mode = "serial"
)

func (m Mode) runsParallel() bool { return m == ModeBoth || m == ModeParallel }
func (m Mode) runsSerial() bool   { return m == ModeBoth || m == ModeSerial }

var (
	ErrInvalidInstances = errors.New("instances must be at least 1")
	ErrInvalidLoops     = fmt.Errorf("loops must be between 0 and %d", MaxLoops)
	ErrUnknownMode      = errors.New("unknown mode")
)

// progressInterval is how often the parallel driver reports completed calls
var progressInterval = time.Second

// Config defines the benchmark parameters passed from CLI or config file
type Config struct {
	Instances   int    `yaml:"instances"`    // number of workload calls per driver
	Loops       int    `yaml:"loops"`        // each call runs 2^Loops iterations
	Workload    string `yaml:"workload"`     // workload type, "count" by default
	Mode        string `yaml:"mode"`         // "both", "parallel" or "serial"
	BenchmarkID string `yaml:"benchmark_id"` // optional label for this benchmark run
	LogFormat   string `yaml:"log_format"`   // "json" or "console", default is "console"
	HistoryPath string `yaml:"history_db"`   // Pebble directory for past comparisons, empty disables
}

// Validate checks the numeric bounds and the enumerated options.
func (cfg Config) Validate() error {
	if cfg.Instances < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidInstances, cfg.Instances)
	}
	if cfg.Loops < 0 || cfg.Loops > MaxLoops {
		return fmt.Errorf("%w: got %d", ErrInvalidLoops, cfg.Loops)
	}
	switch Mode(cfg.Mode) {
	case ModeBoth, ModeParallel, ModeSerial, "":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
	return nil
}

// RunBenchmark orchestrates the full benchmark lifecycle
func RunBenchmark(cfg Config) (*Comparison, error) {
	setupLog(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := Mode(cfg.Mode)
	if mode == "" {
		mode = ModeBoth
	}

	workload, err := CreateWorkload(WorkloadConfig{Type: WorkloadType(cfg.Workload)})
	if err != nil {
		return nil, err
	}

	initialLog(cfg, mode)
	log.Info().
		Str("workload", workload.Name()).
		Str("description", workload.GetDescription()).
		Msg("Using workload")

	cmp := &Comparison{
		BenchmarkID: cfg.BenchmarkID,
		Workload:    workload.Name(),
		Loops:       cfg.Loops,
		NumCPU:      runtime.NumCPU(),
		Timestamp:   time.Now().UTC(),
	}

	if mode.runsParallel() {
		cmp.Parallel = runParallel(workload, cfg.Instances, cfg.Loops)
		logReport("Parallel processing", cmp.Parallel)
	}
	if mode.runsSerial() {
		cmp.Serial = runSerial(workload, cfg.Instances, cfg.Loops)
		logReport("Single core processing", cmp.Serial)
	}

	cmp.compare()
	if cmp.Parallel != nil && cmp.Serial != nil {
		log.Info().
			Dur("difference", cmp.Difference).
			Float64("speedup", cmp.Speedup).
			Float64("efficiency", cmp.Efficiency).
			Msgf("Difference %f", cmp.Difference.Seconds())
	}

	if cfg.HistoryPath != "" {
		if err := recordComparison(cfg.HistoryPath, cmp); err != nil {
			return cmp, fmt.Errorf("failed to record comparison: %w", err)
		}
	}

	log.Info().Str("benchmark_id", cfg.BenchmarkID).Msg("Benchmark complete")
	return cmp, nil
}

func recordComparison(path string, cmp *Comparison) error {
	store, err := OpenPebbleHistory(HistoryConfig{Path: path})
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Append(cmp); err != nil {
		return err
	}
	log.Info().Str("history_db", path).Msg("Comparison recorded")
	return nil
}

func initialLog(cfg Config, mode Mode) {
	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Int("instances", cfg.Instances).
		Int("loops", cfg.Loops).
		Uint64("iterations_per_call", iterations(cfg.Loops)).
		Str("mode", string(mode)).
		Int("num_cpu", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Msg("Starting benchmark")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stdout)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
}

func logReport(label string, r *Report) {
	perCall := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		perCall[i] = s.Elapsed.Seconds()
	}
	log.Info().
		Str("mode", string(r.Mode)).
		Int("instances", r.Instances).
		Dur("wall", r.Wall).
		Dur("sum", r.Sum).
		Floats64("per_call_s", perCall).
		Msgf("%s: %f s total, %f s summed over calls", label, r.Wall.Seconds(), r.Sum.Seconds())
}

func logSample(s Sample) {
	log.Info().
		Int("instance", s.Instance).
		Uint64("value", s.Value).
		Dur("elapsed", s.Elapsed).
		Msgf("Result %d in %f seconds!", s.Value, s.Elapsed.Seconds())
}

// runParallel hands every call to its own worker and waits for all of them to finish
func runParallel(workload Workload, instances, loops int) *Report {
	log.Info().Int("workers", instances).Msg("Beginning parallel run")

	jobs := make(chan int, instances)
	samples := make([]Sample, instances)
	var completed uint64

	start := time.Now()

	for i := 0; i < instances; i++ {
		jobs <- i
	}
	close(jobs)

	var g errgroup.Group
	for w := 0; w < instances; w++ {
		g.Go(func() error {
			for idx := range jobs {
				s := workload.Compute(loops)
				s.Instance = idx
				// each index is owned by exactly one worker
				samples[idx] = s
				logSample(s)
				atomic.AddUint64(&completed, 1)
			}
			return nil
		})
	}

	// print progress while workers are running
	chDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-chDone:
				return
			case <-ticker.C:
				log.Info().
					Uint64("completed", atomic.LoadUint64(&completed)).
					Int("instances", instances).
					Msg("Parallel calls in progress")
			}
		}
	}()

	_ = g.Wait() // workers never fail
	wall := time.Since(start)
	close(chDone)

	return newReport(ModeParallel, wall, samples)
}

// runSerial calls the workload back to back on the current goroutine
func runSerial(workload Workload, instances, loops int) *Report {
	log.Info().Msg("Beginning serial run")

	samples := make([]Sample, 0, instances)
	start := time.Now()
	for i := 0; i < instances; i++ {
		s := workload.Compute(loops)
		s.Instance = i
		samples = append(samples, s)
		logSample(s)
	}
	wall := time.Since(start)

	return newReport(ModeSerial, wall, samples)
}
