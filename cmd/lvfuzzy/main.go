// SPDX-License-Identifier: MIT

// Command lvfuzzy evaluates, plots and benchmarks the restaurant happiness
// model.
//
// Usage:
//
//	lvfuzzy eval  [-config file] [-speed x] [-food_quality x] [-ambience x]
//	lvfuzzy plot  [-config file] [-out dir] [-speed x] [-food_quality x] [-ambience x]
//	lvfuzzy bench [-config file] [-workers n] [-iterations n]
//
// Every subcommand also accepts -verbose, -method and -metrics addr.
// Inputs missing from both flags and config are prompted for by eval.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/internal/config"
	"github.com/katalvlaran/lvfuzzy/models/restaurant"
)

var log = zap.NewNop()

// scoreFlag is a [0,10] score that remembers whether it was set.
type scoreFlag struct {
	v   float64
	set bool
}

func (f *scoreFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *scoreFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if !restaurant.InRange(v) {
		return fmt.Errorf("score %v outside [%v, %v]", v, restaurant.MinScore, restaurant.MaxScore)
	}
	f.v, f.set = v, true
	return nil
}

// overrides holds flag values that take precedence over the config file.
type overrides struct {
	verbose     bool
	method      string
	metricsAddr string
	plotDir     string
	workers     int
	iterations  int
}

func (o overrides) apply(cfg *config.Config) error {
	cfg.Verbose = cfg.Verbose || o.verbose
	if o.method != "" {
		cfg.Method = o.method
	}
	if o.metricsAddr != "" {
		cfg.MetricsAddr = o.metricsAddr
	}
	if o.plotDir != "" {
		cfg.PlotDir = o.plotDir
	}
	if o.workers != 0 {
		cfg.Bench.Workers = o.workers
	}
	if o.iterations != 0 {
		cfg.Bench.Iterations = o.iterations
	}
	return cfg.Validate()
}

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
}

func runMonitor(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(addr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func loadConfig(configFile string, o overrides) config.Config {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
			os.Exit(1)
		}
	}
	if err := o.apply(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	return cfg
}

// setup initializes logging and metrics and builds the model.
func setup(cfg config.Config) *inference.Engine {
	initLogger(cfg.Verbose)
	if cfg.MetricsAddr != "" {
		go runMonitor(cfg.MetricsAddr)
	}
	eng, err := buildModel(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to build model", zap.Error(err))
	}
	return eng
}

func buildModel(cfg config.Config, reg prometheus.Registerer) (*inference.Engine, error) {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, inference.WithLogger(log))
	if cfg.MetricsAddr != "" {
		opts = append(opts, inference.WithMetrics(reg))
	}
	return restaurant.Build(opts...)
}

func exitWithUsage() {
	fmt.Println("usage: lvfuzzy eval|plot|bench [flags]")
	os.Exit(1)
}

func main() {
	var (
		configFile string
		o          overrides
		scores     = map[string]*scoreFlag{}
	)
	for _, name := range restaurant.Inputs {
		scores[name] = &scoreFlag{}
	}

	evalFlags := flag.NewFlagSet("eval", flag.ExitOnError)
	plotFlags := flag.NewFlagSet("plot", flag.ExitOnError)
	benchFlags := flag.NewFlagSet("bench", flag.ExitOnError)

	for _, fs := range []*flag.FlagSet{evalFlags, plotFlags, benchFlags} {
		fs.BoolVar(&o.verbose, "verbose", false, "Verbose logging")
		fs.StringVar(&configFile, "config", "", "Config file")
		fs.StringVar(&o.method, "method", "", "Defuzzification method")
		fs.StringVar(&o.metricsAddr, "metrics", "", "Serve Prometheus metrics on this address")
	}
	for _, fs := range []*flag.FlagSet{evalFlags, plotFlags} {
		for _, name := range restaurant.Inputs {
			fs.Var(scores[name], name, "Score for "+name+" in [0,10]")
		}
	}
	plotFlags.StringVar(&o.plotDir, "out", "", "Output directory")
	benchFlags.IntVar(&o.workers, "workers", 0, "Number of goroutines")
	benchFlags.IntVar(&o.iterations, "iterations", 0, "Evaluations per goroutine")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case evalFlags.Name():
		err := evalFlags.Parse(os.Args[2:])
		if err != nil || evalFlags.NArg() != 0 {
			exitWithUsage()
		}
		cfg := loadConfig(configFile, o)
		runEval(setup(cfg), cfg, scores)
	case plotFlags.Name():
		err := plotFlags.Parse(os.Args[2:])
		if err != nil || plotFlags.NArg() != 0 {
			exitWithUsage()
		}
		cfg := loadConfig(configFile, o)
		runPlot(setup(cfg), cfg, scores)
	case benchFlags.Name():
		err := benchFlags.Parse(os.Args[2:])
		if err != nil || benchFlags.NArg() != 0 {
			exitWithUsage()
		}
		cfg := loadConfig(configFile, o)
		runBench(setup(cfg), cfg)
	default:
		exitWithUsage()
	}
}
