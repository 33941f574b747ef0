// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/internal/config"
	"github.com/katalvlaran/lvfuzzy/internal/metrics"
	"github.com/katalvlaran/lvfuzzy/models/restaurant"
)

// Latency histogram range in nanoseconds.
const (
	benchMinValue = 1
	benchMaxValue = 1_000_000_000
	benchSigFigs  = 3
)

// benchmark evaluates eng from workers goroutines and returns the merged
// latency histogram in nanoseconds.
func benchmark(eng *inference.Engine, workers, iterations int, done prometheus.Counter) (*hdrhistogram.Histogram, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	total := hdrhistogram.New(benchMinValue, benchMaxValue, benchSigFigs)
	sg := make(chan struct{})

	wg.Add(workers)
	for i := workers; i > 0; i-- {
		go func(seed int64) {
			defer wg.Done()
			hg := hdrhistogram.New(benchMinValue, benchMaxValue, benchSigFigs)
			rng := rand.New(rand.NewSource(seed))
			in := make(map[string]float64, len(restaurant.Inputs))

			err := func() error {
				<-sg
				for j := iterations; j > 0; j-- {
					for _, name := range restaurant.Inputs {
						in[name] = restaurant.MaxScore * rng.Float64()
					}
					t0 := time.Now()
					if _, err := eng.Compute(in, restaurant.Happiness); err != nil {
						return err
					}
					if err := hg.RecordValue(time.Since(t0).Nanoseconds()); err != nil {
						return err
					}
					done.Inc()
				}
				return nil
			}()

			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			total.Merge(hg)
		}(int64(i))
	}
	close(sg)
	wg.Wait()

	return total, firstErr
}

func printPercentiles(w io.Writer, hg *hdrhistogram.Histogram) {
	// Values are recorded in ns and printed in µs.
	hg.PercentilesPrint(w, 1, 1000.0)
}

func runBench(eng *inference.Engine, cfg config.Config) {
	done := promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.BenchEvaluationsN,
		Help: metrics.BenchEvaluationsH,
	})

	t0 := time.Now()
	hg, err := benchmark(eng, cfg.Bench.Workers, cfg.Bench.Iterations, done)
	if err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}
	printPercentiles(os.Stdout, hg)
	log.Info("benchmark done",
		zap.Int("workers", cfg.Bench.Workers),
		zap.Int64("evaluations", hg.TotalCount()),
		zap.Duration("elapsed", time.Since(t0)),
		zap.Float64("mean_us", hg.Mean()/1000))
}
