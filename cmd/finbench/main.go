// cmd/finbench generates a synthetic price path and runs the full formula
// suite over it: incremental vs recomputed rolling statistics, streaming
// indicators fed through the SPSC ring buffer, and parallel option batch
// pricing. Timings go to the log; counters to /metrics when enabled.
//
// Usage:
//
//	go run ./cmd/finbench --serve
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finmath/config"
	"finmath/internal/logger"
	"finmath/internal/metrics"
	"finmath/internal/options"
	"finmath/internal/ringbuf"
	"finmath/internal/timeseries"
	"finmath/internal/vecops"
)

func main() {
	serve := flag.Bool("serve", false, "Expose /metrics and /healthz and keep running")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init("finbench", logger.ParseLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	m := metrics.NewMetrics()
	m.BackendInfo.WithLabelValues(string(vecops.Active())).Set(1)
	health := metrics.NewHealthStatus()

	var srv *metrics.Server
	if *serve {
		srv = metrics.NewServer(cfg.MetricsAddr, health)
		srv.Start()
	}

	log.Info("starting",
		"backend", string(vecops.Active()),
		"series_len", cfg.SeriesLen,
		"windows", cfg.ParseWindows(),
		"batch_size", cfg.BatchSize,
	)

	prices := gbmPath(cfg.SeriesLen, 100, 0.05, 0.2, cfg.Seed)

	rollingBench(log, m, prices, cfg.ParseWindows())
	streamBench(log, m, health, prices)
	batchBench(log, m, cfg)

	if *serve {
		log.Info("benchmark complete, serving metrics", "addr", cfg.MetricsAddr)
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		srv.Stop(shutdownCtx)
		shutdownCancel()
	}
	log.Info("done")
}

// gbmPath simulates geometric Brownian motion with the given drift and
// volatility at daily steps.
func gbmPath(n int, s0, mu, sigma float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	const dt = 1.0 / 252
	out := make([]float64, n)
	s := s0
	for i := range out {
		out[i] = s
		s *= math.Exp((mu-0.5*sigma*sigma)*dt + sigma*math.Sqrt(dt)*rng.NormFloat64())
	}
	return out
}

func rollingBench(log *slog.Logger, m *metrics.Metrics, prices []float64, windows []int) {
	for _, w := range windows {
		start := time.Now()
		inc, err := timeseries.RollingStdDev(prices, w)
		incDur := time.Since(start)
		if err != nil {
			log.Error("rolling stddev failed", "window", w, "err", err)
			continue
		}
		m.WindowCompute.Observe(incDur.Seconds())
		m.WindowsTotal.WithLabelValues("stddev").Add(float64(len(inc)))

		start = time.Now()
		direct, err := timeseries.RollingStdDevDirect(prices, w)
		directDur := time.Since(start)
		if err != nil {
			log.Error("direct stddev failed", "window", w, "err", err)
			continue
		}

		maxDiff := 0.0
		for i := range inc {
			if d := math.Abs(inc[i] - direct[i]); d > maxDiff {
				maxDiff = d
			}
		}

		vol, err := timeseries.RollingVolatility(prices, w)
		if err != nil {
			log.Error("rolling volatility failed", "window", w, "err", err)
			continue
		}
		m.WindowsTotal.WithLabelValues("volatility").Add(float64(len(vol)))

		log.Info("rolling window",
			"window", w,
			"incremental", incDur.String(),
			"direct", directDur.String(),
			"speedup", fmt.Sprintf("%.1fx", directDur.Seconds()/incDur.Seconds()),
			"max_drift", maxDiff,
			"last_vol", vol[len(vol)-1],
		)
	}
}

// streamBench pushes the whole series through the ring buffer into the
// streaming indicators, producer and consumer on separate goroutines.
func streamBench(log *slog.Logger, m *metrics.Metrics, health *metrics.HealthStatus, prices []float64) {
	ring := ringbuf.New(1 << 12)
	streams := []timeseries.Stream{
		timeseries.NewStreamSMA(20),
		timeseries.NewStreamEMA(20),
		timeseries.NewStreamRSI(14),
		timeseries.NewStreamStdDev(20),
	}

	done := make(chan struct{})
	start := time.Now()
	go func() {
		defer close(done)
		consumed := 0
		ready := 0
		for consumed < len(prices) {
			v, ok := ring.Pop()
			if !ok {
				continue
			}
			consumed++
			for _, s := range streams {
				s.Update(v)
				if s.Ready() {
					ready++
				}
			}
		}
		m.SamplesTotal.Add(float64(consumed))
		log.Info("stream consumed", "samples", consumed, "ready_values", ready, "dur", time.Since(start).String())
	}()

	for _, p := range prices {
		for !ring.Push(p) {
		}
	}
	health.SetStreamOK(true)
	health.SetLastSampleTime(time.Now())
	<-done
	m.RingBufOverflow.Add(float64(ring.Overflow()))

	for _, s := range streams {
		log.Info("stream final", "name", s.Name(), "value", s.Value(), "ready", s.Ready())
	}
}

func batchBench(log *slog.Logger, m *metrics.Metrics, cfg *config.Config) {
	rng := rand.New(rand.NewSource(cfg.Seed + 1))
	contracts := make([]options.Contract, cfg.BatchSize)
	for i := range contracts {
		kind := options.Call
		if rng.Intn(2) == 1 {
			kind = options.Put
		}
		contracts[i] = options.Contract{
			Kind:   kind,
			Strike: 80 + 40*rng.Float64(),
			Spot:   100,
			Time:   0.1 + 2*rng.Float64(),
			Rate:   0.05,
			Sigma:  0.1 + 0.4*rng.Float64(),
		}
	}

	start := time.Now()
	priced := options.PriceBatch(contracts, cfg.Workers)
	dur := time.Since(start)
	m.BatchPriceDur.Observe(dur.Seconds())
	m.ContractsPriced.Add(float64(len(priced)))

	sum := 0.0
	for _, p := range priced {
		sum += p
	}
	log.Info("batch priced",
		"contracts", len(priced),
		"workers", cfg.Workers,
		"dur", dur.String(),
		"mean_premium", sum/float64(len(priced)),
	)
}
