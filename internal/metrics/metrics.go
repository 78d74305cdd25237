package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the benchmark runner.
type Metrics struct {
	SamplesTotal    prometheus.Counter
	WindowsTotal    *prometheus.CounterVec // labels: statistic
	WindowCompute   prometheus.Histogram
	BatchPriceDur   prometheus.Histogram
	ContractsPriced prometheus.Counter
	RingBufOverflow prometheus.Counter
	BackendInfo     *prometheus.GaugeVec // labels: backend
}

// NewMetrics registers and returns all Prometheus metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		SamplesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "finbench_samples_total",
			Help: "Total price samples consumed from the stream",
		}),
		WindowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finbench_windows_total",
			Help: "Rolling window values emitted (by statistic)",
		}, []string{"statistic"}),
		WindowCompute: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "finbench_window_compute_duration_seconds",
			Help:    "Rolling statistic compute latency per full series",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		}),
		BatchPriceDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "finbench_batch_price_duration_seconds",
			Help:    "Option batch pricing latency",
			Buckets: prometheus.DefBuckets,
		}),
		ContractsPriced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "finbench_contracts_priced_total",
			Help: "Total option contracts priced",
		}),
		RingBufOverflow: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "finbench_ringbuf_overflow_total",
			Help: "Ring buffer push overflows (dropped samples)",
		}),
		BackendInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "finbench_vector_backend",
			Help: "Active vector backend (1 for the selected backend)",
		}, []string{"backend"}),
	}

	prometheus.MustRegister(
		m.SamplesTotal,
		m.WindowsTotal,
		m.WindowCompute,
		m.BatchPriceDur,
		m.ContractsPriced,
		m.RingBufOverflow,
		m.BackendInfo,
	)

	return m
}

// HealthStatus represents the runner health.
type HealthStatus struct {
	mu sync.RWMutex

	StreamOK       bool      `json:"stream_ok"`
	LastSampleTime time.Time `json:"last_sample_time"`
	StartedAt      time.Time `json:"started_at"`
}

// NewHealthStatus returns a default health status.
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{
		StartedAt: time.Now(),
	}
}

func (h *HealthStatus) SetStreamOK(v bool) {
	h.mu.Lock()
	h.StreamOK = v
	h.mu.Unlock()
}

func (h *HealthStatus) SetLastSampleTime(t time.Time) {
	h.mu.Lock()
	h.LastSampleTime = t
	h.mu.Unlock()
}

// ServeHTTP handles the /healthz endpoint.
func (h *HealthStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	overallStatus := "healthy"
	httpCode := http.StatusOK
	if !h.StreamOK {
		overallStatus = "degraded"
		httpCode = http.StatusServiceUnavailable
	}

	sampleAge := ""
	if !h.LastSampleTime.IsZero() {
		sampleAge = time.Since(h.LastSampleTime).Round(time.Millisecond).String()
	}

	status := struct {
		Status         string `json:"status"`
		Uptime         string `json:"uptime"`
		StreamOK       bool   `json:"stream_ok"`
		LastSampleTime string `json:"last_sample_time"`
		SampleAge      string `json:"sample_age"`
	}{
		Status:         overallStatus,
		Uptime:         time.Since(h.StartedAt).Round(time.Second).String(),
		StreamOK:       h.StreamOK,
		LastSampleTime: h.LastSampleTime.Format(time.RFC3339),
		SampleAge:      sampleAge,
	}

	w.Header().Set("Content-Type", "application/json")
	if httpCode != http.StatusOK {
		w.WriteHeader(httpCode)
	}
	json.NewEncoder(w).Encode(status)
}

// Server runs an HTTP server exposing /metrics and /healthz.
type Server struct {
	health *HealthStatus
	addr   string
	srv    *http.Server
}

// NewServer creates a metrics and health server.
func NewServer(addr string, health *HealthStatus) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", health.ServeHTTP)

	return &Server{
		health: health,
		addr:   addr,
		srv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		slog.Info("metrics server listening", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("metrics server error", "err", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
