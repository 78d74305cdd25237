package timeseries

import "math"

// Stream is the sample-at-a-time counterpart of the batch functions: O(1)
// state, O(1) update. After the same samples, a stream's Value matches the
// last element of the corresponding batch result.
type Stream interface {
	Name() string

	// Update feeds the next sample and recalculates.
	Update(v float64)

	// Value returns the current statistic. Returns 0 if not enough data.
	Value() float64

	// Ready reports whether enough samples have been accumulated.
	Ready() bool
}

// The batch functions report a bad window as ErrZeroWindow; a stream
// constructor has no error return, so a non-positive window is a programmer
// error and fails fast instead of panicking later inside Update.
func mustPositiveWindow(window int) {
	if window < 1 {
		panic("timeseries: window size must be greater than zero")
	}
}

// StreamSMA maintains a simple moving average over a circular window buffer
// with a sliding sum, no per-update allocation.
type StreamSMA struct {
	window  int
	buf     []float64
	idx     int
	count   int
	sum     float64
	current float64
}

func NewStreamSMA(window int) *StreamSMA {
	mustPositiveWindow(window)
	return &StreamSMA{
		window: window,
		buf:    make([]float64, window),
	}
}

func (s *StreamSMA) Name() string { return "SMA" }

func (s *StreamSMA) Update(v float64) {
	if s.count >= s.window {
		s.sum -= s.buf[s.idx]
	}
	s.buf[s.idx] = v
	s.sum += v
	s.idx = (s.idx + 1) % s.window
	s.count++

	if s.count >= s.window {
		s.current = s.sum / float64(s.window)
	}
}

func (s *StreamSMA) Value() float64 { return s.current }
func (s *StreamSMA) Ready() bool    { return s.count >= s.window }

// Reset clears the state for reuse.
func (s *StreamSMA) Reset() {
	s.idx = 0
	s.count = 0
	s.sum = 0
	s.current = 0
	for i := range s.buf {
		s.buf[i] = 0
	}
}

// StreamEMA applies the same recurrence as EMAWithSmoothing: the first
// sample seeds the average, every later sample is blended in with alpha.
type StreamEMA struct {
	alpha   float64
	current float64
	count   int
}

func NewStreamEMA(window int) *StreamEMA {
	mustPositiveWindow(window)
	return &StreamEMA{alpha: 2.0 / (float64(window) + 1.0)}
}

func NewStreamEMAWithSmoothing(alpha float64) *StreamEMA {
	if alpha <= 0 || alpha >= 1 {
		panic("timeseries: smoothing factor must be in (0, 1)")
	}
	return &StreamEMA{alpha: alpha}
}

func (e *StreamEMA) Name() string { return "EMA" }

func (e *StreamEMA) Update(v float64) {
	e.count++
	if e.count == 1 {
		e.current = v
		return
	}
	e.current = v*e.alpha + e.current*(1-e.alpha)
}

func (e *StreamEMA) Value() float64 { return e.current }
func (e *StreamEMA) Ready() bool    { return e.count >= 1 }

// StreamRSI computes Wilder's smoothed RSI sample by sample.
type StreamRSI struct {
	window    int
	count     int
	prevPrice float64
	avgGain   float64
	avgLoss   float64
	current   float64
}

func NewStreamRSI(window int) *StreamRSI {
	mustPositiveWindow(window)
	return &StreamRSI{window: window}
}

func (r *StreamRSI) Name() string { return "RSI" }

func (r *StreamRSI) Update(v float64) {
	r.count++
	if r.count == 1 {
		// First price, no change yet.
		r.prevPrice = v
		return
	}

	change := v - r.prevPrice
	r.prevPrice = v

	gain, loss := 0.0, 0.0
	if change > 0 {
		gain = change
	} else if change < 0 {
		loss = -change
	}

	w := float64(r.window)
	if r.count <= r.window+1 {
		// Accumulation phase: build the initial averages.
		r.avgGain += gain
		r.avgLoss += loss
		if r.count == r.window+1 {
			r.avgGain /= w
			r.avgLoss /= w
			r.current = rsiValue(r.avgGain, r.avgLoss)
		}
		return
	}

	r.avgGain = (r.avgGain*(w-1) + gain) / w
	r.avgLoss = (r.avgLoss*(w-1) + loss) / w
	r.current = rsiValue(r.avgGain, r.avgLoss)
}

func (r *StreamRSI) Value() float64 { return r.current }
func (r *StreamRSI) Ready() bool    { return r.count > r.window }

// StreamStdDev maintains a rolling population standard deviation: Welford
// accumulation while priming, then the same corrected slide as
// RollingStdDev once the window is full. The ring buffer only exists to
// recover the sample leaving the window.
type StreamStdDev struct {
	window  int
	buf     []float64
	idx     int
	count   int
	mean    float64
	sqSum   float64
	current float64
}

func NewStreamStdDev(window int) *StreamStdDev {
	mustPositiveWindow(window)
	return &StreamStdDev{
		window: window,
		buf:    make([]float64, window),
	}
}

func (s *StreamStdDev) Name() string { return "STDDEV" }

func (s *StreamStdDev) Update(v float64) {
	w := float64(s.window)
	if s.count < s.window {
		s.count++
		oldMean := s.mean
		s.mean += (v - oldMean) / float64(s.count)
		s.sqSum += (v - oldMean) * (v - s.mean)
	} else {
		s.count++
		leaving := s.buf[s.idx]
		oldMean := s.mean
		s.mean += (v - leaving) / w
		s.sqSum += (v - leaving) * (v + leaving - s.mean - oldMean)
		if s.sqSum < 0 {
			s.sqSum = 0
		}
	}

	s.buf[s.idx] = v
	s.idx = (s.idx + 1) % s.window

	if s.count >= s.window {
		s.current = math.Sqrt(clampNonNeg(s.sqSum) / w)
	}
}

func (s *StreamStdDev) Value() float64 { return s.current }
func (s *StreamStdDev) Ready() bool    { return s.count >= s.window }
