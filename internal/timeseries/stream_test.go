package timeseries

import (
	"math"
	"math/rand"
	"testing"
)

func randomWalk(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	price := 100.0
	for i := range out {
		price += rng.NormFloat64() * 0.5
		out[i] = price
	}
	return out
}

func TestStreamSMA_AgreesWithBatch(t *testing.T) {
	data := randomWalk(60, 11)
	window := 7
	batch, err := SimpleMovingAverage(data, window)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}

	s := NewStreamSMA(window)
	for i, v := range data {
		s.Update(v)
		if i < window-1 {
			if s.Ready() {
				t.Fatalf("sample %d: ready before window filled", i)
			}
			continue
		}
		if !s.Ready() {
			t.Fatalf("sample %d: not ready after window filled", i)
		}
		assertClose(t, "stream vs batch SMA", s.Value(), batch[i-window+1], 1e-9)
	}
}

func TestStreamEMA_AgreesWithBatch(t *testing.T) {
	data := randomWalk(40, 12)
	window := 5
	batch, err := EMA(data, window)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}

	e := NewStreamEMA(window)
	for i, v := range data {
		e.Update(v)
		assertClose(t, "stream vs batch EMA", e.Value(), batch[i], 1e-9)
	}
}

func TestStreamRSI_AgreesWithBatch(t *testing.T) {
	data := randomWalk(80, 13)
	window := 14
	batch, err := SmoothedRSI(data, window)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}

	r := NewStreamRSI(window)
	for i, v := range data {
		r.Update(v)
		if i < window {
			if r.Ready() {
				t.Fatalf("sample %d: ready before %d changes", i, window)
			}
			continue
		}
		if !r.Ready() {
			t.Fatalf("sample %d: not ready", i)
		}
		assertClose(t, "stream vs batch RSI", r.Value(), batch[i-window], 1e-9)
	}
}

func TestStreamStdDev_AgreesWithBatch(t *testing.T) {
	data := randomWalk(100, 14)
	window := 10
	batch, err := RollingStdDev(data, window)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}

	s := NewStreamStdDev(window)
	for i, v := range data {
		s.Update(v)
		if i < window-1 {
			continue
		}
		got, want := s.Value(), batch[i-window+1]
		diff := math.Abs(got - want)
		if diff/math.Max(want, 1) > 1e-9 {
			t.Fatalf("sample %d: stream %.12f vs batch %.12f", i, got, want)
		}
	}
}

func TestStreamConstructors_RejectBadWindow(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic on bad argument", name)
			}
		}()
		fn()
	}

	mustPanic("sma", func() { NewStreamSMA(0) })
	mustPanic("ema", func() { NewStreamEMA(0) })
	mustPanic("rsi", func() { NewStreamRSI(-1) })
	mustPanic("stddev", func() { NewStreamStdDev(0) })
	mustPanic("ema alpha high", func() { NewStreamEMAWithSmoothing(1) })
	mustPanic("ema alpha low", func() { NewStreamEMAWithSmoothing(0) })
}

func TestStreamSMA_Reset(t *testing.T) {
	s := NewStreamSMA(3)
	for _, v := range []float64{1, 2, 3} {
		s.Update(v)
	}
	s.Reset()
	if s.Ready() || s.Value() != 0 {
		t.Errorf("after Reset: ready=%v value=%v", s.Ready(), s.Value())
	}
	for _, v := range []float64{4, 5, 6} {
		s.Update(v)
	}
	assertClose(t, "post-reset SMA", s.Value(), 5, 1e-12)
}
