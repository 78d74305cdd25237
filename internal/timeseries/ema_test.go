package timeseries

import (
	"errors"
	"testing"
)

func TestEMAWithSmoothing_HalfAlpha(t *testing.T) {
	prices := []float64{10, 11, 12, 11, 10, 11, 12, 13}
	want := []float64{10.0, 10.5, 11.25, 11.125, 10.5625, 10.78125, 11.390625, 12.1953125}

	got, err := EMAWithSmoothing(prices, 0.5)
	if err != nil {
		t.Fatalf("EMAWithSmoothing: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("result length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		assertClose(t, "EMA(alpha=0.5)", got[i], want[i], 1e-12)
	}
}

func TestEMA_WindowDerivedAlpha(t *testing.T) {
	// window 3 → alpha = 0.5, so this must match the explicit-alpha path.
	prices := []float64{10, 11, 12, 11}
	byWindow, err := EMA(prices, 3)
	if err != nil {
		t.Fatalf("EMA: %v", err)
	}
	byAlpha, err := EMAWithSmoothing(prices, 0.5)
	if err != nil {
		t.Fatalf("EMAWithSmoothing: %v", err)
	}
	for i := range byWindow {
		assertClose(t, "window vs alpha", byWindow[i], byAlpha[i], 0)
	}
}

func TestEMA_InvalidParams(t *testing.T) {
	if _, err := EMA([]float64{1, 2}, 0); !errors.Is(err, ErrZeroWindow) {
		t.Errorf("zero window: got %v, want ErrZeroWindow", err)
	}
	for _, alpha := range []float64{0, 1, -0.5, 1.5} {
		if _, err := EMAWithSmoothing([]float64{1, 2}, alpha); !errors.Is(err, ErrInvalidSmoothing) {
			t.Errorf("alpha=%v: got %v, want ErrInvalidSmoothing", alpha, err)
		}
	}
}

func TestEMA_EmptyInput(t *testing.T) {
	got, err := EMAWithSmoothing(nil, 0.3)
	if err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty input: got %d results, want 0", len(got))
	}
}
