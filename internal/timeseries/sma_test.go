package timeseries

import (
	"errors"
	"testing"
)

func TestSimpleMovingAverage_Window3(t *testing.T) {
	got, err := SimpleMovingAverage([]float64{1, 2, 3, 4, 5, 6, 7}, 3)
	if err != nil {
		t.Fatalf("SimpleMovingAverage: %v", err)
	}
	want := []float64{2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("result length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		assertClose(t, "SMA(3)", got[i], want[i], 1e-12)
	}
}

func TestSimpleMovingAverage_ShortInputIsEmpty(t *testing.T) {
	// Input shorter than the window is a lenient empty result, not an error.
	for _, data := range [][]float64{nil, {1}, {1, 2}} {
		got, err := SimpleMovingAverage(data, 3)
		if err != nil {
			t.Fatalf("short input: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("short input len %d: got %d results, want 0", len(data), len(got))
		}
	}
}

func TestSimpleMovingAverage_ZeroWindow(t *testing.T) {
	if _, err := SimpleMovingAverage([]float64{1, 2, 3}, 0); !errors.Is(err, ErrZeroWindow) {
		t.Errorf("zero window: got %v, want ErrZeroWindow", err)
	}
}

func TestSimpleMovingAverage_WindowOne(t *testing.T) {
	data := []float64{3.5, -1, 0, 42}
	got, err := SimpleMovingAverage(data, 1)
	if err != nil {
		t.Fatalf("SimpleMovingAverage: %v", err)
	}
	for i := range data {
		assertClose(t, "SMA(1)", got[i], data[i], 0)
	}
}

func TestSimpleMovingAverage_DirectAgrees(t *testing.T) {
	data := []float64{10.5, 11.2, 9.8, 10.1, 12.3, 11.9, 10.7, 11.1, 12.0, 9.5}
	for _, window := range []int{1, 2, 4, 10} {
		fast, err := SimpleMovingAverage(data, window)
		if err != nil {
			t.Fatalf("sliding: %v", err)
		}
		direct, err := SimpleMovingAverageDirect(data, window)
		if err != nil {
			t.Fatalf("direct: %v", err)
		}
		if len(fast) != len(direct) {
			t.Fatalf("window %d: length %d vs %d", window, len(fast), len(direct))
		}
		for i := range fast {
			assertClose(t, "sliding vs direct", fast[i], direct[i], 1e-9)
		}
	}
}
