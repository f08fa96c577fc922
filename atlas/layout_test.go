package atlas

import (
	"errors"
	"testing"
)

func TestEstimateSize(t *testing.T) {
	tests := []struct {
		name        string
		advances    []int
		heights     []int
		maxRowWidth int
		want        Estimate
	}{
		{
			name:        "single row",
			advances:    []int{10, 10, 10},
			heights:     []int{12, 14, 9},
			maxRowWidth: 512,
			want:        Estimate{TotalWidth: 30, CellHeight: 14, Width: 30, Height: 14},
		},
		{
			name:        "exactly max width",
			advances:    []int{256, 256},
			heights:     []int{10, 10},
			maxRowWidth: 512,
			want:        Estimate{TotalWidth: 512, CellHeight: 10, Width: 512, Height: 10},
		},
		{
			name:        "1200 wide",
			advances:    []int{400, 400, 400},
			heights:     []int{14, 14, 14},
			maxRowWidth: 512,
			want:        Estimate{TotalWidth: 1200, CellHeight: 14, NumOverlaps: 2, Width: 512, Height: 42},
		},
		{
			name:        "empty",
			maxRowWidth: 512,
			want:        Estimate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := make([]GlyphMetrics, len(tt.advances))
			for i := range metrics {
				metrics[i] = GlyphMetrics{Char: rune('a' + i), Resolved: true, Advance: tt.advances[i], Height: tt.heights[i]}
			}
			if got := EstimateSize(metrics, tt.maxRowWidth); got != tt.want {
				t.Errorf("EstimateSize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeLayout_PrintableASCII(t *testing.T) {
	cs := PrintableASCII()
	src := newFakeSource().uniform(cs, 10, 8, 14)

	t.Run("wide enough for one row", func(t *testing.T) {
		l, err := measureLayout(src, cs, 940)
		if err != nil {
			t.Fatalf("layout: %v", err)
		}
		if l.Width != 940 || l.Height != 14 {
			t.Errorf("canvas = %dx%d, want 940x14", l.Width, l.Height)
		}
		if l.Rows != 1 || l.Grown {
			t.Errorf("rows = %d, grown = %v, want 1 row from the estimate", l.Rows, l.Grown)
		}
		// Every character but the space places an 8x14 bitmap.
		if want := (len(cs) - 1) * 8 * 14; l.UsedArea != want {
			t.Errorf("UsedArea = %d, want %d", l.UsedArea, want)
		}
		if got, want := l.Utilization(), float64(l.UsedArea)/float64(940*14); got != want {
			t.Errorf("Utilization() = %v, want %v", got, want)
		}
	})

	t.Run("default row width", func(t *testing.T) {
		l, err := measureLayout(src, cs, MaxRowWidth)
		if err != nil {
			t.Fatalf("layout: %v", err)
		}
		if l.Width != 512 || l.Height != 28 {
			t.Errorf("canvas = %dx%d, want 512x28", l.Width, l.Height)
		}
		if l.Estimate.NumOverlaps != 1 || l.Rows != 2 || l.Grown {
			t.Errorf("overlaps = %d, rows = %d, grown = %v", l.Estimate.NumOverlaps, l.Rows, l.Grown)
		}
	})
}

func TestComputeLayout_GrowsPastEstimate(t *testing.T) {
	// Two 200px glyphs fit per 512px row. Ten of them need five rows while
	// the estimate (2000/512 + 1) only allows four.
	cs := CharacterSet("abcdefghij")
	src := newFakeSource().uniform(cs, 200, 190, 20)

	l, err := measureLayout(src, cs, 512)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if l.Estimate.Height != 80 {
		t.Fatalf("estimated height = %d, want 80", l.Estimate.Height)
	}
	if !l.Grown || l.Rows != 5 || l.Height != 100 {
		t.Errorf("grown = %v, rows = %d, height = %d; want grown to 5 rows, 100px", l.Grown, l.Rows, l.Height)
	}
	if l.Width != 512 {
		t.Errorf("width = %d, want 512", l.Width)
	}
}

func TestComputeLayout_Empty(t *testing.T) {
	l, err := ComputeLayout(nil, MaxRowWidth)
	if err != nil {
		t.Fatalf("ComputeLayout(nil): %v", err)
	}
	if l.Width != 0 || l.Height != 0 || l.Rows != 0 {
		t.Errorf("layout = %dx%d, %d rows; want zero area", l.Width, l.Height, l.Rows)
	}
	if u := l.Utilization(); u != 0 {
		t.Errorf("Utilization() = %v, want 0", u)
	}
}

func TestComputeLayout_InvalidWidth(t *testing.T) {
	for _, w := range []int{0, -1} {
		_, err := ComputeLayout(nil, w)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != "MaxRowWidth" {
			t.Errorf("ComputeLayout(width=%d) error = %v, want MaxRowWidth ConfigError", w, err)
		}
	}
}

func TestMeasure(t *testing.T) {
	src := newFakeSource()
	src.glyphs['A'] = fakeGlyph{advance: 9, width: 7, height: 10, leftBearing: 1}
	src.glyphs[' '] = fakeGlyph{advance: 4}

	metrics, err := Measure(src, CharacterSet("A é"))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	want := []GlyphMetrics{
		{Char: 'A', Resolved: true, Advance: 9, Width: 7, Height: 10, LeftBearing: 1},
		{Char: ' ', Resolved: true, Advance: 4},
		{Char: 'é'},
	}
	for i := range want {
		if metrics[i] != want[i] {
			t.Errorf("metrics[%d] = %+v, want %+v", i, metrics[i], want[i])
		}
	}
}

func TestMeasure_LoadError(t *testing.T) {
	boom := errors.New("boom")
	src := newFakeSource()
	src.fail['x'] = boom

	_, err := Measure(src, CharacterSet("x"))
	if !errors.Is(err, boom) {
		t.Fatalf("Measure error = %v, want wrapped boom", err)
	}
	var charErr *CharError
	if !errors.As(err, &charErr) || charErr.Char != 'x' {
		t.Errorf("expected CharError for 'x', got %v", err)
	}
}
