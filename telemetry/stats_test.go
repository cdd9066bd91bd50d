package telemetry

import (
	"math"
	"testing"
)

func TestComputeScoreStats(t *testing.T) {
	tests := []struct {
		name                     string
		values                   []float64
		mean, std, p50, p90, top float64
	}{
		{"empty", nil, 0, 0, 0, 0, 0},
		{"single", []float64{12}, 12, 0, 12, 12, 12},
		{"constant", []float64{10, 10, 10, 10}, 10, 0, 10, 10, 10},
		{"one to ten", []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}, 5.5, 3.0277, 5, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p50, p90, top := ComputeScoreStats(tt.values)
			for _, c := range []struct {
				field     string
				got, want float64
			}{
				{"mean", mean, tt.mean},
				{"std", std, tt.std},
				{"p50", p50, tt.p50},
				{"p90", p90, tt.p90},
				{"max", top, tt.top},
			} {
				if math.Abs(c.got-c.want) > 0.001 {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestComputeScoreStatsDoesNotReorderInput(t *testing.T) {
	values := []float64{30, 10, 20}
	ComputeScoreStats(values)
	if values[0] != 30 || values[1] != 10 || values[2] != 20 {
		t.Errorf("input reordered: %v", values)
	}
}
