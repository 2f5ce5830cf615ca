package cart

import "testing"

func TestDiskonRupiah(t *testing.T) {
	tests := []struct {
		price, persen, want float64
	}{
		{20000, 10, 2000},
		{20000, 0, 0},
		{20000, 100, 20000},
		{20000, 150, 20000}, // clamped
		{20000, -5, 0},      // clamped
		{0, 50, 0},
		{-100, 50, 0},
	}
	for _, tt := range tests {
		if got := DiskonRupiah(tt.price, tt.persen); got != tt.want {
			t.Errorf("DiskonRupiah(%v, %v) = %v, want %v", tt.price, tt.persen, got, tt.want)
		}
	}
}

func TestDiskonPersen(t *testing.T) {
	tests := []struct {
		price, rupiah, want float64
	}{
		{20000, 2000, 10},
		{20000, 0, 0},
		{20000, 20000, 100},
		{20000, 30000, 100}, // clamped
		{20000, -100, 0},    // clamped
		{0, 2000, 0},
	}
	for _, tt := range tests {
		if got := DiskonPersen(tt.price, tt.rupiah); got != tt.want {
			t.Errorf("DiskonPersen(%v, %v) = %v, want %v", tt.price, tt.rupiah, got, tt.want)
		}
	}
}

func TestDiskonRoundTrip(t *testing.T) {
	prices := []float64{20000, 12500, 10000}
	persens := []float64{0, 10, 12.5, 50, 100}
	for _, price := range prices {
		for _, persen := range persens {
			rupiah := DiskonRupiah(price, persen)
			if back := DiskonPersen(price, rupiah); back != persen {
				t.Errorf("round trip price=%v persen=%v: got %v back", price, persen, back)
			}
		}
	}
}
