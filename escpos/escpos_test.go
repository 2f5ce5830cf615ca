package escpos

import (
	"strings"
	"testing"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "Rp. 0"},
		{500, "Rp. 500"},
		{20000, "Rp. 20.000"},
		{1250000, "Rp. 1.250.000"},
		{-4000, "-Rp. 4.000"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.v); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Nasi Goreng", "Nasi Goreng"},
		{"Kopi Susu (panas)", "Kopi Susu (panas)"},
		{"Es Teh!!!", "Es Teh"},
		{"Soto Ayam ❤️", "Soto Ayam"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTwoColPadsToWidth(t *testing.T) {
	var b Builder
	b.TwoCol("Total:", "Rp. 20.000")

	line := strings.TrimSuffix(string(b.Bytes()), "\n")
	if len(line) != Width {
		t.Errorf("line width = %d, want %d: %q", len(line), Width, line)
	}
	if !strings.HasPrefix(line, "Total:") || !strings.HasSuffix(line, "Rp. 20.000") {
		t.Errorf("line = %q", line)
	}
}

func TestTwoColOverlongKeepsOneSpace(t *testing.T) {
	var b Builder
	left := strings.Repeat("x", 30)
	b.TwoCol(left, "Rp. 999.999")

	line := strings.TrimSuffix(string(b.Bytes()), "\n")
	if line != left+" "+"Rp. 999.999" {
		t.Errorf("line = %q, want single separating space", line)
	}
}

func TestDividerWidth(t *testing.T) {
	var b Builder
	b.Divider()
	if got := string(b.Bytes()); got != strings.Repeat("-", Width)+"\n" {
		t.Errorf("Divider = %q", got)
	}
}

func TestCenteredTogglesAlignment(t *testing.T) {
	var b Builder
	b.Centered("NUNIS")

	got := b.Bytes()
	want := append(append(append([]byte{}, AlignCenter...), []byte("NUNIS\n")...), AlignLeft...)
	if string(got) != string(want) {
		t.Errorf("Centered bytes = %q, want %q", got, want)
	}
}
