package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNewFaktur(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	f := NewFaktur(ts)
	if !strings.HasPrefix(f, "NW-20250301-") {
		t.Errorf("faktur = %q, want NW-20250301- prefix", f)
	}
	if len(f) != len("NW-20250301-")+6 {
		t.Errorf("faktur length = %d, want %d", len(f), len("NW-20250301-")+6)
	}

	if NewFaktur(ts) == NewFaktur(ts) {
		t.Error("two fakturs for the same instant should differ")
	}
}
