package escpos

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// recorder keeps each Write call separate so chunk boundaries are visible.
type recorder struct {
	chunks [][]byte
	failAt int // 1-based call index to fail on, 0 = never
}

func (r *recorder) Write(p []byte) (int, error) {
	if r.failAt > 0 && len(r.chunks)+1 == r.failAt {
		return 0, errors.New("gatt write failed")
	}
	c := make([]byte, len(p))
	copy(c, p)
	r.chunks = append(r.chunks, c)
	return len(p), nil
}

func TestChunkedWriterSplits(t *testing.T) {
	rec := &recorder{}
	cw := NewChunkedWriter(rec)
	cw.sleep = func(time.Duration) {}

	payload := bytes.Repeat([]byte{0xAA}, 512*2+100)
	n, err := cw.Write(payload)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(payload) {
		t.Errorf("n = %d, want %d", n, len(payload))
	}

	if len(rec.chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(rec.chunks))
	}
	if len(rec.chunks[0]) != 512 || len(rec.chunks[1]) != 512 || len(rec.chunks[2]) != 100 {
		t.Errorf("chunk sizes = %d/%d/%d, want 512/512/100",
			len(rec.chunks[0]), len(rec.chunks[1]), len(rec.chunks[2]))
	}
}

func TestChunkedWriterPacesBetweenChunks(t *testing.T) {
	rec := &recorder{}
	cw := NewChunkedWriter(rec)

	var pauses []time.Duration
	cw.sleep = func(d time.Duration) { pauses = append(pauses, d) }

	if _, err := cw.Write(bytes.Repeat([]byte{0x01}, 512*3)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// no pause after the final chunk
	if len(pauses) != 2 {
		t.Fatalf("pauses = %d, want 2", len(pauses))
	}
	for _, d := range pauses {
		if d != DefaultChunkDelay {
			t.Errorf("pause = %v, want %v", d, DefaultChunkDelay)
		}
	}
}

func TestChunkedWriterSmallPayload(t *testing.T) {
	rec := &recorder{}
	cw := NewChunkedWriter(rec)
	var pauses int
	cw.sleep = func(time.Duration) { pauses++ }

	if _, err := cw.Write([]byte("short")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(rec.chunks) != 1 || pauses != 0 {
		t.Errorf("chunks = %d, pauses = %d, want 1 and 0", len(rec.chunks), pauses)
	}
}

func TestChunkedWriterAbortsOnError(t *testing.T) {
	rec := &recorder{failAt: 2}
	cw := NewChunkedWriter(rec)
	cw.sleep = func(time.Duration) {}

	n, err := cw.Write(bytes.Repeat([]byte{0x02}, 512*3))
	if err == nil {
		t.Fatal("expected write error")
	}
	if n != 512 {
		t.Errorf("n = %d, want 512 written before the failure", n)
	}
}
