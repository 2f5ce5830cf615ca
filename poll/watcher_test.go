package poll

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nunis-api/entity"
)

// fakeSource hands out a scripted sequence of snapshots.
type fakeSource struct {
	mu    sync.Mutex
	steps [][]Snapshot
	errs  []error
	i     int
}

func (f *fakeSource) fetch(ctx context.Context) ([]Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.i
	if i >= len(f.steps) {
		i = len(f.steps) - 1
	} else {
		f.i++
	}
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return f.steps[i], nil
}

func collect(t *testing.T, w *Watcher, want int) []Result {
	t.Helper()

	var mu sync.Mutex
	var got []Result
	done := make(chan struct{})
	w.OnChange = func(r Result) {
		mu.Lock()
		got = append(got, r)
		if len(got) == want {
			close(done)
		}
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d results, got %d", want, len(got))
	}
	mu.Lock()
	defer mu.Unlock()
	return got
}

func TestWatcherReportsDiffs(t *testing.T) {
	src := &fakeSource{steps: [][]Snapshot{
		{{Faktur: "NW-A", Status: entity.StatusMenungguKonfirmasi}},
		{
			{Faktur: "NW-A", Status: entity.StatusPesananDiterima},
			{Faktur: "NW-B", Status: entity.StatusMenungguKonfirmasi},
		},
	}}

	w := NewWatcher(5*time.Millisecond, src.fetch, nil)
	got := collect(t, w, 1)

	r := got[0]
	if len(r.StatusChanges) != 1 || r.StatusChanges[0].Faktur != "NW-A" {
		t.Errorf("StatusChanges = %+v, want NW-A change", r.StatusChanges)
	}
	if len(r.NewPending) != 1 || r.NewPending[0].Faktur != "NW-B" {
		t.Errorf("NewPending = %+v, want NW-B", r.NewPending)
	}
}

func TestWatcherFirstFetchPrimesSilently(t *testing.T) {
	src := &fakeSource{steps: [][]Snapshot{
		{
			{Faktur: "NW-OLD", Status: entity.StatusMenungguKonfirmasi},
			{Faktur: "NW-DONE", Status: entity.StatusPesananSelesai},
		},
		{
			{Faktur: "NW-OLD", Status: entity.StatusMenungguKonfirmasi},
			{Faktur: "NW-DONE", Status: entity.StatusPesananSelesai},
			{Faktur: "NW-NEW", Status: entity.StatusMenungguKonfirmasi},
		},
	}}

	w := NewWatcher(5*time.Millisecond, src.fetch, nil)
	got := collect(t, w, 1)

	// pre-existing pending orders were not replayed
	if len(got[0].NewPending) != 1 || got[0].NewPending[0].Faktur != "NW-NEW" {
		t.Errorf("NewPending = %+v, want only NW-NEW", got[0].NewPending)
	}
}

func TestWatcherSkipsFailedFetch(t *testing.T) {
	src := &fakeSource{
		steps: [][]Snapshot{
			{{Faktur: "NW-A", Status: entity.StatusMenungguKonfirmasi}},
			nil,
			{{Faktur: "NW-A", Status: entity.StatusPesananDiterima}},
		},
		errs: []error{nil, errors.New("db down"), nil},
	}

	w := NewWatcher(5*time.Millisecond, src.fetch, nil)
	got := collect(t, w, 1)

	// the failed poll kept the previous snapshot, so the change is still seen
	if len(got[0].StatusChanges) != 1 || got[0].StatusChanges[0].To != entity.StatusPesananDiterima {
		t.Errorf("StatusChanges = %+v, want NW-A -> 1", got[0].StatusChanges)
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	src := &fakeSource{steps: [][]Snapshot{{}}}
	w := NewWatcher(time.Millisecond, src.fetch, func(Result) {})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}
