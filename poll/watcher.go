package poll

import (
	"context"
	"log"
	"time"
)

// FetchFunc returns the full current list; the watcher diffs it against the
// previous fetch. There is no incremental API, every poll refetches.
type FetchFunc func(ctx context.Context) ([]Snapshot, error)

// Watcher re-fetches on a fixed interval and reports changes. No backoff or
// jitter; a failed fetch is logged and the previous snapshot is kept.
type Watcher struct {
	Interval time.Duration
	Fetch    FetchFunc
	OnChange func(Result)

	prev []Snapshot
}

func NewWatcher(interval time.Duration, fetch FetchFunc, onChange func(Result)) *Watcher {
	return &Watcher{Interval: interval, Fetch: fetch, OnChange: onChange}
}

// Run polls until ctx is cancelled. The first successful fetch primes the
// snapshot without reporting, so a restart does not replay history.
func (w *Watcher) Run(ctx context.Context) {
	primed := false
	if snap, err := w.Fetch(ctx); err == nil {
		w.prev = snap
		primed = true
	} else {
		log.Printf("poll: initial fetch failed: %v", err)
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next, err := w.Fetch(ctx)
			if err != nil {
				log.Printf("poll: fetch failed: %v", err)
				continue
			}
			if !primed {
				w.prev = next
				primed = true
				continue
			}
			if res := Diff(w.prev, next); !res.Empty() && w.OnChange != nil {
				w.OnChange(res)
			}
			w.prev = next
		}
	}
}
