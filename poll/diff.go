package poll

import "nunis-api/entity"

// Snapshot is the slice of a transaction the change detector compares.
type Snapshot struct {
	Faktur string `json:"faktur"`
	Status int    `json:"status"`
}

// StatusChange records a per-faktur transition observed between two polls.
// A change that happens and reverts inside one poll window is invisible.
type StatusChange struct {
	Faktur string `json:"faktur"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

// Result of diffing two consecutive polls.
type Result struct {
	NewPending    []Snapshot
	StatusChanges []StatusChange
}

func (r Result) Empty() bool {
	return len(r.NewPending) == 0 && len(r.StatusChanges) == 0
}

// Diff compares two full list fetches keyed by faktur. It reports fakturs
// that newly appeared with a pending status, and status fields that changed
// for fakturs present in both lists.
func Diff(prev, next []Snapshot) Result {
	seen := make(map[string]int, len(prev))
	for _, s := range prev {
		seen[s.Faktur] = s.Status
	}

	var out Result
	for _, s := range next {
		old, ok := seen[s.Faktur]
		if !ok {
			if s.Status == entity.StatusMenungguKonfirmasi {
				out.NewPending = append(out.NewPending, s)
			}
			continue
		}
		if old != s.Status {
			out.StatusChanges = append(out.StatusChanges, StatusChange{
				Faktur: s.Faktur, From: old, To: s.Status,
			})
		}
	}
	return out
}
