package poll

import (
	"testing"

	"nunis-api/entity"
)

func TestDiffReportsNewPendingAndChanges(t *testing.T) {
	prev := []Snapshot{{Faktur: "NW-A", Status: entity.StatusMenungguKonfirmasi}}
	next := []Snapshot{
		{Faktur: "NW-A", Status: entity.StatusPesananDiterima},
		{Faktur: "NW-B", Status: entity.StatusMenungguKonfirmasi},
	}

	got := Diff(prev, next)

	if len(got.StatusChanges) != 1 {
		t.Fatalf("StatusChanges = %d, want 1", len(got.StatusChanges))
	}
	ch := got.StatusChanges[0]
	if ch.Faktur != "NW-A" || ch.From != entity.StatusMenungguKonfirmasi || ch.To != entity.StatusPesananDiterima {
		t.Errorf("change = %+v, want NW-A 0->1", ch)
	}

	if len(got.NewPending) != 1 || got.NewPending[0].Faktur != "NW-B" {
		t.Errorf("NewPending = %+v, want [NW-B]", got.NewPending)
	}
}

func TestDiffIgnoresNewNonPending(t *testing.T) {
	// an order first seen in a non-pending status was handled elsewhere
	got := Diff(nil, []Snapshot{{Faktur: "NW-C", Status: entity.StatusSedangDiproses}})
	if !got.Empty() {
		t.Errorf("Diff = %+v, want empty", got)
	}
}

func TestDiffNoChanges(t *testing.T) {
	snaps := []Snapshot{
		{Faktur: "NW-A", Status: entity.StatusPesananSiap},
		{Faktur: "NW-B", Status: entity.StatusPesananSelesai},
	}
	if got := Diff(snaps, snaps); !got.Empty() {
		t.Errorf("Diff of identical lists = %+v, want empty", got)
	}
}

func TestDiffDisappearedFaktur(t *testing.T) {
	prev := []Snapshot{
		{Faktur: "NW-A", Status: entity.StatusMenungguKonfirmasi},
		{Faktur: "NW-B", Status: entity.StatusPesananSiap},
	}
	next := []Snapshot{{Faktur: "NW-B", Status: entity.StatusPesananSiap}}

	// deletion is not a status change
	if got := Diff(prev, next); !got.Empty() {
		t.Errorf("Diff = %+v, want empty", got)
	}
}
