package escpos

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleReceipt() Receipt {
	return Receipt{
		Faktur:    "NW-20250115-ABC123",
		Tanggal:   time.Date(2025, 1, 15, 12, 30, 0, 0, time.UTC),
		Kasir:     "Admin",
		Pelanggan: "Budi",
		Items: []Item{
			{Name: "Nasi Goreng", Jumlah: 2, SubTotal: 40000},
			{Name: "Es Teh", Jumlah: 1, SubTotal: 5000},
		},
		SubTotal:  45000,
		Diskon:    4000,
		Total:     41000,
		Metode:    "tunai",
		Bayar:     50000,
		Kembalian: 9000,
	}
}

func TestRenderFraming(t *testing.T) {
	data := sampleReceipt().Render()

	if !bytes.HasPrefix(data, Init) {
		t.Error("stream does not start with the init sequence")
	}
	if !bytes.HasSuffix(data, FeedCut) {
		t.Error("stream does not end with feed-and-cut")
	}
	if !bytes.Contains(data, AlignCenter) || !bytes.Contains(data, AlignLeft) {
		t.Error("alignment opcodes missing")
	}
}

func TestRenderContents(t *testing.T) {
	text := string(sampleReceipt().Render())

	for _, want := range []string{
		"NW-20250115-ABC123",
		"15/01/2025",
		"Budi",
		"Nasi Goreng",
		"2 x Rp. 20.000",
		"Rp. 45.000",
		"Rp. 41.000",
		"Bayar (tunai):",
		"Rp. 9.000",
		"Catatan: -",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered receipt missing %q", want)
		}
	}
}

func TestRenderSimpleSkipsMoney(t *testing.T) {
	text := string(sampleReceipt().RenderSimple())

	if !strings.Contains(text, "Nasi Goreng x 2") {
		t.Error("kitchen ticket missing item line")
	}
	if strings.Contains(text, "Rp.") {
		t.Error("kitchen ticket should not show amounts")
	}
	if strings.Contains(text, "Catatan") {
		t.Error("empty notes should be omitted on the ticket")
	}
}

func TestRenderSimpleNotes(t *testing.T) {
	r := sampleReceipt()
	r.Notes = "tanpa sambal"
	if !strings.Contains(string(r.RenderSimple()), "Catatan: tanpa sambal") {
		t.Error("notes not printed on the ticket")
	}
}
