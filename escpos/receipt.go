package escpos

import (
	"fmt"
	"time"
)

// Item is one sold line on the receipt.
type Item struct {
	Name     string
	Jumlah   int
	SubTotal int64 // line amount before diskon
}

// Receipt carries everything the printed nota shows.
type Receipt struct {
	Faktur    string
	Tanggal   time.Time
	Kasir     string
	Pelanggan string

	Items []Item
	Notes string

	SubTotal int64
	Diskon   int64
	Total    int64

	Metode    string // "tunai" / "non-tunai"
	Bayar     int64
	Kembalian int64
}

var headerLines = []string{
	"NUNIS WARUNG & KOFFIE",
	"Jl. Raya Trenggalek - Ponorogo",
	"No.Km.7, Kec. Tugu,",
	"Kab. Trenggalek, Jawa Timur",
	"Telp: 085217645464",
}

// Render builds the full payment nota.
func (r Receipt) Render() []byte {
	var b Builder
	b.Raw(Init)
	b.Centered(headerLines...)
	b.Divider()

	b.Line("No. Faktur : " + r.Faktur)
	b.Line("Tanggal    : " + r.Tanggal.Format("02/01/2006"))
	b.Line("Kasir      : " + r.Kasir)
	b.Line("Pelanggan  : " + Sanitize(r.Pelanggan))
	b.Divider()

	for _, it := range r.Items {
		b.Line(Sanitize(it.Name))
		unit := it.SubTotal
		if it.Jumlah > 0 {
			unit = it.SubTotal / int64(it.Jumlah)
		}
		b.TwoCol(fmt.Sprintf("%d x %s", it.Jumlah, FormatRupiah(unit)), FormatRupiah(it.SubTotal))
	}

	notes := Sanitize(r.Notes)
	if notes == "" {
		notes = "-"
	}
	b.Line("Catatan: " + notes)
	b.Divider()

	b.TwoCol("Subtotal:", FormatRupiah(r.SubTotal))
	b.TwoCol("Diskon:", FormatRupiah(r.Diskon))
	b.Divider()
	b.TwoCol("Total:", FormatRupiah(r.Total))
	b.TwoCol(fmt.Sprintf("Bayar (%s):", r.Metode), FormatRupiah(r.Bayar))
	b.TwoCol("Kembalian:", FormatRupiah(r.Kembalian))
	b.Divider()

	b.Centered("Terima kasih atas kunjungan Anda", "nuniswarungkoffie.site")
	b.Raw(FeedCut)
	return b.Bytes()
}

// RenderSimple builds the short kitchen ticket printed when an order is
// accepted: customer, items with counts, notes. No money columns.
func (r Receipt) RenderSimple() []byte {
	var b Builder
	b.Raw(Init)
	b.Centered("NUNIS WARUNG & KOFFIE")
	b.Divider()

	b.Line("Pelanggan: " + Sanitize(r.Pelanggan))
	b.Divider()

	for _, it := range r.Items {
		b.Line(fmt.Sprintf("%s x %d", Sanitize(it.Name), it.Jumlah))
	}
	b.Divider()

	if notes := Sanitize(r.Notes); notes != "" {
		b.Line("Catatan: " + notes)
		b.Divider()
	}

	b.Raw(FeedCut)
	return b.Bytes()
}
