package services

import (
	"testing"
	"time"

	"nunis-api/entity"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC)
}

func TestBuildRecapGroupsByDate(t *testing.T) {
	ts := []entity.Transaction{
		{
			Tanggal: day(1), Total: 41000, DiskonRupiah: 4000,
			Details: []entity.TransactionDetail{
				{Name: "Nasi Goreng", Jumlah: 2},
				{Name: "Es Teh", Jumlah: 1},
			},
		},
		{
			Tanggal: day(1), Total: 15000,
			Details: []entity.TransactionDetail{{Name: "Nasi Goreng", Jumlah: 1}},
		},
		{
			Tanggal: day(2), Total: 5000,
			Details: []entity.TransactionDetail{{Name: "Es Teh", Jumlah: 1}},
		},
	}

	rows := BuildRecap(ts)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	first := rows[0]
	if first.Tanggal != "01/03/2025" {
		t.Errorf("first row date = %s, want 01/03/2025", first.Tanggal)
	}
	if first.TotalTransaksi != 2 {
		t.Errorf("first row transaksi = %d, want 2", first.TotalTransaksi)
	}
	if first.TotalPendapatan != 56000 {
		t.Errorf("first row pendapatan = %d, want 56000", first.TotalPendapatan)
	}
	if first.TotalDiskon != 4000 {
		t.Errorf("first row diskon = %d, want 4000", first.TotalDiskon)
	}
	if first.MenuSummary != "Es Teh x1, Nasi Goreng x3" {
		t.Errorf("menu summary = %q", first.MenuSummary)
	}

	if rows[1].Tanggal != "02/03/2025" {
		t.Errorf("second row date = %s, want 02/03/2025", rows[1].Tanggal)
	}
}

func TestBuildRecapSkipsCancelled(t *testing.T) {
	ts := []entity.Transaction{
		{Tanggal: day(1), Total: 10000, Status: entity.StatusPesananDibatalkan},
	}
	if rows := BuildRecap(ts); len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{entity.StatusMenungguKonfirmasi, "Menunggu Konfirmasi"},
		{entity.StatusPesananDiterima, "Pesanan Diterima"},
		{entity.StatusSedangDiproses, "Sedang Diproses"},
		{entity.StatusPesananSiap, "Pesanan Siap"},
		{entity.StatusPesananSelesai, "Pesanan Selesai"},
		{entity.StatusPesananDibatalkan, "Pesanan Dibatalkan"},
		{99, "Tidak Diketahui"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestBuildReceipt(t *testing.T) {
	tr := &entity.Transaction{
		Faktur:       "NW-20250301-XYZ789",
		User:         entity.User{Nama: "Budi"},
		SubTotal:     45000,
		DiskonRupiah: 4000,
		Total:        41000,
		Notes:        "tanpa sambal",
		Details: []entity.TransactionDetail{
			{Name: "Nasi Goreng", Jumlah: 2, SubTotal: 40000},
		},
	}

	r := BuildReceipt(tr, "Admin", "tunai", 50000)
	if r.Kembalian != 9000 {
		t.Errorf("Kembalian = %d, want 9000", r.Kembalian)
	}
	if len(r.Items) != 1 || r.Items[0].SubTotal != 40000 {
		t.Errorf("Items = %+v", r.Items)
	}

	nonCash := BuildReceipt(tr, "Admin", "non-tunai", 0)
	if nonCash.Bayar != 41000 || nonCash.Kembalian != 0 {
		t.Errorf("non-tunai bayar/kembalian = %d/%d, want 41000/0", nonCash.Bayar, nonCash.Kembalian)
	}
}

func TestResolveDiskon(t *testing.T) {
	persen := 10.0
	gotPersen, gotRupiah := resolveDiskon(20000, &persen, nil)
	if gotPersen != 10 || gotRupiah != 2000 {
		t.Errorf("persen-driven = %v/%d, want 10/2000", gotPersen, gotRupiah)
	}

	rupiah := int64(5000)
	gotPersen, gotRupiah = resolveDiskon(20000, nil, &rupiah)
	if gotPersen != 25 || gotRupiah != 5000 {
		t.Errorf("rupiah-driven = %v/%d, want 25/5000", gotPersen, gotRupiah)
	}

	// with both given rupiah wins
	gotPersen, gotRupiah = resolveDiskon(20000, &persen, &rupiah)
	if gotPersen != 25 || gotRupiah != 5000 {
		t.Errorf("both given = %v/%d, want 25/5000", gotPersen, gotRupiah)
	}

	gotPersen, gotRupiah = resolveDiskon(20000, nil, nil)
	if gotPersen != 0 || gotRupiah != 0 {
		t.Errorf("no diskon = %v/%d, want 0/0", gotPersen, gotRupiah)
	}
}
