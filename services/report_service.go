package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"nunis-api/entity"
	"nunis-api/escpos"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
)

// ReportService renders the artifacts the admin screens export: the sales
// recap PDF, spreadsheet dumps and per-invoice QR codes and receipts.
type ReportService struct {
	LogoPath string // optional JPEG shown on the recap header
}

func NewReportService(logoPath string) *ReportService {
	return &ReportService{LogoPath: logoPath}
}

const (
	bizName    = "NUNIS WARUNG & KOFFIE"
	bizAddress = "Jl. Raya Trenggalek - Ponorogo No.Km.7, RT.17/RW.4, Setono, Kec. Tugu, Kabupaten Trenggalek, Jawa Timur 66352"
	bizContact = "Telp: 085217645464 | Email: nuniswarung@gmail.com"
)

// RecapRow is one grouped-by-date line of the sales recap.
type RecapRow struct {
	Tanggal         string
	MenuSummary     string
	TotalTransaksi  int
	TotalDiskon     int64
	TotalPendapatan int64
}

// BuildRecap groups transactions per calendar day. Cancelled orders are
// excluded; the menu column lists "name x count" pairs.
func BuildRecap(ts []entity.Transaction) []RecapRow {
	type agg struct {
		menus map[string]int
		count int
		dis   int64
		rev   int64
	}
	days := map[string]*agg{}
	for _, t := range ts {
		if t.Status == entity.StatusPesananDibatalkan {
			continue
		}
		key := t.Tanggal.Format("02/01/2006")
		a := days[key]
		if a == nil {
			a = &agg{menus: map[string]int{}}
			days[key] = a
		}
		a.count++
		a.dis += t.DiskonRupiah
		a.rev += t.Total
		for _, d := range t.Details {
			a.menus[d.Name] += d.Jumlah
		}
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := time.Parse("02/01/2006", keys[i])
		b, _ := time.Parse("02/01/2006", keys[j])
		return a.Before(b)
	})

	rows := make([]RecapRow, 0, len(keys))
	for _, k := range keys {
		a := days[k]
		names := make([]string, 0, len(a.menus))
		for n := range a.menus {
			names = append(names, n)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, n := range names {
			parts = append(parts, fmt.Sprintf("%s x%d", n, a.menus[n]))
		}
		rows = append(rows, RecapRow{
			Tanggal:         k,
			MenuSummary:     strings.Join(parts, ", "),
			TotalTransaksi:  a.count,
			TotalDiskon:     a.dis,
			TotalPendapatan: a.rev,
		})
	}
	return rows
}

// RecapPDF renders the "LAPORAN REKAPITULASI PENJUALAN" report.
func (s *ReportService) RecapPDF(ts []entity.Transaction, periode string) ([]byte, error) {
	rows := BuildRecap(ts)
	now := time.Now()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	if s.LogoPath != "" {
		if _, err := os.Stat(s.LogoPath); err == nil {
			pdf.ImageOptions(s.LogoPath, 14, 12, 32, 32, false, gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(50, 16)
	pdf.CellFormat(145, 8, bizName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(50)
	pdf.MultiCell(145, 5, bizAddress, "", "C", false)
	pdf.SetX(50)
	pdf.CellFormat(145, 5, bizContact, "", 1, "C", false, 0, "")

	pdf.SetLineWidth(1.0)
	pdf.Line(12, 48, 198, 48)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(12, 53)
	pdf.CellFormat(186, 7, "LAPORAN REKAPITULASI PENJUALAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(186, 5, periode, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(186, 5, "Tanggal Cetak: "+now.Format("02/01/2006 15:04:05"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// table
	widths := []float64{10, 26, 70, 24, 28, 28}
	headers := []string{"No", "Tanggal", "Menu & Jumlah", "Transaksi", "Total Diskon", "Total Penjualan"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	var sumTrans int
	var sumDiskon, sumRev int64
	for i, r := range rows {
		menu := r.MenuSummary
		if len(menu) > 60 {
			menu = menu[:57] + "..."
		}
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.Tanggal, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, menu, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%d", r.TotalTransaksi), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, escpos.FormatRupiah(r.TotalDiskon), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, escpos.FormatRupiah(r.TotalPendapatan), "1", 1, "R", false, 0, "")
		sumTrans += r.TotalTransaksi
		sumDiskon += r.TotalDiskon
		sumRev += r.TotalPendapatan
	}
	if len(rows) > 0 {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(widths[0]+widths[1]+widths[2], 6, "Total", "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%d", sumTrans), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, escpos.FormatRupiah(sumDiskon), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, escpos.FormatRupiah(sumRev), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetY(-15)
	pdf.CellFormat(186, 5,
		"Dicetak otomatis oleh sistem pada "+now.Format("02/01/2006 15:04:05"),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TransactionsXLSX dumps transactions into a single-sheet workbook, the
// same shape the admin table exports.
func (s *ReportService) TransactionsXLSX(ts []entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Ekspor Transaksi"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "EKSPOR TRANSAKSI")
	headers := []string{"Faktur", "Pelanggan", "No. Telepon", "Alamat", "Tanggal", "Sub Total", "Diskon", "Total", "Status", "Catatan"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}

	for i, t := range ts {
		row := i + 3
		values := []any{
			t.Faktur, t.User.Nama, t.NoTelepon, t.Alamat,
			t.Tanggal.Format("02/01/2006 15:04"),
			t.SubTotal, t.DiskonRupiah, t.Total,
			StatusLabel(t.Status), t.Notes,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MenuXLSX dumps the full catalog, including inactive items.
func (s *ReportService) MenuXLSX(menus []entity.Menu) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Ekspor Menu"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "EKSPOR MENU")
	headers := []string{"Kode Menu", "Nama", "Kategori", "Harga", "Diskon (%)", "Diskon (Rp)", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}

	for i, m := range menus {
		status := "Nonaktif"
		if m.StatusActive == 1 {
			status = "Aktif"
		}
		values := []any{m.KodeMenu, m.Name, m.Category.Name, m.Price, m.DiskonPersen, m.DiskonRupiah, status}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+3)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReviewsXLSX dumps the contact-form messages.
func (s *ReportService) ReviewsXLSX(contacts []entity.Contact) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Ekspor Ulasan"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "EKSPOR ULASAN")
	headers := []string{"Nama", "Email", "Pesan", "Rating", "Tanggal"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}

	for i, ct := range contacts {
		values := []any{ct.Name, ct.Email, ct.Message, ct.Rating, ct.CreatedAt.Format("02/01/2006 15:04")}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+3)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StatusLabel maps the numeric lifecycle to the label shown everywhere.
func StatusLabel(status int) string {
	switch status {
	case entity.StatusMenungguKonfirmasi:
		return "Menunggu Konfirmasi"
	case entity.StatusPesananDiterima:
		return "Pesanan Diterima"
	case entity.StatusSedangDiproses:
		return "Sedang Diproses"
	case entity.StatusPesananSiap:
		return "Pesanan Siap"
	case entity.StatusPesananSelesai:
		return "Pesanan Selesai"
	case entity.StatusPesananDibatalkan:
		return "Pesanan Dibatalkan"
	default:
		return "Tidak Diketahui"
	}
}

// invoiceQRPayload is what the invoice dialog encodes into its QR code.
type invoiceQRPayload struct {
	User     string          `json:"user"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
	Faktur   string          `json:"faktur"`
	Items    []invoiceQRItem `json:"items"`
	SubTotal int64           `json:"sub_total"`
	Diskon   int64           `json:"diskon"`
	Total    int64           `json:"total"`
}

type invoiceQRItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Total int64  `json:"total"`
}

// InvoiceQR encodes the invoice summary as a PNG QR code.
func (s *ReportService) InvoiceQR(t *entity.Transaction) ([]byte, error) {
	p := invoiceQRPayload{
		User:     t.User.Nama,
		Phone:    t.NoTelepon,
		Address:  t.Alamat,
		Faktur:   t.Faktur,
		SubTotal: t.SubTotal,
		Diskon:   t.DiskonRupiah,
		Total:    t.Total,
	}
	for _, d := range t.Details {
		p.Items = append(p.Items, invoiceQRItem{Name: d.Name, Count: d.Jumlah, Total: d.Total})
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(payload), qrcode.Medium, 256)
}

// BuildReceipt maps a transaction onto the thermal receipt model.
func BuildReceipt(t *entity.Transaction, kasir, metode string, bayar int64) escpos.Receipt {
	r := escpos.Receipt{
		Faktur:    t.Faktur,
		Tanggal:   t.Tanggal,
		Kasir:     kasir,
		Pelanggan: t.User.Nama,
		Notes:     t.Notes,
		SubTotal:  t.SubTotal,
		Diskon:    t.DiskonRupiah,
		Total:     t.Total,
		Metode:    metode,
		Bayar:     bayar,
		Kembalian: bayar - t.Total,
	}
	if metode == "non-tunai" {
		r.Bayar = t.Total
		r.Kembalian = 0
	}
	for _, d := range t.Details {
		r.Items = append(r.Items, escpos.Item{Name: d.Name, Jumlah: d.Jumlah, SubTotal: d.SubTotal})
	}
	return r
}
