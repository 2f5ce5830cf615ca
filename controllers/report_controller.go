package controllers

import (
	"errors"
	"fmt"

	"nunis-api/pkg/resp"
	"nunis-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	Service      *services.ReportService
	Transactions *services.TransactionService
	Menus        *services.MenuService
	Contacts     *services.ContactService
}

func NewReportController(s *services.ReportService, ts *services.TransactionService, ms *services.MenuService, cs *services.ContactService) *ReportController {
	return &ReportController{Service: s, Transactions: ts, Menus: ms, Contacts: cs}
}

// GET /laporan-rekap?start=...&end=...
func (rc *ReportController) LaporanRekap(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	ts, err := rc.Transactions.ListByDateRange(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	periode := fmt.Sprintf("Periode: %s - %s",
		start.Format("02/01/2006"), end.AddDate(0, 0, -1).Format("02/01/2006"))
	pdf, err := rc.Service.RecapPDF(ts, periode)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="laporan-rekap.pdf"`)
	c.Data(200, "application/pdf", pdf)
}

// GET /export-transaksi?start=...&end=...
func (rc *ReportController) ExportTransaksi(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	ts, err := rc.Transactions.ListByDateRange(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	xlsx, err := rc.Service.TransactionsXLSX(ts)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transaksi.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
}

// GET /export-menu
func (rc *ReportController) ExportMenu(c *gin.Context) {
	menus, err := rc.Menus.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	xlsx, err := rc.Service.MenuXLSX(menus)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="menu.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
}

// GET /export-ulasan
func (rc *ReportController) ExportReviews(c *gin.Context) {
	contacts, err := rc.Contacts.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	xlsx, err := rc.Service.ReviewsXLSX(contacts)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ulasan.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
}

// GET /invoice-qr/:faktur
func (rc *ReportController) InvoiceQR(c *gin.Context) {
	t, err := rc.Transactions.Detail(c.Param("faktur"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "transaction not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	png, err := rc.Service.InvoiceQR(t)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(200, "image/png", png)
}
