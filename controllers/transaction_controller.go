package controllers

import (
	"errors"
	"strconv"
	"time"

	"nunis-api/pkg/resp"
	"nunis-api/poll"
	"nunis-api/services"
	"nunis-api/utils"
	"nunis-api/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TransactionController struct {
	Service *services.TransactionService
	Hub     *ws.OrderHub
}

func NewTransactionController(s *services.TransactionService, hub *ws.OrderHub) *TransactionController {
	return &TransactionController{Service: s, Hub: hub}
}

// POST /transaksi
func (tc *TransactionController) Create(c *gin.Context) {
	var req services.CreateTransactionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// customers can only submit for themselves
	if utils.CurrentRole(c) != "admin" && req.UserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "forbidden")
		return
	}

	t, err := tc.Service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoItems),
			errors.Is(err, services.ErrTotalsMismatch),
			errors.Is(err, services.ErrMenuUnavailable):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTransactionExists):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, t)
}

// POST /checkout
func (tc *TransactionController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := tc.Service.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoItems),
			errors.Is(err, services.ErrMenuUnavailable):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTransactionExists):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, t)
}

// GET /alltransaksi
func (tc *TransactionController) ListAll(c *gin.Context) {
	ts, err := tc.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ts)
}

// GET /transaksi/:userId/with-details?start_date=2025-01-01
func (tc *TransactionController) ListForUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if utils.CurrentRole(c) != "admin" && uint(id) != utils.CurrentUserID(c) {
		resp.Forbidden(c, "forbidden")
		return
	}

	start, ok := parseStartParam(c)
	if !ok {
		return
	}

	ts, err := tc.Service.ListForUser(uint(id), start)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ts)
}

// parseStartParam reads the optional history cutoff. The storefront sends
// start_date; start is accepted as an alias.
func parseStartParam(c *gin.Context) (*time.Time, bool) {
	v := c.Query("start_date")
	if v == "" {
		v = c.Query("start")
	}
	if v == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		resp.BadRequest(c, "invalid start date")
		return nil, false
	}
	return &t, true
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		resp.BadRequest(c, "invalid start date")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		resp.BadRequest(c, "invalid end date")
		return time.Time{}, time.Time{}, false
	}
	// range is inclusive of the end day
	return start, end.AddDate(0, 0, 1), true
}

// GET /transaksi-date-range?start=...&end=...
func (tc *TransactionController) ListByDateRange(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	ts, err := tc.Service.ListByDateRange(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ts)
}

type UpdateStatusByFakturRequest struct {
	Faktur string `json:"faktur" binding:"required"`
	Status *int   `json:"status" binding:"required"`
}

// PATCH /update-status-by-faktur
func (tc *TransactionController) UpdateStatusByFaktur(c *gin.Context) {
	var req UpdateStatusByFakturRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, previous, err := tc.Service.UpdateStatusByFaktur(req.Faktur, *req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "transaction not found")
		case errors.Is(err, services.ErrUnknownStatus),
			errors.Is(err, services.ErrTerminalStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrStatusConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	if tc.Hub != nil && previous != t.Status {
		tc.Hub.NotifyUser(t.UserID, poll.StatusChange{
			Faktur: t.Faktur, From: previous, To: t.Status,
		})
	}

	resp.OK(c, t)
}

// GET /statistics
func (tc *TransactionController) Statistics(c *gin.Context) {
	stats, err := tc.Service.Statistics()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /statistics-by-date?start=...&end=...
func (tc *TransactionController) StatisticsByDate(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	stats, err := tc.Service.StatisticsByDate(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /receipt/:faktur?metode=tunai&bayar=50000&simple=1
//
// Returns raw printer bytes; the client streams them to the thermal
// printer over Web Bluetooth.
func (tc *TransactionController) Receipt(c *gin.Context) {
	t, err := tc.Service.Detail(c.Param("faktur"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "transaction not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	metode := c.DefaultQuery("metode", "tunai")
	var bayar int64
	if v := c.Query("bayar"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			resp.BadRequest(c, "invalid bayar")
			return
		}
		bayar = n
	}
	if metode == "tunai" && bayar < t.Total {
		resp.BadRequest(c, "bayar is less than total")
		return
	}

	kasir := c.DefaultQuery("kasir", "Admin")
	r := services.BuildReceipt(t, kasir, metode, bayar)

	var data []byte
	if c.Query("simple") != "" {
		data = r.RenderSimple()
	} else {
		data = r.Render()
	}
	c.Data(200, "application/octet-stream", data)
}
