package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func queryCtx(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/transaksi/5/with-details?"+rawQuery, nil)
	return c, w
}

func TestParseStartParamReadsStartDate(t *testing.T) {
	c, _ := queryCtx(t, "start_date=2025-01-01")
	start, ok := parseStartParam(c)
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if start == nil {
		t.Fatal("start = nil, want the parsed cutoff")
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}

func TestParseStartParamAcceptsAlias(t *testing.T) {
	c, _ := queryCtx(t, "start=2025-02-03")
	start, ok := parseStartParam(c)
	if !ok || start == nil {
		t.Fatalf("start, ok = %v, %v, want parsed cutoff", start, ok)
	}
	if start.Day() != 3 || start.Month() != time.February {
		t.Errorf("start = %v, want 2025-02-03", start)
	}
}

func TestParseStartParamAbsentMeansNoCutoff(t *testing.T) {
	c, _ := queryCtx(t, "")
	start, ok := parseStartParam(c)
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if start != nil {
		t.Errorf("start = %v, want nil", start)
	}
}

func TestParseStartParamRejectsGarbage(t *testing.T) {
	c, w := queryCtx(t, "start_date=yesterday")
	if _, ok := parseStartParam(c); ok {
		t.Fatal("ok = true, want false")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
