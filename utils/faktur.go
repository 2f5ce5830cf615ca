package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewFaktur builds an invoice number like NW-20250901-3FA1B2.
// The random tail keeps same-day orders unique.
func NewFaktur(t time.Time) string {
	tail := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("NW-%s-%s", t.Format("20060102"), tail)
}
