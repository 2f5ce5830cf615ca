package cart

// Totals is the monetary summary submitted with an order.
// SubTotal - Total == DiskonRupiah holds exactly.
type Totals struct {
	SubTotal     int64
	Total        int64
	DiskonRupiah int64
	DiskonPersen float64
}

// Checkout computes the submission totals. It fails on an empty cart and on
// a zero payable total, matching the disabled submit button in the UI.
func (c *Cart) Checkout() (Totals, error) {
	if len(c.lines) == 0 {
		return Totals{}, ErrEmpty
	}
	var t Totals
	for _, ln := range c.lines {
		t.SubTotal += ln.Price * int64(ln.Qty)
		t.Total += ln.TotalDiscount
	}
	if t.Total == 0 {
		return Totals{}, ErrZeroTotal
	}
	t.DiskonRupiah = t.SubTotal - t.Total
	if t.SubTotal > 0 {
		t.DiskonPersen = float64(t.DiskonRupiah) / float64(t.SubTotal) * 100
	}
	return t, nil
}
